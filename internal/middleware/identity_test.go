package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/classloop/membership/internal/auth"
	"github.com/classloop/membership/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callerEcho(t *testing.T, captured *middleware.Caller, found *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.CallerFromContext(r.Context())
		*captured = caller
		*found = ok
		w.WriteHeader(http.StatusOK)
	})
}

func TestResolveCaller(t *testing.T) {
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("session cookie wins", func(t *testing.T) {
		token, err := tokenManager.Generate("e3b1c0de-0000-4000-8000-000000000001", "teacher@school.example")
		require.NoError(t, err)

		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, false)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		// A header that disagrees with the session must lose.
		req.Header.Set("X-User-Email", "imposter@school.example")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, ok)
		assert.Equal(t, "teacher@school.example", caller.Email)
		assert.Equal(t, "e3b1c0de-0000-4000-8000-000000000001", caller.UserID)
	})

	t.Run("header fallback has email only", func(t *testing.T) {
		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, false)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-Email", "teacher@school.example")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, ok)
		assert.Equal(t, "teacher@school.example", caller.Email)
		assert.Empty(t, caller.UserID)
	})

	t.Run("invalid session falls through to header", func(t *testing.T) {
		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, false)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
		req.Header.Set("X-User-Email", "teacher@school.example")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, ok)
		assert.Equal(t, "teacher@school.example", caller.Email)
	})

	t.Run("query parameter ignored by default", func(t *testing.T) {
		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, false)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/?userEmail=sneaky@school.example", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, ok)
		assert.Empty(t, caller.Email)
	})

	t.Run("query parameter honored when debug fallback enabled", func(t *testing.T) {
		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, true)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/?userEmail=debug@school.example", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, ok)
		assert.Equal(t, "debug@school.example", caller.Email)
	})

	t.Run("no identity passes through unauthenticated", func(t *testing.T) {
		var caller middleware.Caller
		var ok bool
		h := middleware.ResolveCaller(tokenManager, false)(callerEcho(t, &caller, &ok))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, ok)
	})
}
