// internal/middleware/identity.go
package middleware

import (
	"context"
	"net/http"

	"github.com/classloop/membership/internal/auth"
)

type callerContextKey string

const callerKey = callerContextKey("classloop_caller")

// Caller is the resolved request identity: an email, and optionally a user
// id. How much of it is present depends on which resolution step matched.
type Caller struct {
	UserID string
	Email  string
}

// CallerFromContext returns the caller resolved by ResolveCaller, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)
	return caller, ok && caller.Email != ""
}

// SessionCookieName is the cookie carrying the platform session token.
const SessionCookieName = "cl_session"

// ResolveCaller resolves the request identity in a fixed order: session
// cookie, then the X-User-Email header, then — only when debugFallback is
// on — the userEmail query parameter. The query fallback is an
// authentication bypass and exists solely for non-production diagnostics.
//
// Requests with no resolvable identity pass through; handlers that need a
// caller respond 401 themselves.
func ResolveCaller(tokenManager *auth.TokenManager, debugFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := resolve(r, tokenManager, debugFallback)
			if caller.Email != "" {
				ctx := context.WithValue(r.Context(), callerKey, caller)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolve(r *http.Request, tokenManager *auth.TokenManager, debugFallback bool) Caller {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := tokenManager.Validate(cookie.Value); err == nil {
			return Caller{UserID: claims.UserID, Email: claims.Email}
		}
	}

	if email := r.Header.Get("X-User-Email"); email != "" {
		return Caller{Email: email}
	}

	if debugFallback {
		if email := r.URL.Query().Get("userEmail"); email != "" {
			return Caller{Email: email}
		}
	}

	return Caller{}
}
