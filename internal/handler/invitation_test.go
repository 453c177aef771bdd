package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/classloop/membership/internal/auth"
	"github.com/classloop/membership/internal/config"
	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/handler"
	"github.com/classloop/membership/internal/middleware"
	"github.com/classloop/membership/internal/mocks"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiFixture struct {
	invitations *mocks.MockInvitationRepositoryIface
	members     *mocks.MockMembershipRepositoryIface
	users       *mocks.MockUserRepositoryIface
	admins      *mocks.MockLegacyAdminRepositoryIface
	router      chi.Router
}

func newAPIFixture(ctrl *gomock.Controller) *apiFixture {
	f := &apiFixture{
		invitations: mocks.NewMockInvitationRepositoryIface(ctrl),
		members:     mocks.NewMockMembershipRepositoryIface(ctrl),
		users:       mocks.NewMockUserRepositoryIface(ctrl),
		admins:      mocks.NewMockLegacyAdminRepositoryIface(ctrl),
	}

	authz := service.NewAuthzResolver(nil,
		service.NewIdentityProvider(f.members),
		service.NewLegacyAdminProvider(f.admins),
	)
	invService := service.NewInvitationService(
		f.invitations, f.members, f.users, authz, nil, config.Load(), nil,
	)
	invHandler := handler.NewInvitationHandler(invService)

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	r := chi.NewRouter()
	r.Use(middleware.ResolveCaller(tokenManager, false))
	r.Get("/invitations", invHandler.ListInvitations)
	r.Post("/invitations/redeem", invHandler.RedeemInvitation)

	f.router = r
	return f
}

func TestInvitationEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	owner := "a@x.com"

	grantViaIdentity := func(f *apiFixture, email string) {
		f.members.EXPECT().
			FindIdentity(gomock.Any(), orgID, email).
			Return(&model.Identity{
				OrgID:     orgID,
				UserEmail: email,
				RoleType:  model.RoleOwner,
				Status:    model.IdentityActive,
			}, nil)
		f.admins.EXPECT().
			FindAdmin(gomock.Any(), orgID, email).
			Return(nil, domain.ErrNotFound)
	}

	t.Run("list without identity is unauthorized", func(t *testing.T) {
		f := newAPIFixture(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/invitations?orgId="+orgID.String(), nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("fresh organization lists no invitations", func(t *testing.T) {
		f := newAPIFixture(ctrl)
		grantViaIdentity(f, owner)
		f.invitations.EXPECT().
			ListByOrg(gomock.Any(), orgID).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/invitations?orgId="+orgID.String(), nil)
		req.Header.Set("X-User-Email", owner)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"invitations":[]}`, rec.Body.String())
	})

	t.Run("list as outsider is forbidden", func(t *testing.T) {
		f := newAPIFixture(ctrl)
		f.members.EXPECT().
			FindIdentity(gomock.Any(), orgID, "b@x.com").
			Return(nil, domain.ErrIdentityNotFound)
		f.admins.EXPECT().
			FindAdmin(gomock.Any(), orgID, "b@x.com").
			Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/invitations?orgId="+orgID.String(), nil)
		req.Header.Set("X-User-Email", "b@x.com")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("redeeming a never-issued code is not found", func(t *testing.T) {
		f := newAPIFixture(ctrl)
		f.invitations.EXPECT().
			FindByCode(gomock.Any(), "ZZZZZZZZ").
			Return(nil, domain.ErrInvitationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/invitations/redeem",
			strings.NewReader(`{"invitationCode":"ZZZZZZZZ"}`))
		req.Header.Set("X-User-Email", owner)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("redeeming a malformed code is a bad request", func(t *testing.T) {
		f := newAPIFixture(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/invitations/redeem",
			strings.NewReader(`{"invitationCode":"nope"}`))
		req.Header.Set("X-User-Email", owner)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("redeeming a used code conflicts", func(t *testing.T) {
		f := newAPIFixture(ctrl)
		f.invitations.EXPECT().
			FindByCode(gomock.Any(), "ABCD2345").
			Return(&model.Invitation{
				ID:             uuid.New(),
				InvitationCode: "ABCD2345",
				OrgID:          orgID,
				IsUsed:         true,
				ExpiresAt:      time.Now().Add(time.Hour),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/invitations/redeem",
			strings.NewReader(`{"invitationCode":"ABCD2345"}`))
		req.Header.Set("X-User-Email", owner)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
