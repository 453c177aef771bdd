package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/mocks"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthzResolverUnion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	email := "admin@school.example"
	storeErr := errors.New("store unavailable")

	activeOwner := &model.Identity{
		OrgID:     orgID,
		UserEmail: email,
		RoleType:  model.RoleOwner,
		Status:    model.IdentityActive,
	}
	inactiveAdmin := &model.Identity{
		OrgID:     orgID,
		UserEmail: email,
		RoleType:  model.RoleAdmin,
		Status:    model.IdentityInactive,
	}
	plainMember := &model.Identity{
		OrgID:     orgID,
		UserEmail: email,
		RoleType:  model.RoleMember,
		Status:    model.IdentityActive,
	}
	legacyAdmin := &model.LegacyAdmin{OrgID: orgID, UserEmail: email, Role: "admin"}
	legacyViewer := &model.LegacyAdmin{OrgID: orgID, UserEmail: email, Role: "viewer"}

	tests := []struct {
		name        string
		identity    *model.Identity
		identityErr error
		legacy      *model.LegacyAdmin
		legacyErr   error
		want        bool
		wantErr     bool
	}{
		{
			name:     "active owner identity allows",
			identity: activeOwner,
			legacyErr: domain.ErrNotFound,
			want:     true,
		},
		{
			name:        "legacy admin allows when identity absent",
			identityErr: domain.ErrIdentityNotFound,
			legacy:      legacyAdmin,
			want:        true,
		},
		{
			name:        "neither source grants",
			identityErr: domain.ErrIdentityNotFound,
			legacyErr:   domain.ErrNotFound,
			want:        false,
		},
		{
			name:     "inactive admin identity denies",
			identity: inactiveAdmin,
			legacyErr: domain.ErrNotFound,
			want:     false,
		},
		{
			name:     "member role denies",
			identity: plainMember,
			legacyErr: domain.ErrNotFound,
			want:     false,
		},
		{
			name:        "legacy non-admin role denies",
			identityErr: domain.ErrIdentityNotFound,
			legacy:      legacyViewer,
			want:        false,
		},
		{
			name:        "identity source error does not block legacy allow",
			identityErr: storeErr,
			legacy:      legacyAdmin,
			want:        true,
		},
		{
			name:      "legacy source error does not block identity allow",
			identity:  activeOwner,
			legacyErr: storeErr,
			want:      true,
		},
		{
			name:        "source error never grants",
			identityErr: storeErr,
			legacyErr:   domain.ErrNotFound,
			want:        false,
		},
		{
			name:        "all sources erroring fails closed",
			identityErr: storeErr,
			legacyErr:   storeErr,
			want:        false,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := mocks.NewMockMembershipRepositoryIface(ctrl)
			admins := mocks.NewMockLegacyAdminRepositoryIface(ctrl)

			members.EXPECT().
				FindIdentity(gomock.Any(), orgID, email).
				Return(tt.identity, tt.identityErr)
			admins.EXPECT().
				FindAdmin(gomock.Any(), orgID, email).
				Return(tt.legacy, tt.legacyErr)

			resolver := service.NewAuthzResolver(nil,
				service.NewIdentityProvider(members),
				service.NewLegacyAdminProvider(admins),
			)

			got, err := resolver.CanManage(context.Background(), orgID, email)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthzResolverNoProviders(t *testing.T) {
	resolver := service.NewAuthzResolver(nil)

	got, err := resolver.CanManage(context.Background(), uuid.New(), "anyone@school.example")
	assert.False(t, got)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
