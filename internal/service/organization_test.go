package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/mocks"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/service"
	"github.com/classloop/membership/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateOrganizationWithOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	email := "founder@school.example"

	input := service.CreateOrganizationInput{
		Name:      "Acme Music",
		Slug:      "acme-music",
		UserID:    userID.String(),
		UserEmail: email,
		CreatedBy: email,
	}

	t.Run("creates organization, seeds owner, demotes other primaries", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		var createdOrgID uuid.UUID
		gomock.InOrder(
			members.EXPECT().
				CreateOrganization(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, org *model.Organization) (store.Outcomes, error) {
					require.NotEqual(t, uuid.Nil, org.ID, "id must be generated by the orchestrator")
					assert.Equal(t, "Acme Music", org.Name)
					assert.Equal(t, "acme-music", org.Slug)
					assert.Equal(t, model.OrgStatusActive, org.Status)
					createdOrgID = org.ID
					return store.Outcomes{{Op: "legacy.organizations.insert"}}, nil
				}),
			members.EXPECT().
				SeedIdentity(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, identity *model.Identity) store.Outcomes {
					assert.Equal(t, createdOrgID, identity.OrgID)
					assert.Equal(t, model.RoleOwner, identity.RoleType)
					assert.True(t, identity.IsPrimary)
					assert.Equal(t, email, identity.UserEmail)
					require.NotNil(t, identity.UserID)
					assert.Equal(t, userID, *identity.UserID)
					return store.Outcomes{{Op: "user_organizations.insert"}}
				}),
			members.EXPECT().
				DemoteOtherPrimaries(gomock.Any(), gomock.Any(), email, gomock.Any()).
				DoAndReturn(func(_ context.Context, uid *uuid.UUID, _ string, keepOrgID uuid.UUID) store.Outcomes {
					require.NotNil(t, uid)
					assert.Equal(t, userID, *uid)
					assert.Equal(t, createdOrgID, keepOrgID)
					return store.Outcomes{{Op: "user_organizations.demote_by_email"}}
				}),
		)

		org, outcomes, err := svc.CreateWithOwner(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, createdOrgID, org.ID)
		assert.Len(t, outcomes, 3)
		assert.Empty(t, outcomes.Failed())
	})

	t.Run("mirror failures do not fail the operation", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		mirrorErr := errors.New("legacy store down")
		members.EXPECT().
			CreateOrganization(gomock.Any(), gomock.Any()).
			Return(store.Outcomes{{Op: "legacy.organizations.insert", Err: mirrorErr}}, nil)
		members.EXPECT().
			SeedIdentity(gomock.Any(), gomock.Any()).
			Return(store.Outcomes{{Op: "legacy.identities.insert", Err: mirrorErr}})
		members.EXPECT().
			DemoteOtherPrimaries(gomock.Any(), gomock.Any(), email, gomock.Any()).
			Return(nil)

		org, outcomes, err := svc.CreateWithOwner(context.Background(), input)
		require.NoError(t, err)
		assert.NotNil(t, org)
		assert.Len(t, outcomes.Failed(), 2)
	})

	t.Run("authoritative store failure aborts with no side effects", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		boom := errors.New("current store down")
		members.EXPECT().
			CreateOrganization(gomock.Any(), gomock.Any()).
			Return(nil, boom)
		// No SeedIdentity or DemoteOtherPrimaries expectations: any identity
		// or demotion call would fail the test.

		org, outcomes, err := svc.CreateWithOwner(context.Background(), input)
		assert.Nil(t, org)
		assert.Nil(t, outcomes)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		bad := input
		bad.Name = ""
		_, _, err := svc.CreateWithOwner(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects missing slug", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		bad := input
		bad.Slug = ""
		_, _, err := svc.CreateWithOwner(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects missing user id and email", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		bad := input
		bad.UserID = ""
		bad.UserEmail = ""
		_, _, err := svc.CreateWithOwner(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("email-only creator is accepted", func(t *testing.T) {
		members := mocks.NewMockMembershipRepositoryIface(ctrl)
		svc := service.NewOrganizationService(members, nil)

		members.EXPECT().
			CreateOrganization(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		members.EXPECT().
			SeedIdentity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, identity *model.Identity) store.Outcomes {
				assert.Nil(t, identity.UserID)
				assert.Equal(t, email, identity.UserEmail)
				return nil
			})
		members.EXPECT().
			DemoteOtherPrimaries(gomock.Any(), gomock.Nil(), email, gomock.Any()).
			Return(nil)

		emailOnly := input
		emailOnly.UserID = ""
		_, _, err := svc.CreateWithOwner(context.Background(), emailOnly)
		require.NoError(t, err)
	})
}
