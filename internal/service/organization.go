// internal/service/organization.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/repository"
	"github.com/classloop/membership/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	members  repository.MembershipRepositoryIface
	validate *validator.Validate
	logger   *slog.Logger
}

func NewOrganizationService(members repository.MembershipRepositoryIface, logger *slog.Logger) *OrganizationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrganizationService{
		members:  members,
		validate: validator.New(),
		logger:   logger,
	}
}

type CreateOrganizationInput struct {
	Name         string        `json:"orgName" validate:"required"`
	Slug         string        `json:"orgSlug" validate:"required"`
	ContactPhone string        `json:"contactPhone"`
	ContactEmail string        `json:"contactEmail" validate:"omitempty,email"`
	Settings     model.JSONMap `json:"settings"`
	UserID       string        `json:"userId" validate:"omitempty,uuid"`
	UserEmail    string        `json:"userEmail" validate:"required_without=UserID,omitempty,email"`
	CreatedBy    string        `json:"createdBy"`
}

// CreateWithOwner is the top-level organization creation use case: create the
// organization, seed the creating user as owner with is_primary=true, and
// demote the user's other primary identities.
//
// Only the current-store organization insert is fatal. Everything after it is
// best-effort; the returned outcomes say exactly which mirror and identity
// writes failed. A 2xx response therefore never implies legacy-store or
// identity-mirroring success.
func (s *OrganizationService) CreateWithOwner(ctx context.Context, input CreateOrganizationInput) (*model.Organization, store.Outcomes, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var userID *uuid.UUID
	if input.UserID != "" {
		parsed, err := uuid.Parse(input.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidInput)
		}
		userID = &parsed
	}

	org := &model.Organization{
		ID:           uuid.New(),
		Name:         input.Name,
		Slug:         input.Slug,
		Status:       model.OrgStatusActive,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		Settings:     input.Settings,
		CreatedBy:    input.CreatedBy,
	}

	// Fatal on failure: no identity or demotion side effects may run if the
	// authoritative store rejected the organization.
	outcomes, err := s.members.CreateOrganization(ctx, org)
	if err != nil {
		return nil, nil, err
	}

	owner := &model.Identity{
		OrgID:     org.ID,
		UserID:    userID,
		UserEmail: input.UserEmail,
		RoleType:  model.RoleOwner,
		Status:    model.IdentityActive,
		IsPrimary: true,
		CreatedBy: input.CreatedBy,
	}
	outcomes = append(outcomes, s.members.SeedIdentity(ctx, owner)...)

	outcomes = append(outcomes, s.members.DemoteOtherPrimaries(ctx, userID, input.UserEmail, org.ID)...)

	for _, o := range outcomes.Failed() {
		s.logger.WarnContext(ctx, "best-effort write failed during organization creation",
			"op", o.Op,
			"org_id", org.ID,
			"error", o.Err,
		)
	}

	return org, outcomes, nil
}

// Get returns the organization as persisted in the current store.
func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.members.FindOrganization(ctx, id)
}
