// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	CreateOrganization(ctx context.Context, org *model.Organization) (store.Outcomes, error)
	FindOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	CreateIdentity(ctx context.Context, identity *model.Identity) (store.Outcomes, error)
	SeedIdentity(ctx context.Context, identity *model.Identity) store.Outcomes
	FindIdentity(ctx context.Context, orgID uuid.UUID, userEmail string) (*model.Identity, error)
	FindIdentitiesByEmail(ctx context.Context, userEmail string) ([]*model.Identity, error)
	DemoteOtherPrimaries(ctx context.Context, userID *uuid.UUID, userEmail string, keepOrgID uuid.UUID) store.Outcomes
}

// identitySink writes the identity fact into one membership table. The active
// schema version registers a sink per table that still tracks membership;
// during the migration that is the legacy "identities" table plus the legacy
// copy of "user_organizations". The list shrinks as tables are retired.
type identitySink struct {
	name  string
	write func(ctx context.Context, identity *model.Identity) store.Outcome
}

type MembershipRepository struct {
	writer *store.DualWriter
	sinks  []identitySink
}

func NewMembershipRepository(writer *store.DualWriter) *MembershipRepository {
	r := &MembershipRepository{writer: writer}
	r.sinks = []identitySink{
		{
			name: "legacy.identities",
			write: func(ctx context.Context, identity *model.Identity) store.Outcome {
				return writer.Mirror(ctx, "legacy.identities.insert", func(db *gorm.DB) error {
					return db.Create(model.LegacyMemberFromIdentity(identity)).Error
				})
			},
		},
		{
			name: "legacy.user_organizations",
			write: func(ctx context.Context, identity *model.Identity) store.Outcome {
				return writer.Mirror(ctx, "legacy.user_organizations.insert", func(db *gorm.DB) error {
					return db.Create(identity).Error
				})
			},
		},
	}
	return r
}

// CreateOrganization inserts the organization into the current store, then
// mirrors the same row (same id) into the legacy store. Only the current
// store insert can fail the call; mirror results come back as outcomes.
func (r *MembershipRepository) CreateOrganization(ctx context.Context, org *model.Organization) (store.Outcomes, error) {
	if org.Name == "" || org.Slug == "" {
		return nil, fmt.Errorf("%w: organization name and slug are required", domain.ErrInvalidInput)
	}
	if org.Status == "" {
		org.Status = model.OrgStatusActive
	}

	if err := r.writer.Primary(ctx, "organizations.insert", func(db *gorm.DB) error {
		return db.Create(org).Error
	}); err != nil {
		return nil, err
	}

	mirror := r.writer.Mirror(ctx, "legacy.organizations.insert", func(db *gorm.DB) error {
		return db.Create(org).Error
	})

	return store.Outcomes{mirror}, nil
}

func (r *MembershipRepository) FindOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.writer.Current().WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// CreateIdentity writes the identity into the current store's membership
// table and then into every registered mirror sink. At least one of user_id
// and user_email must be set. A unique-constraint violation on the current
// store surfaces as ErrIdentityExists; the constraint is the real uniqueness
// gate, any caller pre-check is only a fast path.
func (r *MembershipRepository) CreateIdentity(ctx context.Context, identity *model.Identity) (store.Outcomes, error) {
	if identity.UserID == nil && identity.UserEmail == "" {
		return nil, fmt.Errorf("%w: identity requires a user id or user email", domain.ErrInvalidInput)
	}
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}
	if identity.Status == "" {
		identity.Status = model.IdentityActive
	}

	if err := r.writer.Primary(ctx, "user_organizations.insert", func(db *gorm.DB) error {
		return db.Create(identity).Error
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrIdentityExists
		}
		return nil, err
	}

	outcomes := make(store.Outcomes, 0, len(r.sinks))
	for _, sink := range r.sinks {
		outcomes = append(outcomes, sink.write(ctx, identity))
	}
	return outcomes, nil
}

// SeedIdentity is CreateIdentity with the current store demoted to
// best-effort. Organization creation uses it: the organization row is already
// durable and must be returned even if owner seeding fails, so every
// membership write here is an outcome, not an abort.
func (r *MembershipRepository) SeedIdentity(ctx context.Context, identity *model.Identity) store.Outcomes {
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}
	if identity.Status == "" {
		identity.Status = model.IdentityActive
	}

	outcomes := make(store.Outcomes, 0, len(r.sinks)+1)
	outcomes = append(outcomes, r.writer.Attempt(ctx, "user_organizations.insert", func(db *gorm.DB) error {
		return db.Create(identity).Error
	}))
	for _, sink := range r.sinks {
		outcomes = append(outcomes, sink.write(ctx, identity))
	}
	return outcomes
}

func (r *MembershipRepository) FindIdentity(ctx context.Context, orgID uuid.UUID, userEmail string) (*model.Identity, error) {
	var identity model.Identity
	err := r.writer.Current().WithContext(ctx).
		Where("org_id = ? AND user_email = ?", orgID, userEmail).
		First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("finding identity: %w", err)
	}
	return &identity, nil
}

func (r *MembershipRepository) FindIdentitiesByEmail(ctx context.Context, userEmail string) ([]*model.Identity, error) {
	var identities []*model.Identity
	err := r.writer.Current().WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&identities).Error
	if err != nil {
		return nil, fmt.Errorf("finding identities by email: %w", err)
	}
	return identities, nil
}

// DemoteOtherPrimaries clears is_primary on every identity of the user except
// keep_org_id. Rows may be keyed by user_id, user_email or both, so the
// update runs once per identifying key present, against both stores: up to
// four statements, all best-effort.
func (r *MembershipRepository) DemoteOtherPrimaries(ctx context.Context, userID *uuid.UUID, userEmail string, keepOrgID uuid.UUID) store.Outcomes {
	var outcomes store.Outcomes

	demote := func(db *gorm.DB, table, column string, key interface{}) error {
		return db.Table(table).
			Where(column+" = ? AND org_id <> ? AND is_primary = ?", key, keepOrgID, true).
			Update("is_primary", false).Error
	}

	if userID != nil {
		outcomes = append(outcomes, r.writer.Attempt(ctx, "user_organizations.demote_by_user_id", func(db *gorm.DB) error {
			return demote(db, "user_organizations", "user_id", *userID)
		}))
		outcomes = append(outcomes, r.writer.Mirror(ctx, "legacy.identities.demote_by_user_id", func(db *gorm.DB) error {
			return demote(db, "identities", "user_id", *userID)
		}))
	}
	if userEmail != "" {
		outcomes = append(outcomes, r.writer.Attempt(ctx, "user_organizations.demote_by_email", func(db *gorm.DB) error {
			return demote(db, "user_organizations", "user_email", userEmail)
		}))
		outcomes = append(outcomes, r.writer.Mirror(ctx, "legacy.identities.demote_by_email", func(db *gorm.DB) error {
			return demote(db, "identities", "user_email", userEmail)
		}))
	}

	return outcomes
}
