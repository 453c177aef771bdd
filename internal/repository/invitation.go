// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, inv *model.Invitation) error
	FindByCode(ctx context.Context, code string) (*model.Invitation, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Invitation, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, usedByEmail string, at time.Time) (bool, error)
}

// InvitationRepository lives entirely in the current store; invitations are a
// current-generation concept and are never mirrored to the legacy store.
type InvitationRepository struct {
	writer *store.DualWriter
}

func NewInvitationRepository(writer *store.DualWriter) *InvitationRepository {
	return &InvitationRepository{writer: writer}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}

	if err := r.writer.Primary(ctx, "invitations.insert", func(db *gorm.DB) error {
		return db.Create(inv).Error
	}); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *InvitationRepository) FindByCode(ctx context.Context, code string) (*model.Invitation, error) {
	var inv model.Invitation
	err := r.writer.Current().WithContext(ctx).
		Where("invitation_code = ?", code).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation by code: %w", err)
	}
	return &inv, nil
}

func (r *InvitationRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Invitation, error) {
	var invs []*model.Invitation
	err := r.writer.Current().WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}
	return invs, nil
}

// MarkUsed flips is_used under a conditional update and reports whether this
// caller won. The WHERE is_used = false clause is the sole redemption gate:
// two concurrent redemptions of one code both reach here, but the store lets
// exactly one through, and the loser sees zero rows affected.
func (r *InvitationRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, usedByEmail string, at time.Time) (bool, error) {
	var affected int64
	err := r.writer.Primary(ctx, "invitations.mark_used", func(db *gorm.DB) error {
		result := db.Model(&model.Invitation{}).
			Where("id = ? AND is_used = ?", id, false).
			Updates(map[string]interface{}{
				"is_used":       true,
				"used_at":       at,
				"used_by":       usedBy,
				"used_by_email": usedByEmail,
			})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
