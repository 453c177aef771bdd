// internal/repository/legacy_admin.go
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

type LegacyAdminRepositoryIface interface {
	FindAdmin(ctx context.Context, orgID uuid.UUID, userEmail string) (*model.LegacyAdmin, error)
}

// LegacyAdminRepository reads the legacy store's admin table. It exists only
// for the authorization union and goes away with the legacy store.
type LegacyAdminRepository struct {
	writer *store.DualWriter
}

func NewLegacyAdminRepository(writer *store.DualWriter) *LegacyAdminRepository {
	return &LegacyAdminRepository{writer: writer}
}

func (r *LegacyAdminRepository) FindAdmin(ctx context.Context, orgID uuid.UUID, userEmail string) (*model.LegacyAdmin, error) {
	var admin model.LegacyAdmin
	err := r.writer.Legacy().WithContext(ctx).
		Where("org_id = ? AND user_email = ?", orgID, userEmail).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding legacy admin: %w", err)
	}
	return &admin, nil
}
