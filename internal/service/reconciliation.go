// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/store"
	"gorm.io/gorm"
)

// ReconciliationService backfills the legacy store with rows the best-effort
// mirror path dropped. The write path never blocks on the legacy store, so
// drift is expected; this service is how operators close the gap.
type ReconciliationService struct {
	writer    *store.DualWriter
	batchSize int
	dryRun    bool
	logger    *slog.Logger
}

func NewReconciliationService(writer *store.DualWriter, logger *slog.Logger) *ReconciliationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconciliationService{
		writer:    writer,
		batchSize: 100,
		logger:    logger,
	}
}

func (s *ReconciliationService) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

func (s *ReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileAll replays missing organizations first so identity rows never
// reference an organization the legacy store has not seen.
func (s *ReconciliationService) ReconcileAll(ctx context.Context) error {
	if err := s.ReconcileOrganizations(ctx); err != nil {
		return err
	}
	return s.ReconcileIdentities(ctx)
}

// ReconcileOrganizations copies organizations present in the current store
// but absent from the legacy store.
func (s *ReconciliationService) ReconcileOrganizations(ctx context.Context) error {
	offset := 0
	repaired, missing := 0, 0

	for {
		var orgs []*model.Organization
		err := s.writer.Current().WithContext(ctx).
			Order("created_at ASC").
			Offset(offset).Limit(s.batchSize).
			Find(&orgs).Error
		if err != nil {
			return fmt.Errorf("listing organizations: %w", err)
		}
		if len(orgs) == 0 {
			break
		}

		for _, org := range orgs {
			var count int64
			err := s.writer.Legacy().WithContext(ctx).
				Model(&model.Organization{}).
				Where("id = ?", org.ID).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("checking legacy organization %s: %w", org.ID, err)
			}
			if count > 0 {
				continue
			}

			missing++
			if s.dryRun {
				s.logger.Info("would replay organization to legacy store", "org_id", org.ID, "slug", org.Slug)
				continue
			}

			outcome := s.writer.Mirror(ctx, "legacy.organizations.replay", func(db *gorm.DB) error {
				return db.Create(org).Error
			})
			if outcome.Ok() {
				repaired++
			}
		}

		offset += len(orgs)
	}

	s.logger.Info("organization reconciliation finished", "missing", missing, "repaired", repaired, "dry_run", s.dryRun)
	return nil
}

// ReconcileIdentities copies membership rows present in the current store but
// absent from the legacy identities table.
func (s *ReconciliationService) ReconcileIdentities(ctx context.Context) error {
	offset := 0
	repaired, missing := 0, 0

	for {
		var identities []*model.Identity
		err := s.writer.Current().WithContext(ctx).
			Order("created_at ASC").
			Offset(offset).Limit(s.batchSize).
			Find(&identities).Error
		if err != nil {
			return fmt.Errorf("listing identities: %w", err)
		}
		if len(identities) == 0 {
			break
		}

		for _, identity := range identities {
			var count int64
			err := s.writer.Legacy().WithContext(ctx).
				Model(&model.LegacyMember{}).
				Where("org_id = ? AND user_email = ?", identity.OrgID, identity.UserEmail).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("checking legacy identity %s: %w", identity.ID, err)
			}
			if count > 0 {
				continue
			}

			missing++
			if s.dryRun {
				s.logger.Info("would replay identity to legacy store",
					"org_id", identity.OrgID, "user_email", identity.UserEmail)
				continue
			}

			outcome := s.writer.Mirror(ctx, "legacy.identities.replay", func(db *gorm.DB) error {
				return db.Create(model.LegacyMemberFromIdentity(identity)).Error
			})
			if outcome.Ok() {
				repaired++
			}
		}

		offset += len(identities)
	}

	s.logger.Info("identity reconciliation finished", "missing", missing, "repaired", repaired, "dry_run", s.dryRun)
	return nil
}
