// internal/service/invitation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classloop/membership/internal/config"
	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/email"
	"github.com/classloop/membership/internal/email/mailer"
	"github.com/classloop/membership/internal/invite"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxCodeAttempts bounds retries when a freshly generated code collides with
// an existing one. Collisions are rare at 32^8 codes; hitting the bound means
// the generator is broken, not unlucky.
const maxCodeAttempts = 5

// Requester is the resolved caller identity. UserID may be nil when the
// session carried only an email; Redeem backfills it from the current store.
type Requester struct {
	UserID *uuid.UUID
	Email  string
}

type InvitationService struct {
	invitations repository.InvitationRepositoryIface
	members     repository.MembershipRepositoryIface
	users       repository.UserRepositoryIface
	authz       *AuthzResolver
	emailSvc    *email.Service
	cfg         *config.Config
	validate    *validator.Validate
	logger      *slog.Logger
}

func NewInvitationService(
	invitations repository.InvitationRepositoryIface,
	members repository.MembershipRepositoryIface,
	users repository.UserRepositoryIface,
	authz *AuthzResolver,
	emailSvc *email.Service,
	cfg *config.Config,
	logger *slog.Logger,
) *InvitationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvitationService{
		invitations: invitations,
		members:     members,
		users:       users,
		authz:       authz,
		emailSvc:    emailSvc,
		cfg:         cfg,
		validate:    validator.New(),
		logger:      logger,
	}
}

// List returns all invitations for the organization, newest first. The
// requester must hold management rights over the organization.
func (s *InvitationService) List(ctx context.Context, orgID uuid.UUID, requesterEmail string) ([]*model.Invitation, error) {
	allowed, err := s.authz.CanManage(ctx, orgID, requesterEmail)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.invitations.ListByOrg(ctx, orgID)
}

// Redeem grants the requester the membership an invitation carries.
//
// The used and expiry checks on the fetched row give callers precise errors,
// but the conditional update in MarkUsed is the only redemption gate:
// concurrent redemptions of one code race to it and exactly one wins.
func (s *InvitationService) Redeem(ctx context.Context, code string, req Requester) (*model.Identity, error) {
	code = invite.Normalize(code)
	if !invite.ValidFormat(code) {
		return nil, domain.ErrInvalidCodeFormat
	}

	inv, err := s.invitations.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if inv.IsUsed {
		return nil, domain.ErrCodeAlreadyUsed
	}
	if inv.Expired(now) {
		return nil, domain.ErrCodeExpired
	}

	// The session may carry only an email; the durable user id comes from
	// the current store's user table.
	userID := req.UserID
	if userID == nil {
		user, err := s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUnauthorized
			}
			return nil, err
		}
		userID = &user.ID
	}

	existing, err := s.members.FindIdentity(ctx, inv.OrgID, req.Email)
	if err != nil && !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrIdentityExists
	}

	won, err := s.invitations.MarkUsed(ctx, inv.ID, *userID, req.Email, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, domain.ErrCodeAlreadyUsed
	}

	identity := &model.Identity{
		OrgID:      inv.OrgID,
		UserID:     userID,
		UserEmail:  req.Email,
		RoleType:   inv.RoleType,
		RoleConfig: inv.RoleConfig,
		Status:     model.IdentityActive,
		// Redemption never changes the redeemer's primary organization.
		IsPrimary: false,
		CreatedBy: userID.String(),
	}

	outcomes, err := s.members.CreateIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	for _, o := range outcomes.Failed() {
		s.logger.WarnContext(ctx, "identity mirror write failed after redemption",
			"op", o.Op,
			"invitation_id", inv.ID,
			"error", o.Err,
		)
	}

	return identity, nil
}

type IssueInput struct {
	OrgID      uuid.UUID     `json:"org_id" validate:"required"`
	RoleType   string        `json:"role_type"`
	RoleConfig model.JSONMap `json:"role_config"`
	ExpiresIn  time.Duration `json:"expires_in"`
	// SendTo, when set, receives the code by email. Delivery is best-effort;
	// the invitation stands even if the email bounces.
	SendTo string `json:"send_to" validate:"omitempty,email"`
}

// Issue creates a new invitation for the organization. The requester must
// hold management rights. On a code collision the insert is retried with a
// fresh code, relying on the store's unique constraint to detect the clash.
func (s *InvitationService) Issue(ctx context.Context, input IssueInput, req Requester) (*model.Invitation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.authz.CanManage(ctx, input.OrgID, req.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	org, err := s.members.FindOrganization(ctx, input.OrgID)
	if err != nil {
		return nil, err
	}

	if input.RoleType == "" {
		input.RoleType = model.RoleMember
	}
	ttl := input.ExpiresIn
	if ttl <= 0 {
		ttl = s.cfg.Invitation.DefaultTTL
	}

	var inv *model.Invitation
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := invite.Generate()
		if err != nil {
			return nil, fmt.Errorf("generating invitation code: %w", err)
		}

		inv = &model.Invitation{
			ID:             uuid.New(),
			InvitationCode: code,
			OrgID:          input.OrgID,
			RoleType:       input.RoleType,
			RoleConfig:     input.RoleConfig,
			ExpiresAt:      time.Now().Add(ttl),
			CreatedBy:      req.Email,
		}

		err = s.invitations.Create(ctx, inv)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			inv = nil
			continue
		}
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("exhausted invitation code attempts")
	}

	if input.SendTo != "" && s.emailSvc != nil {
		if err := mailer.SendInvitationEmail(s.emailSvc, input.SendTo, org.Name, inv.RoleType, inv.InvitationCode, inv.ExpiresAt); err != nil {
			s.logger.WarnContext(ctx, "invitation email delivery failed",
				"invitation_id", inv.ID,
				"error", err,
			)
		}
	}

	return inv, nil
}
