// internal/service/authz.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/classloop/membership/internal/domain"
	"github.com/classloop/membership/internal/repository"
	"github.com/google/uuid"
)

// Decision is one provider's answer to "can this user manage this org".
// A provider that errors contributes Unknown; an error must never read as
// either a grant or a denial on its own.
type Decision int

const (
	DecisionUnknown Decision = iota
	DecisionAllow
	DecisionDeny
)

// AuthorizationProvider is one source of management-rights truth. Two
// generations coexist during the store migration, so every authorization
// check fans out to all registered providers.
type AuthorizationProvider interface {
	Name() string
	CanManage(ctx context.Context, orgID uuid.UUID, userEmail string) (Decision, error)
}

// AuthzResolver unions an ordered list of providers. The union requires at
// least one definitive Allow among providers that did not error; if every
// provider errors the check fails closed with an explicit error.
type AuthzResolver struct {
	providers []AuthorizationProvider
	logger    *slog.Logger
}

func NewAuthzResolver(logger *slog.Logger, providers ...AuthorizationProvider) *AuthzResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthzResolver{providers: providers, logger: logger}
}

func (r *AuthzResolver) CanManage(ctx context.Context, orgID uuid.UUID, userEmail string) (bool, error) {
	if len(r.providers) == 0 {
		return false, fmt.Errorf("%w: no authorization providers configured", domain.ErrForbidden)
	}

	allowed := false
	errored := 0

	for _, p := range r.providers {
		decision, err := p.CanManage(ctx, orgID, userEmail)
		if err != nil {
			errored++
			r.logger.WarnContext(ctx, "authorization provider failed",
				"provider", p.Name(),
				"org_id", orgID,
				"error", err,
			)
			continue
		}
		if decision == DecisionAllow {
			allowed = true
		}
	}

	if allowed {
		return true, nil
	}
	if errored == len(r.providers) {
		return false, fmt.Errorf("%w: all authorization sources failed", domain.ErrForbidden)
	}
	return false, nil
}

// identityProvider answers from the current store's membership table: an
// active identity with an owner or admin role grants management rights.
type identityProvider struct {
	members repository.MembershipRepositoryIface
}

func NewIdentityProvider(members repository.MembershipRepositoryIface) AuthorizationProvider {
	return &identityProvider{members: members}
}

func (p *identityProvider) Name() string { return "identity" }

func (p *identityProvider) CanManage(ctx context.Context, orgID uuid.UUID, userEmail string) (Decision, error) {
	identity, err := p.members.FindIdentity(ctx, orgID, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return DecisionDeny, nil
		}
		return DecisionUnknown, err
	}
	if identity.CanManage() {
		return DecisionAllow, nil
	}
	return DecisionDeny, nil
}

// legacyAdminProvider answers from the legacy store's admin table. It is
// checked on every decision until that table is retired.
type legacyAdminProvider struct {
	admins repository.LegacyAdminRepositoryIface
}

func NewLegacyAdminProvider(admins repository.LegacyAdminRepositoryIface) AuthorizationProvider {
	return &legacyAdminProvider{admins: admins}
}

func (p *legacyAdminProvider) Name() string { return "legacy-admin" }

func (p *legacyAdminProvider) CanManage(ctx context.Context, orgID uuid.UUID, userEmail string) (Decision, error) {
	admin, err := p.admins.FindAdmin(ctx, orgID, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return DecisionDeny, nil
		}
		return DecisionUnknown, err
	}
	if admin.Role == "admin" {
		return DecisionAllow, nil
	}
	return DecisionDeny, nil
}
