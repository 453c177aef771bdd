// internal/model/identity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type IdentityStatus string

const (
	IdentityActive   IdentityStatus = "active"
	IdentityInactive IdentityStatus = "inactive"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Identity links a user to an organization with a role. UserEmail is the
// durable correlation key; UserID may be absent at creation time and
// backfilled later. Uniqueness of (org_id, user_email) is enforced by the
// current store's constraint, not by application pre-checks alone.
type Identity struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrgID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_org_user_email" json:"org_id"`
	UserID     *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	UserEmail  string         `gorm:"type:citext;not null;uniqueIndex:idx_org_user_email" json:"user_email"`
	RoleType   string         `gorm:"type:text;not null;default:'member'" json:"role_type"`
	RoleConfig JSONMap        `gorm:"type:jsonb" json:"role_config,omitempty"`
	Status     IdentityStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	IsPrimary  bool           `gorm:"not null;default:false" json:"is_primary"`
	CreatedBy  string         `gorm:"type:text" json:"created_by,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName maps Identity onto the current store's membership table.
func (Identity) TableName() string { return "user_organizations" }

// CanManage reports whether this identity alone grants management rights
// over its organization.
func (i *Identity) CanManage() bool {
	return i.Status == IdentityActive && (i.RoleType == RoleOwner || i.RoleType == RoleAdmin)
}
