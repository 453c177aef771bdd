// internal/model/legacy.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// LegacyMember is the legacy store's membership row. The legacy schema
// predates the created_by column, so the two stores take different payloads
// for the same identity fact.
type LegacyMember struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrgID      uuid.UUID      `gorm:"type:uuid;not null" json:"org_id"`
	UserID     *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	UserEmail  string         `gorm:"type:text;not null" json:"user_email"`
	RoleType   string         `gorm:"type:text;not null" json:"role_type"`
	RoleConfig JSONMap        `gorm:"type:jsonb" json:"role_config,omitempty"`
	Status     IdentityStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	IsPrimary  bool           `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (LegacyMember) TableName() string { return "identities" }

// LegacyMemberFromIdentity builds the legacy store payload for an identity.
func LegacyMemberFromIdentity(id *Identity) *LegacyMember {
	return &LegacyMember{
		ID:         id.ID,
		OrgID:      id.OrgID,
		UserID:     id.UserID,
		UserEmail:  id.UserEmail,
		RoleType:   id.RoleType,
		RoleConfig: id.RoleConfig,
		Status:     id.Status,
		IsPrimary:  id.IsPrimary,
	}
}

// LegacyAdmin is the previous generation's authorization record. It is read,
// never written, by this core; it stays authoritative alongside the identity
// table until the migration retires it.
type LegacyAdmin struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null" json:"org_id"`
	UserEmail string    `gorm:"type:text;not null" json:"user_email"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (LegacyAdmin) TableName() string { return "org_admins" }
