// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a single-use, time-limited credential granting a specific
// role in a specific organization. The code is generated independently of any
// entity id so it can be handed out before the redeemer is known.
type Invitation struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvitationCode string     `gorm:"type:text;not null;uniqueIndex" json:"invitation_code"`
	OrgID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	RoleType       string     `gorm:"type:text;not null;default:'member'" json:"role_type"`
	RoleConfig     JSONMap    `gorm:"type:jsonb" json:"role_config,omitempty"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expires_at"`
	IsUsed         bool       `gorm:"not null;default:false" json:"is_used"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	UsedBy         *uuid.UUID `gorm:"type:uuid" json:"used_by,omitempty"`
	UsedByEmail    string     `gorm:"type:text" json:"used_by_email,omitempty"`
	CreatedBy      string     `gorm:"type:text" json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Expired reports whether the invitation is past its deadline at t.
func (inv *Invitation) Expired(t time.Time) bool {
	return t.After(inv.ExpiresAt)
}
