// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

// User is the current store's account record. This core only reads it to
// backfill a user_id for a session that carries just an email.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName string     `gorm:"type:text" json:"first_name"`
	LastName  string     `gorm:"type:text" json:"last_name"`
	Status    UserStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
