// internal/model/organization.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusSuspended OrgStatus = "suspended"
)

// Organization is persisted with the same id in both stores. The id is
// generated by the orchestrator, never by the store, so the current-store row
// and the legacy-store mirror stay addressable by one key.
type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Slug         string    `gorm:"type:text;not null" json:"slug"`
	Status       OrgStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	ContactPhone string    `gorm:"type:text" json:"contact_phone,omitempty"`
	ContactEmail string    `gorm:"type:text" json:"contact_email,omitempty"`
	Settings     JSONMap   `gorm:"type:jsonb" json:"settings,omitempty"`
	CreatedBy    string    `gorm:"type:text" json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JSONMap is an opaque structured blob (profile fields, capability maps).
// This core passes it through; only external UI interprets it.
type JSONMap map[string]interface{}

// Scan implements the sql.Scanner interface
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}

	return json.Unmarshal(raw, m)
}

// Value implements the driver.Valuer interface
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
