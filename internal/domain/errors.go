// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound = errors.New("user not found")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Identity-related errors
	ErrIdentityNotFound = errors.New("identity not found")
	ErrIdentityExists   = errors.New("user is already a member of this organization")

	// Invitation-related errors
	ErrInvitationNotFound = errors.New("invitation code not found")
	ErrDuplicateCode      = errors.New("invitation code already exists")
	ErrInvalidCodeFormat  = errors.New("invalid invitation code format")
	ErrCodeAlreadyUsed    = errors.New("invitation code already used")
	ErrCodeExpired        = errors.New("invitation code expired")
)
