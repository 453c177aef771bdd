// internal/invite/code.go
package invite

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// CodeLength is the fixed length of every invitation code.
const CodeLength = 8

// Alphabet omits I, O, 0 and 1 so codes survive being read aloud or typed
// from a printout. Codes are uppercase on both generation and lookup.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generate returns a new invitation code. Uniqueness is the caller's problem:
// the store's unique constraint is the backstop, and the caller retries with
// a fresh code on a constraint violation.
func Generate() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// Normalize uppercases and trims a caller-supplied code so lookups are
// case-insensitive.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidFormat reports whether a normalized code could have been produced by
// Generate. Callers check this before any store lookup.
func ValidFormat(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}
