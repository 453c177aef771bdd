package invite_test

import (
	"strings"
	"testing"

	"github.com/classloop/membership/internal/invite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := invite.Generate()
		require.NoError(t, err)

		assert.Len(t, code, invite.CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(invite.Alphabet, r), "unexpected character %q in code %s", r, code)
		}
		assert.True(t, invite.ValidFormat(code))

		seen[code] = true
	}

	// 100 draws from a 32^8 space should never collide.
	assert.Len(t, seen, 100)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABCD2345", invite.Normalize("  abcd2345 "))
	assert.Equal(t, "ZZZZZZZZ", invite.Normalize("zzzzzzzz"))
}

func TestValidFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid code", "ABCD2345", true},
		{"too short", "ABCD234", false},
		{"too long", "ABCD23456", false},
		{"empty", "", false},
		{"ambiguous letter O", "ABCDO345", false},
		{"ambiguous digit 0", "ABCD0345", false},
		{"ambiguous digit 1", "ABCD1345", false},
		{"lowercase not normalized", "abcd2345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invite.ValidFormat(tt.code))
		})
	}
}
