package store_test

import (
	"errors"
	"testing"

	"github.com/classloop/membership/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestOutcomesFailed(t *testing.T) {
	boom := errors.New("connection refused")

	outcomes := store.Outcomes{
		{Op: "legacy.organizations.insert"},
		{Op: "legacy.identities.insert", Err: boom},
		{Op: "user_organizations.demote_by_email"},
	}

	failed := outcomes.Failed()
	assert.Len(t, failed, 1)
	assert.Equal(t, "legacy.identities.insert", failed[0].Op)
	assert.ErrorIs(t, failed[0].Err, boom)
}

func TestOutcomesFailedEmpty(t *testing.T) {
	outcomes := store.Outcomes{
		{Op: "legacy.organizations.insert"},
	}
	assert.Empty(t, outcomes.Failed())
	assert.Empty(t, store.Outcomes(nil).Failed())
}

func TestOutcomeString(t *testing.T) {
	ok := store.Outcome{Op: "legacy.organizations.insert"}
	assert.True(t, ok.Ok())
	assert.Equal(t, "legacy.organizations.insert: ok", ok.String())

	failed := store.Outcome{Op: "legacy.identities.insert", Err: errors.New("timeout")}
	assert.False(t, failed.Ok())
	assert.Equal(t, "legacy.identities.insert: timeout", failed.String())
}
