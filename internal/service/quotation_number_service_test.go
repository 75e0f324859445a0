package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationNumberFormat(t *testing.T) {
	env := newTestEnv(t)
	env.numbers.now = func() time.Time {
		return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	}

	number, err := env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q26080001", number)

	number, err = env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q26080002", number)
}

func TestQuotationNumberDoesNotResetAcrossMonths(t *testing.T) {
	env := newTestEnv(t)

	env.numbers.now = func() time.Time {
		return time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)
	}
	first, err := env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q26080001", first)

	env.numbers.now = func() time.Time {
		return time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC)
	}
	second, err := env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)
	// The month prefix changes but the lifetime counter keeps going
	assert.Equal(t, "Q26090002", second)
}

func TestQuotationNumberPerUserCounters(t *testing.T) {
	env := newTestEnv(t)
	otherCtx := env.secondUserCtx(t)
	env.numbers.now = func() time.Time {
		return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	}

	_, err := env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)
	_, err = env.numbers.Generate(env.ctx, env.user.ID)
	require.NoError(t, err)

	// The other user's counter is independent
	otherUserID := mustUserID(t, env, otherCtx)
	number, err := env.numbers.Generate(otherCtx, otherUserID)
	require.NoError(t, err)
	assert.Equal(t, "Q26080001", number)

	seq, err := env.numbers.CurrentSequence(env.ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}

func TestInitializeSequenceNeverLowers(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.numbers.InitializeSequence(env.ctx, env.user.ID, 50))
	require.NoError(t, env.numbers.InitializeSequence(env.ctx, env.user.ID, 10))

	seq, err := env.numbers.CurrentSequence(env.ctx, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, seq)
}

func TestValidQuotationNumber(t *testing.T) {
	assert.True(t, ValidQuotationNumber("Q26080007"))
	assert.True(t, ValidQuotationNumber("Q26120001"))
	assert.False(t, ValidQuotationNumber("Q26130001")) // month 13
	assert.False(t, ValidQuotationNumber("26080007"))
	assert.False(t, ValidQuotationNumber("Q2608007"))
	assert.False(t, ValidQuotationNumber("Q260800071"))
}
