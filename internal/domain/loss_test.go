package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLossGovernor_ChargeWithinLimit(t *testing.T) {
	state := LossGovernorState{
		Baseline:        decimal.NewFromInt(100_000),
		Accumulated:     decimal.Zero,
		MaxLossFraction: decimal.RequireFromString("0.001"),
	}

	// Limit is $100. A $90 charge fits.
	require.NoError(t, state.Charge(decimal.NewFromInt(90)))
	assert.True(t, decimal.NewFromInt(90).Equal(state.Accumulated))

	// A further $15 would total $105, over the limit; the accumulated
	// loss must stay where it was.
	err := state.Charge(decimal.NewFromInt(15))
	assert.ErrorIs(t, err, ErrLossLimitExceeded)
	assert.True(t, decimal.NewFromInt(90).Equal(state.Accumulated))
}

func TestLossGovernor_ChargeRejectsNegative(t *testing.T) {
	state := LossGovernorState{
		Baseline:        decimal.NewFromInt(1000),
		Accumulated:     decimal.Zero,
		MaxLossFraction: decimal.RequireFromString("0.5"),
	}
	assert.Error(t, state.Charge(decimal.NewFromInt(-1)))
}

func TestLossGovernor_ResetIfNewPeriod(t *testing.T) {
	day := 24 * time.Hour
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	state := LossGovernorState{
		CurrentPeriodID: PeriodID(start, day),
		Baseline:        decimal.NewFromInt(100_000),
		Accumulated:     decimal.NewFromInt(90),
		MaxLossFraction: decimal.RequireFromString("0.001"),
	}

	// Same period: nothing changes
	state.ResetIfNewPeriod(start.Add(time.Hour), day, decimal.NewFromInt(99_000))
	assert.True(t, decimal.NewFromInt(90).Equal(state.Accumulated))
	assert.True(t, decimal.NewFromInt(100_000).Equal(state.Baseline))

	// Next day: baseline re-snapshots, accumulated resets
	state.ResetIfNewPeriod(start.Add(day), day, decimal.NewFromInt(99_000))
	assert.True(t, state.Accumulated.IsZero())
	assert.True(t, decimal.NewFromInt(99_000).Equal(state.Baseline))
}

func TestLossGovernor_RecordUncapped(t *testing.T) {
	state := LossGovernorState{
		Baseline:        decimal.NewFromInt(1000),
		Accumulated:     decimal.Zero,
		MaxLossFraction: decimal.RequireFromString("0.001"),
	}

	// Far above the cap, recorded anyway
	state.RecordUncapped(decimal.NewFromInt(500))
	assert.True(t, decimal.NewFromInt(500).Equal(state.Accumulated))
}
