package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LossGovernorState caps the cumulative operator-attributable value loss
// permitted within one rolling period.
// The baseline is snapshotted lazily at the period's first charge, so a
// period with no losses never records a baseline.
type LossGovernorState struct {
	CurrentPeriodID int64           `json:"current_period_id"`
	Baseline        decimal.Decimal `json:"baseline"`
	Accumulated     decimal.Decimal `json:"accumulated"`
	MaxLossFraction decimal.Decimal `json:"max_loss_fraction"`
}

// PeriodID maps a timestamp to its rolling-period identifier
func PeriodID(now time.Time, period time.Duration) int64 {
	if period <= 0 {
		return 0
	}
	return now.Unix() / int64(period/time.Second)
}

// ResetIfNewPeriod snapshots a fresh baseline and zeroes the accumulated
// loss when the given timestamp crosses into a new period.
// totalValue is the vault's current total USD value at the time of the
// period's first charge.
func (s *LossGovernorState) ResetIfNewPeriod(now time.Time, period time.Duration, totalValue decimal.Decimal) {
	id := PeriodID(now, period)
	if id == s.CurrentPeriodID {
		return
	}
	s.CurrentPeriodID = id
	s.Baseline = totalValue
	s.Accumulated = decimal.Zero
}

// Charge attributes an operator-caused loss to the current period.
// Returns ErrLossLimitExceeded when the accumulated loss would exceed
// baseline * max_loss_fraction; the caller must abort its enclosing
// mutation so the charge is never persisted.
func (s *LossGovernorState) Charge(delta decimal.Decimal) error {
	if delta.IsNegative() {
		return errors.New("loss charge cannot be negative")
	}

	next := s.Accumulated.Add(delta)
	limit := s.Baseline.Mul(s.MaxLossFraction)
	if next.GreaterThan(limit) {
		return ErrLossLimitExceeded
	}

	s.Accumulated = next
	return nil
}

// RecordUncapped adds a loss to the accumulated total without applying the
// cap. Reserved for the explicit admin force-abandon path, where the loss
// must be recorded even when it exceeds the governed limit.
func (s *LossGovernorState) RecordUncapped(delta decimal.Decimal) {
	if delta.IsNegative() {
		return
	}
	s.Accumulated = s.Accumulated.Add(delta)
}
