package operation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/usecase/access"
)

// Continuation is handed to the operator at checkout and presented back
// across the external-work boundary.
type Continuation struct {
	AssetKeys         []string
	TotalValueBefore  decimal.Decimal
	TotalSharesBefore decimal.Decimal
}

// Service is the top-level state machine orchestrating
// checkout -> external work -> check-in -> reconciliation -> commit.
// Each transition is one atomic vault update: a failure inside a
// transition leaves all prior state unchanged. There is no mid-flight
// abandonment; the ordinary exit from DURING_OPERATION is a successful
// FinishReconcile, with ForceAbandon as the admin path of last resort.
type Service struct {
	VaultRepo domain.VaultRepository
	Access    *access.Service
	Logger    zerolog.Logger
	Now       func() time.Time

	// LossPeriod is the loss governor's rolling period length.
	LossPeriod time.Duration
	// AbandonTimeout is the minimum age of a reconciliation before an
	// admin may force-abandon it.
	AbandonTimeout time.Duration
}

// NewService creates a new operation coordinator Service instance
func NewService(
	vaultRepo domain.VaultRepository,
	accessService *access.Service,
	logger zerolog.Logger,
	lossPeriod time.Duration,
	abandonTimeout time.Duration,
) *Service {
	return &Service{
		VaultRepo:      vaultRepo,
		Access:         accessService,
		Logger:         logger,
		Now:            time.Now,
		LossPeriod:     lossPeriod,
		AbandonTimeout: abandonTimeout,
	}
}

// Start checks out the given asset keys and lends their custody to the
// operator.
// Logic:
//  1. Authorize the operator token (admission point for the freeze race)
//  2. Require Normal status and fresh valuations for the whole vault
//  3. Snapshot total value and total shares, open the reconciliation
//     record, then check out every key
//
// Returns the checked-out records plus the continuation the operator must
// present to the later transitions.
func (s *Service) Start(ctx context.Context, tokenID uuid.UUID, assetKeys []string) ([]*domain.AssetRecord, Continuation, error) {
	if err := s.Access.Authorize(ctx, tokenID, domain.RoleOperator); err != nil {
		return nil, Continuation{}, err
	}
	if len(assetKeys) == 0 {
		return nil, Continuation{}, errors.New("at least one asset key is required")
	}

	now := s.Now()
	var (
		records []*domain.AssetRecord
		cont    Continuation
	)
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusNormal {
			return fmt.Errorf("%w: status is %s", domain.ErrVaultBusy, v.Status)
		}

		totalBefore, err := v.TotalValue(now)
		if err != nil {
			return err
		}

		v.Recon = &domain.ReconciliationRecord{
			Borrowed:          make(map[string]bool, len(assetKeys)),
			Revalued:          make(map[string]bool, len(assetKeys)),
			TotalValueBefore:  totalBefore,
			TotalSharesBefore: v.TotalShares,
			StartedAt:         now,
		}
		v.Status = domain.VaultStatusDuringOperation

		records = records[:0]
		for _, key := range assetKeys {
			record, err := v.Checkout(key)
			if err != nil {
				return err
			}
			records = append(records, record)
		}

		cont = Continuation{
			AssetKeys:         append([]string(nil), assetKeys...),
			TotalValueBefore:  totalBefore,
			TotalSharesBefore: v.TotalShares,
		}
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, Continuation{}, err
	}

	s.Logger.Info().
		Strs("assets", assetKeys).
		Str("total_value_before", cont.TotalValueBefore.String()).
		Msg("operation started, custody lent to operator")
	return records, cont, nil
}

// FinishCheckin returns every borrowed asset record to the registry and
// arms the reconciliation. Fails with ErrAssetsNotReturned if any borrowed
// key is missing from the provided records; nothing is checked in on
// failure.
func (s *Service) FinishCheckin(ctx context.Context, tokenID uuid.UUID, records []*domain.AssetRecord) error {
	if err := s.Access.Authorize(ctx, tokenID, domain.RoleOperator); err != nil {
		return err
	}

	byKey := make(map[string]*domain.AssetRecord, len(records))
	for _, record := range records {
		if record == nil {
			return errors.New("asset record cannot be nil")
		}
		byKey[record.Key] = record
	}

	now := s.Now()
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusDuringOperation || v.Recon == nil {
			return fmt.Errorf("%w: no operation in progress", domain.ErrVaultBusy)
		}

		for key := range v.Recon.Borrowed {
			if _, ok := byKey[key]; !ok {
				return fmt.Errorf("%w: %q missing from check-in", domain.ErrAssetsNotReturned, key)
			}
		}
		for key, record := range byKey {
			if !v.Recon.Borrowed[key] {
				return fmt.Errorf("asset %q was not borrowed by this operation", key)
			}
			if err := v.CheckIn(key, record); err != nil {
				return err
			}
		}

		v.Recon.Armed = true
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info().Int("assets", len(records)).Msg("assets checked back in, reconciliation armed")
	return nil
}

// FinishReconcile verifies that every borrowed asset was revalued, charges
// any operator-attributable loss against the loss governor, and returns
// the vault to Normal status.
//
// A LossLimitExceeded failure aborts the commit but does not undo the
// check-in: the assets stay in the registry, the vault stays
// DURING_OPERATION, and the operator retries reconciliation once prices
// normalize (or an admin intervenes). Losses from operations spanning a
// period boundary are attributed to the period active at commit time.
func (s *Service) FinishReconcile(ctx context.Context, tokenID uuid.UUID) error {
	if err := s.Access.Authorize(ctx, tokenID, domain.RoleOperator); err != nil {
		return err
	}

	now := s.Now()
	var (
		totalAfter decimal.Decimal
		loss       decimal.Decimal
	)
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusDuringOperation || v.Recon == nil {
			return fmt.Errorf("%w: no operation in progress", domain.ErrVaultBusy)
		}
		if !v.Recon.Armed {
			return domain.ErrReconcileNotArmed
		}
		for key := range v.Recon.Borrowed {
			if !v.Recon.Revalued[key] {
				return fmt.Errorf("%w: %q", domain.ErrValueNotUpdated, key)
			}
		}

		var err error
		totalAfter, err = v.TotalValue(now)
		if err != nil {
			return err
		}

		loss = decimal.Zero
		if totalAfter.LessThan(v.Recon.TotalValueBefore) {
			loss = v.Recon.TotalValueBefore.Sub(totalAfter)
			v.Loss.ResetIfNewPeriod(now, s.LossPeriod, totalAfter)
			if err := v.Loss.Charge(loss); err != nil {
				return err
			}
		}

		// Share flow is frozen outside Normal status, so this can only
		// trip on a corrupted aggregate.
		if !v.TotalShares.Equal(v.Recon.TotalSharesBefore) {
			return fmt.Errorf("total shares changed during operation: %s != %s",
				v.TotalShares, v.Recon.TotalSharesBefore)
		}

		v.Recon = nil
		v.Status = domain.VaultStatusNormal
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info().
		Str("total_value_after", totalAfter.String()).
		Str("loss", loss.String()).
		Msg("reconciliation committed, vault back to normal")
	return nil
}

// ForceAbandon is the bounded emergency exit from DURING_OPERATION for
// when the operator can never complete (an unrecoverable external
// failure). Admin only, and only after the reconciliation has been stuck
// for at least the abandon timeout.
//
// Borrowed records that were never checked back in are written off: the
// registry slot and its valuation entry are dropped, and the realized
// loss against the pre-operation snapshot is recorded explicitly in the
// loss governor without applying the cap. Staleness is deliberately not
// enforced on the surviving valuations here; this path must stay usable
// when feeds are down.
func (s *Service) ForceAbandon(ctx context.Context, adminTokenID uuid.UUID) error {
	if err := s.Access.Authorize(ctx, adminTokenID, domain.RoleAdmin); err != nil {
		return err
	}

	now := s.Now()
	var (
		writtenOff []string
		loss       decimal.Decimal
	)
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusDuringOperation || v.Recon == nil {
			return fmt.Errorf("%w: no operation in progress", domain.ErrVaultBusy)
		}
		if now.Sub(v.Recon.StartedAt) < s.AbandonTimeout {
			return fmt.Errorf("%w: reconciliation is %s old, timeout %s",
				domain.ErrAbandonTooEarly, now.Sub(v.Recon.StartedAt), s.AbandonTimeout)
		}

		writtenOff = writtenOff[:0]
		for key := range v.Recon.Borrowed {
			if v.CheckedOut[key] {
				delete(v.CheckedOut, key)
				delete(v.Valuations, key)
				writtenOff = append(writtenOff, key)
			}
		}

		remaining := v.Principal
		for _, entry := range v.Valuations {
			remaining = remaining.Add(entry.Value)
		}
		loss = decimal.Zero
		if remaining.LessThan(v.Recon.TotalValueBefore) {
			loss = v.Recon.TotalValueBefore.Sub(remaining)
		}
		v.Loss.RecordUncapped(loss)

		v.Recon = nil
		v.Status = domain.VaultStatusNormal
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Warn().
		Strs("written_off", writtenOff).
		Str("loss", loss.String()).
		Msg("reconciliation force-abandoned by admin")
	return nil
}
