package valuation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/harborfund/vault-backend/internal/domain"
)

// Valuator computes the USD value of one asset record.
// One implementation exists per asset kind; implementations must be
// idempotent and must not mutate custody state.
type Valuator interface {
	Valuate(ctx context.Context, record *domain.AssetRecord) (decimal.Decimal, error)
}

// Service sums cached valuations into a total USD figure and gate-keeps
// staleness. Revalue is the single write path into the valuation cache,
// regardless of which Valuator produced the number.
type Service struct {
	VaultRepo domain.VaultRepository
	Logger    zerolog.Logger
	Now       func() time.Time
}

// NewService creates a new valuation Service instance
func NewService(vaultRepo domain.VaultRepository, logger zerolog.Logger) *Service {
	return &Service{
		VaultRepo: vaultRepo,
		Logger:    logger,
		Now:       time.Now,
	}
}

// TotalValue returns the vault's total USD value at this instant.
// Fails with ErrStale when any cached valuation has aged out.
func (s *Service) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	vault, err := s.VaultRepo.Get(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load vault: %w", err)
	}
	return vault.TotalValue(s.Now())
}

// Revalue writes a fresh USD valuation for an asset key.
// When a reconciliation is active and the key was borrowed, the key is
// marked revalued; repeating the call leaves that membership unchanged.
func (s *Service) Revalue(ctx context.Context, assetKey string, usdValue decimal.Decimal) error {
	now := s.Now()
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue(assetKey, usdValue, now)
	})
	if err != nil {
		return err
	}

	s.Logger.Debug().Str("asset", assetKey).Str("usd", usdValue.String()).Msg("asset revalued")
	return nil
}

// RevalueRegistered runs the valuation callback for an asset that is
// currently in the registry and writes the result. Checked-out assets are
// valuated by their holder, who calls Revalue with the computed figure.
func (s *Service) RevalueRegistered(ctx context.Context, assetKey string, valuator Valuator) error {
	vault, err := s.VaultRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load vault: %w", err)
	}
	record, ok := vault.Assets[assetKey]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrAssetNotFound, assetKey)
	}

	value, err := valuator.Valuate(ctx, record)
	if err != nil {
		return fmt.Errorf("valuation callback failed for %q: %w", assetKey, err)
	}
	return s.Revalue(ctx, assetKey, value)
}
