package admin

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

// Service exposes the admin surface: asset onboarding and the two governed
// config knobs. All calls are admin-token gated; token and freeze
// management live on the access service itself.
type Service struct {
	VaultRepo domain.VaultRepository
	Access    *access.Service
	Logger    zerolog.Logger
}

// NewService creates a new admin Service instance
func NewService(vaultRepo domain.VaultRepository, accessService *access.Service, logger zerolog.Logger) *Service {
	return &Service{
		VaultRepo: vaultRepo,
		Access:    accessService,
		Logger:    logger,
	}
}

// AddAsset registers a new custodial asset record with the vault
func (s *Service) AddAsset(ctx context.Context, adminID uuid.UUID, record *domain.AssetRecord) error {
	if err := s.Access.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		return v.AddAsset(record)
	})
	if err != nil {
		return err
	}

	s.Logger.Info().Str("asset", record.Key).Str("kind", string(record.Kind)).Msg("asset added")
	return nil
}

// SetLossFraction updates the loss governor's per-period cap fraction
func (s *Service) SetLossFraction(ctx context.Context, adminID uuid.UUID, fraction decimal.Decimal) error {
	if err := s.Access.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}
	if fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("loss fraction must be between 0 and 1")
	}

	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		v.Loss.MaxLossFraction = fraction
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info().Str("fraction", fraction.String()).Msg("loss fraction updated")
	return nil
}

// SetStalenessWindow updates the maximum age for cached prices and
// valuations. Takes effect for subsequent reads.
func (s *Service) SetStalenessWindow(ctx context.Context, adminID uuid.UUID, window time.Duration) error {
	if err := s.Access.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}
	if window <= 0 {
		return errors.New("staleness window must be positive")
	}

	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		v.StalenessWindow = window
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info().Dur("window", window).Msg("staleness window updated")
	return nil
}

// SetDisabled flips the vault between Normal and Disabled.
// Disabling is rejected mid-operation; reconciliation must complete (or be
// force-abandoned) first.
func (s *Service) SetDisabled(ctx context.Context, adminID uuid.UUID, disabled bool) error {
	if err := s.Access.Authorize(ctx, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status == domain.VaultStatusDuringOperation {
			return fmt.Errorf("%w: cannot change disabled state mid-operation", domain.ErrVaultBusy)
		}
		if disabled {
			v.Status = domain.VaultStatusDisabled
		} else {
			v.Status = domain.VaultStatusNormal
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info().Bool("disabled", disabled).Msg("vault disabled state changed")
	return nil
}
