package shares

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/harborfund/vault-backend/internal/domain"
)

// IssueInput represents a deposit request forwarded by the external queue
type IssueInput struct {
	HolderID  uuid.UUID
	RequestID uuid.UUID
	USDAmount decimal.Decimal
	// MinShares is the request's slippage bound; issuance settling below
	// it fails outright rather than partially filling.
	MinShares decimal.Decimal
}

// RedeemInput represents a withdrawal request forwarded by the external queue
type RedeemInput struct {
	HolderID  uuid.UUID
	RequestID uuid.UUID
	Shares    decimal.Decimal
	// MinUSD is the request's slippage bound.
	MinUSD decimal.Decimal
}

// Service converts USD value flow into share issuance and redemption via
// the share ratio. Both directions refuse to run while the vault is not in
// Normal status, which is what keeps total shares constant across a
// checkout/reconciliation window.
type Service struct {
	VaultRepo domain.VaultRepository
	Logger    zerolog.Logger
	Now       func() time.Time
}

// NewService creates a new share ledger Service instance
func NewService(vaultRepo domain.VaultRepository, logger zerolog.Logger) *Service {
	return &Service{
		VaultRepo: vaultRepo,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Issue prices a deposit and mints shares.
// Logic:
//  1. Require Normal status; reject non-positive amounts
//  2. Snapshot total value BEFORE adding the deposit's principal, so the
//     ratio cannot be inflated by the deposit itself
//  3. shares = usd_amount / ratio, ratio = total_value / total_shares
//     (1.0 while total_shares == 0, the bootstrap case)
//  4. Enforce the slippage bound, then credit principal, total shares and
//     the holder's account in one atomic vault update
func (s *Service) Issue(ctx context.Context, input IssueInput) (decimal.Decimal, error) {
	if input.USDAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("deposit amount must be positive")
	}
	if input.MinShares.IsNegative() {
		return decimal.Zero, errors.New("minimum shares cannot be negative")
	}

	now := s.Now()
	var issued decimal.Decimal
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusNormal {
			return fmt.Errorf("%w: status is %s", domain.ErrVaultBusy, v.Status)
		}

		totalBefore, err := v.TotalValue(now)
		if err != nil {
			return err
		}
		ratio, err := v.ShareRatio(totalBefore)
		if err != nil {
			return err
		}
		if ratio.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: share ratio", domain.ErrDivisionByZero)
		}

		issued = input.USDAmount.Div(ratio)
		if issued.LessThan(input.MinShares) {
			return fmt.Errorf("%w: would issue %s shares, minimum %s", domain.ErrSlippageExceeded, issued, input.MinShares)
		}

		v.Principal = v.Principal.Add(input.USDAmount)
		v.TotalShares = v.TotalShares.Add(issued)

		acct := v.Account(input.HolderID)
		acct.Shares = acct.Shares.Add(issued)
		acct.LastInteraction = now
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.Logger.Info().
		Str("request", input.RequestID.String()).
		Str("holder", input.HolderID.String()).
		Str("usd", input.USDAmount.String()).
		Str("shares", issued.String()).
		Msg("shares issued")
	return issued, nil
}

// Redeem burns shares and releases principal at the current ratio.
// Redemptions never fire-sell positions: a request exceeding the free
// principal fails with ErrInsufficientLiquidity.
func (s *Service) Redeem(ctx context.Context, input RedeemInput) (decimal.Decimal, error) {
	if input.Shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("redeem shares must be positive")
	}
	if input.MinUSD.IsNegative() {
		return decimal.Zero, errors.New("minimum usd cannot be negative")
	}

	now := s.Now()
	var payout decimal.Decimal
	err := s.VaultRepo.Update(ctx, func(v *domain.Vault) error {
		if v.Status != domain.VaultStatusNormal {
			return fmt.Errorf("%w: status is %s", domain.ErrVaultBusy, v.Status)
		}

		acct := v.Account(input.HolderID)
		if acct.Shares.LessThan(input.Shares) {
			return fmt.Errorf("holder %s has %s shares, cannot redeem %s", input.HolderID, acct.Shares, input.Shares)
		}

		total, err := v.TotalValue(now)
		if err != nil {
			return err
		}
		ratio, err := v.ShareRatio(total)
		if err != nil {
			return err
		}

		payout = input.Shares.Mul(ratio)
		if payout.LessThan(input.MinUSD) {
			return fmt.Errorf("%w: would pay %s, minimum %s", domain.ErrSlippageExceeded, payout, input.MinUSD)
		}
		if payout.GreaterThan(v.Principal) {
			return fmt.Errorf("%w: payout %s exceeds free principal %s", domain.ErrInsufficientLiquidity, payout, v.Principal)
		}

		v.Principal = v.Principal.Sub(payout)
		v.TotalShares = v.TotalShares.Sub(input.Shares)
		acct.Shares = acct.Shares.Sub(input.Shares)
		acct.LastInteraction = now
		v.UpdatedAt = now
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.Logger.Info().
		Str("request", input.RequestID.String()).
		Str("holder", input.HolderID.String()).
		Str("shares", input.Shares.String()).
		Str("usd", payout.String()).
		Msg("shares redeemed")
	return payout, nil
}
