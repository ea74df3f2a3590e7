package valuation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/usecase/oracle"
)

// BalanceValuator values plain fungible balances through the price oracle:
// usd = balance * price / 10^decimals.
// External strategy positions carry their own Valuator implementations
// and do not go through the oracle here.
type BalanceValuator struct {
	Oracle *oracle.Service
	Now    func() time.Time
}

// NewBalanceValuator creates a new BalanceValuator instance
func NewBalanceValuator(priceOracle *oracle.Service) *BalanceValuator {
	return &BalanceValuator{
		Oracle: priceOracle,
		Now:    time.Now,
	}
}

// Valuate computes the USD value of a balance record
func (b *BalanceValuator) Valuate(ctx context.Context, record *domain.AssetRecord) (decimal.Decimal, error) {
	if record.Kind != domain.AssetKindBalance {
		return decimal.Zero, fmt.Errorf("balance valuator cannot value %s asset %q", record.Kind, record.Key)
	}

	quote, err := b.Oracle.GetPrice(ctx, record.Key, b.Now())
	if err != nil {
		return decimal.Zero, err
	}
	// Oracle feeds guarantee positive prices, but the price participates
	// in unit conversion, so assert immediately before use anyway.
	if quote.Price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: non-positive price for %q", domain.ErrInvalidReading, record.Key)
	}

	scale := decimal.New(1, quote.Decimals)
	if scale.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: zero unit scale for %q", domain.ErrDivisionByZero, record.Key)
	}
	return record.Balance.Mul(quote.Price).Div(scale), nil
}
