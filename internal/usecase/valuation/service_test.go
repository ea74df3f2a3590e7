package valuation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfund/vault-backend/internal/adapter/repository/memory"
	"github.com/harborfund/vault-backend/internal/domain"
	"github.com/harborfund/vault-backend/internal/usecase/oracle"
)

func newFixture(t *testing.T) (*Service, domain.VaultRepository, time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(100)
	require.NoError(t, vault.AddAsset(&domain.AssetRecord{
		Key: "pos1", Kind: domain.AssetKindPosition, PositionHandle: "strategy-a",
	}))

	repo := memory.NewVaultRepository(vault)
	service := NewService(repo, zerolog.Nop())
	service.Now = func() time.Time { return now }
	return service, repo, now
}

func TestTotalValue_SumsPrincipalAndValuations(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newFixture(t)

	require.NoError(t, service.Revalue(ctx, "pos1", decimal.NewFromInt(900)))

	total, err := service.TotalValue(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(total))
}

func TestTotalValue_StaleEntry(t *testing.T) {
	ctx := context.Background()
	service, repo, now := newFixture(t)

	// Write an entry dated beyond the staleness window
	err := repo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue("pos1", decimal.NewFromInt(900), now.Add(-2*time.Minute))
	})
	require.NoError(t, err)

	_, err = service.TotalValue(ctx)
	assert.ErrorIs(t, err, domain.ErrStale)
}

func TestRevalue_MarksReconciliation(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newFixture(t)

	err := repo.Update(ctx, func(v *domain.Vault) error {
		if _, err := v.Checkout("pos1"); err != nil {
			return err
		}
		v.Status = domain.VaultStatusDuringOperation
		v.Recon = &domain.ReconciliationRecord{
			Borrowed: map[string]bool{"pos1": true},
			Revalued: map[string]bool{},
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, service.Revalue(ctx, "pos1", decimal.NewFromInt(950)))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Recon.Revalued["pos1"])
}

func TestRevalue_UnknownAsset(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newFixture(t)

	err := service.Revalue(ctx, "ghost", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestBalanceValuator(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	oracleService := oracle.NewService(
		memory.NewPriceFeedRepository(),
		func() time.Duration { return 60 * time.Second },
		zerolog.Nop(),
	)
	require.NoError(t, oracleService.RegisterFeed(ctx, "usdc", oracle.FeedConfig{Primary: "chainfeed"}))
	require.NoError(t, oracleService.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price:    decimal.RequireFromString("1.02"),
		Decimals: 6,
		Timestamp: now.Add(-time.Second),
	}))

	valuator := NewBalanceValuator(oracleService)
	valuator.Now = func() time.Time { return now }

	// 2,500,000 raw units at 6 decimals is 2.5 tokens; 2.5 * 1.02 = 2.55
	value, err := valuator.Valuate(ctx, &domain.AssetRecord{
		Key:     "usdc",
		Kind:    domain.AssetKindBalance,
		Balance: decimal.NewFromInt(2_500_000),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.55").Equal(value))
}

func TestBalanceValuator_RejectsPositionRecords(t *testing.T) {
	ctx := context.Background()
	valuator := NewBalanceValuator(nil)

	_, err := valuator.Valuate(ctx, &domain.AssetRecord{
		Key: "pos1", Kind: domain.AssetKindPosition, PositionHandle: "strategy-a",
	})
	assert.Error(t, err)
}
