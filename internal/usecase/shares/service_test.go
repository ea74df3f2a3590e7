package shares

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfund/vault-backend/internal/adapter/repository/memory"
	"github.com/harborfund/vault-backend/internal/domain"
)

func newService(vault *domain.Vault) (*Service, domain.VaultRepository) {
	repo := memory.NewVaultRepository(vault)
	service := NewService(repo, zerolog.Nop())
	service.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestIssue_Bootstrap(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	service, repo := newService(vault)

	// First ever deposit: no shares outstanding, ratio defaults to 1.0
	issued, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(issued))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(stored.TotalShares))
	assert.True(t, decimal.NewFromInt(1000).Equal(stored.Principal))
}

func TestIssue_SteadyState(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	// $10,000 total value against 100 shares: ratio 100
	vault.Principal = decimal.NewFromInt(10_000)
	vault.TotalShares = decimal.NewFromInt(100)
	service, repo := newService(vault)

	issued, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	// Ratio is computed from the snapshot excluding this deposit's own
	// principal: 1000 / 100 = 10 shares.
	assert.True(t, decimal.NewFromInt(10).Equal(issued))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(110).Equal(stored.TotalShares))
	assert.True(t, decimal.NewFromInt(11_000).Equal(stored.Principal))
}

func TestIssue_RejectedWhileOperationActive(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Status = domain.VaultStatusDuringOperation
	vault.Recon = &domain.ReconciliationRecord{
		Borrowed: map[string]bool{},
		Revalued: map[string]bool{},
	}
	service, _ := newService(vault)

	_, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, domain.ErrVaultBusy)
}

func TestIssue_SlippageBound(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(10_000)
	vault.TotalShares = decimal.NewFromInt(100)
	service, repo := newService(vault)

	// Deposit would issue 10 shares; requiring 11 must fail whole
	_, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.NewFromInt(1000),
		MinShares: decimal.NewFromInt(11),
	})
	assert.ErrorIs(t, err, domain.ErrSlippageExceeded)

	// No partial fill
	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(stored.TotalShares))
}

func TestIssue_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(domain.NewVault(60*time.Second, decimal.RequireFromString("0.001")))

	_, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.Zero,
	})
	assert.Error(t, err)
}

func TestIssue_FailsOnStaleValuation(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	require.NoError(t, vault.AddAsset(&domain.AssetRecord{
		Key: "pos1", Kind: domain.AssetKindPosition, PositionHandle: "strategy-a",
	}))

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, vault.Revalue("pos1", decimal.NewFromInt(500), now.Add(-2*time.Minute)))

	service, _ := newService(vault)
	_, err := service.Issue(ctx, IssueInput{
		HolderID:  uuid.New(),
		RequestID: uuid.New(),
		USDAmount: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, domain.ErrStale)
}

func TestRedeem_PaysAtRatio(t *testing.T) {
	ctx := context.Background()
	holderID := uuid.New()

	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(10_000)
	vault.TotalShares = decimal.NewFromInt(100)
	vault.Accounts[holderID] = &domain.ShareAccount{HolderID: holderID, Shares: decimal.NewFromInt(50)}
	service, repo := newService(vault)

	payout, err := service.Redeem(ctx, RedeemInput{
		HolderID:  holderID,
		RequestID: uuid.New(),
		Shares:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(payout))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(stored.TotalShares))
	assert.True(t, decimal.NewFromInt(9000).Equal(stored.Principal))
	assert.True(t, decimal.NewFromInt(40).Equal(stored.Accounts[holderID].Shares))
}

func TestRedeem_InsufficientLiquidity(t *testing.T) {
	ctx := context.Background()
	holderID := uuid.New()

	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	// Most value sits in a position; free principal cannot cover the payout
	vault.Principal = decimal.NewFromInt(100)
	vault.TotalShares = decimal.NewFromInt(100)
	require.NoError(t, vault.AddAsset(&domain.AssetRecord{
		Key: "pos1", Kind: domain.AssetKindPosition, PositionHandle: "strategy-a",
	}))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, vault.Revalue("pos1", decimal.NewFromInt(9900), now))
	vault.Accounts[holderID] = &domain.ShareAccount{HolderID: holderID, Shares: decimal.NewFromInt(50)}

	service, _ := newService(vault)
	_, err := service.Redeem(ctx, RedeemInput{
		HolderID:  holderID,
		RequestID: uuid.New(),
		Shares:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientLiquidity)
}

func TestRedeem_MoreThanHeld(t *testing.T) {
	ctx := context.Background()
	holderID := uuid.New()

	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(1000)
	vault.TotalShares = decimal.NewFromInt(100)
	vault.Accounts[holderID] = &domain.ShareAccount{HolderID: holderID, Shares: decimal.NewFromInt(5)}

	service, _ := newService(vault)
	_, err := service.Redeem(ctx, RedeemInput{
		HolderID:  holderID,
		RequestID: uuid.New(),
		Shares:    decimal.NewFromInt(10),
	})
	assert.Error(t, err)
}
