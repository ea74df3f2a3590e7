package admin

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
	"github.com/harborfund/vault-backend/internal/usecase/access"
)

type fixture struct {
	service    *Service
	vaultRepo  domain.VaultRepository
	adminID    uuid.UUID
	operatorID uuid.UUID
}

func newFixture(t *testing.T, vault *domain.Vault) fixture {
	t.Helper()
	ctx := context.Background()

	tokenRepo := memory.NewTokenRepository()
	adminID := uuid.New()
	operatorID := uuid.New()
	require.NoError(t, tokenRepo.Save(ctx, &domain.CapabilityToken{
		ID: adminID, Role: domain.RoleAdmin, IssuedAt: time.Now(),
	}))
	require.NoError(t, tokenRepo.Save(ctx, &domain.CapabilityToken{
		ID: operatorID, Role: domain.RoleOperator, IssuedAt: time.Now(),
	}))

	vaultRepo := memory.NewVaultRepository(vault)
	accessService := access.NewService(tokenRepo, zerolog.Nop())
	return fixture{
		service:    NewService(vaultRepo, accessService, zerolog.Nop()),
		vaultRepo:  vaultRepo,
		adminID:    adminID,
		operatorID: operatorID,
	}
}

func newVault() *domain.Vault {
	return domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
}

func TestAddAsset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newVault())

	record := &domain.AssetRecord{
		Key:      "usdc",
		Kind:     domain.AssetKindBalance,
		Balance:  decimal.NewFromInt(1000),
		Decimals: 6,
	}
	require.NoError(t, f.service.AddAsset(ctx, f.adminID, record))

	vault, err := f.vaultRepo.Get(ctx)
	require.NoError(t, err)
	assert.Contains(t, vault.Assets, "usdc")

	err = f.service.AddAsset(ctx, f.adminID, record)
	assert.ErrorIs(t, err, domain.ErrAssetExists)
}

func TestAddAsset_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newVault())

	err := f.service.AddAsset(ctx, f.operatorID, &domain.AssetRecord{
		Key:  "usdc",
		Kind: domain.AssetKindBalance,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSetLossFraction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newVault())

	require.NoError(t, f.service.SetLossFraction(ctx, f.adminID, decimal.RequireFromString("0.05")))

	vault, err := f.vaultRepo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.05").Equal(vault.Loss.MaxLossFraction))

	assert.Error(t, f.service.SetLossFraction(ctx, f.adminID, decimal.NewFromInt(2)))
	assert.Error(t, f.service.SetLossFraction(ctx, f.adminID, decimal.NewFromInt(-1)))
}

func TestSetStalenessWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newVault())

	require.NoError(t, f.service.SetStalenessWindow(ctx, f.adminID, 2*time.Minute))

	vault, err := f.vaultRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, vault.StalenessWindow)

	assert.Error(t, f.service.SetStalenessWindow(ctx, f.adminID, 0))
}

func TestSetDisabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, newVault())

	require.NoError(t, f.service.SetDisabled(ctx, f.adminID, true))
	vault, err := f.vaultRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusDisabled, vault.Status)

	require.NoError(t, f.service.SetDisabled(ctx, f.adminID, false))
	vault, err = f.vaultRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, vault.Status)
}

func TestSetDisabled_RejectedMidOperation(t *testing.T) {
	ctx := context.Background()
	vault := newVault()
	vault.Status = domain.VaultStatusDuringOperation
	vault.Recon = &domain.ReconciliationRecord{
		Borrowed:          map[string]bool{},
		Revalued:          map[string]bool{},
		TotalValueBefore:  decimal.Zero,
		TotalSharesBefore: decimal.Zero,
		StartedAt:         time.Now(),
	}
	f := newFixture(t, vault)

	err := f.service.SetDisabled(ctx, f.adminID, true)
	assert.ErrorIs(t, err, domain.ErrVaultBusy)
}
