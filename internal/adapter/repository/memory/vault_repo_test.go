package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfund/vault-backend/internal/domain"
)

func TestVaultRepository_UpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(100)
	repo := NewVaultRepository(vault)

	// A failing mutation must leave the stored aggregate untouched, even
	// if it mutated its working copy before failing.
	err := repo.Update(ctx, func(v *domain.Vault) error {
		v.Principal = decimal.NewFromInt(999)
		return errors.New("boom")
	})
	require.Error(t, err)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(stored.Principal))
}

func TestVaultRepository_UpdateRejectsInvariantViolation(t *testing.T) {
	ctx := context.Background()
	repo := NewVaultRepository(domain.NewVault(60*time.Second, decimal.RequireFromString("0.001")))

	// Entering DURING_OPERATION without a reconciliation record breaks
	// the aggregate invariant and must not commit.
	err := repo.Update(ctx, func(v *domain.Vault) error {
		v.Status = domain.VaultStatusDuringOperation
		return nil
	})
	require.Error(t, err)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
}

func TestVaultRepository_GetReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewVaultRepository(domain.NewVault(60*time.Second, decimal.RequireFromString("0.001")))

	snapshot, err := repo.Get(ctx)
	require.NoError(t, err)
	snapshot.Principal = decimal.NewFromInt(42)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Principal.IsZero())
}
