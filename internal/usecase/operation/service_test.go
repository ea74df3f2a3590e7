package operation

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
	service  *Service
	access   *access.Service
	repo     domain.VaultRepository
	operator uuid.UUID
	admin    uuid.UUID
	now      time.Time
}

func newFixture(t *testing.T, vault *domain.Vault) *fixture {
	t.Helper()
	ctx := context.Background()

	tokenRepo := memory.NewTokenRepository()
	accessService := access.NewService(tokenRepo, zerolog.Nop())

	adminID := uuid.New()
	require.NoError(t, tokenRepo.Save(ctx, &domain.CapabilityToken{
		ID: adminID, Role: domain.RoleAdmin, IssuedAt: time.Now(),
	}))
	operatorToken, err := accessService.Grant(ctx, adminID, domain.RoleOperator)
	require.NoError(t, err)

	repo := memory.NewVaultRepository(vault)
	service := NewService(repo, accessService, zerolog.Nop(), 24*time.Hour, time.Hour)

	f := &fixture{
		service:  service,
		access:   accessService,
		repo:     repo,
		operator: operatorToken.ID,
		admin:    adminID,
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	service.Now = func() time.Time { return f.now }
	return f
}

// vaultWithPosition builds a Normal vault holding $100,000: $99,000 free
// principal plus one position valued at $1,000.
func vaultWithPosition(t *testing.T, now time.Time) *domain.Vault {
	t.Helper()
	vault := domain.NewVault(60*time.Second, decimal.RequireFromString("0.001"))
	vault.Principal = decimal.NewFromInt(99_000)
	vault.TotalShares = decimal.NewFromInt(100_000)
	require.NoError(t, vault.AddAsset(&domain.AssetRecord{
		Key: "pos1", Kind: domain.AssetKindPosition, PositionHandle: "strategy-a",
	}))
	require.NoError(t, vault.Revalue("pos1", decimal.NewFromInt(1000), now))
	return vault
}

func TestOperation_FullCycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	records, cont, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, decimal.NewFromInt(100_000).Equal(cont.TotalValueBefore))

	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusDuringOperation, stored.Status)
	require.NotNil(t, stored.Recon)
	assert.True(t, stored.Recon.Borrowed["pos1"])

	// External work happened; position returns with a higher valuation
	require.NoError(t, f.service.FinishCheckin(ctx, f.operator, records))

	err = f.repo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue("pos1", decimal.NewFromInt(1050), f.now)
	})
	require.NoError(t, err)

	require.NoError(t, f.service.FinishReconcile(ctx, f.operator))

	stored, err = f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
	assert.Nil(t, stored.Recon)
	// A gain charges nothing
	assert.True(t, stored.Loss.Accumulated.IsZero())
}

func TestStart_RequiresNormalStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)

	// Second start while the first is outstanding
	_, _, err = f.service.Start(ctx, f.operator, []string{"pos1"})
	assert.ErrorIs(t, err, domain.ErrVaultBusy)
}

func TestStart_UnknownAssetIsAtomic(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1", "ghost"})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	// The failed start must leave no trace: pos1 still registered,
	// status Normal, no reconciliation record.
	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
	assert.Nil(t, stored.Recon)
	assert.Contains(t, stored.Assets, "pos1")
}

func TestFinishCheckin_MissingAsset(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)

	err = f.service.FinishCheckin(ctx, f.operator, nil)
	assert.ErrorIs(t, err, domain.ErrAssetsNotReturned)

	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored.Recon.Armed)
}

func TestFinishReconcile_WithoutRevalue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	records, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)
	require.NoError(t, f.service.FinishCheckin(ctx, f.operator, records))

	// Checked in but never revalued
	err = f.service.FinishReconcile(ctx, f.operator)
	assert.ErrorIs(t, err, domain.ErrValueNotUpdated)

	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusDuringOperation, stored.Status)
}

func TestFinishReconcile_BeforeCheckin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)

	err = f.service.FinishReconcile(ctx, f.operator)
	assert.ErrorIs(t, err, domain.ErrReconcileNotArmed)
}

func TestFinishReconcile_LossLimitBlocksCommitButKeepsCheckin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	records, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)
	require.NoError(t, f.service.FinishCheckin(ctx, f.operator, records))

	// Position collapsed from $1,000 to $800: a $200 loss against the
	// $100 governed limit (0.1% of ~$100k).
	err = f.repo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue("pos1", decimal.NewFromInt(800), f.now)
	})
	require.NoError(t, err)

	err = f.service.FinishReconcile(ctx, f.operator)
	assert.ErrorIs(t, err, domain.ErrLossLimitExceeded)

	// Commit blocked, but check-in survives: assets are back in the
	// registry and the vault stays mid-operation for a retry.
	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusDuringOperation, stored.Status)
	assert.Contains(t, stored.Assets, "pos1")
	assert.True(t, stored.Loss.Accumulated.IsZero())

	// Prices normalize; the retried reconciliation commits.
	err = f.repo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue("pos1", decimal.NewFromInt(950), f.now.Add(time.Second))
	})
	require.NoError(t, err)
	f.now = f.now.Add(time.Second)

	require.NoError(t, f.service.FinishReconcile(ctx, f.operator))

	stored, err = f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(stored.Loss.Accumulated))
}

func TestFinishReconcile_RequiresOperatorRole(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	err := f.service.FinishReconcile(ctx, f.admin)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFreezeOrdering_FrozenThenAdmittedRejects(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	// Freeze lands before the call is admitted
	require.NoError(t, f.access.SetFrozen(ctx, f.admin, f.operator, true))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
}

func TestFreezeOrdering_AdmittedThenFrozenCompletes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	records, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)
	require.NoError(t, f.service.FinishCheckin(ctx, f.operator, records))
	err = f.repo.Update(ctx, func(v *domain.Vault) error {
		return v.Revalue("pos1", decimal.NewFromInt(1000), f.now.Add(time.Second))
	})
	require.NoError(t, err)
	f.now = f.now.Add(time.Second)

	// The reconcile call is admitted at the service boundary, then the
	// freeze lands while the mutation is still in flight. Admission
	// order wins: the already-admitted mutation completes.
	require.NoError(t, f.access.Authorize(ctx, f.operator, domain.RoleOperator))
	require.NoError(t, f.access.SetFrozen(ctx, f.admin, f.operator, true))

	err = f.repo.Update(ctx, func(v *domain.Vault) error {
		for key := range v.Recon.Borrowed {
			if !v.Recon.Revalued[key] {
				return domain.ErrValueNotUpdated
			}
		}
		v.Recon = nil
		v.Status = domain.VaultStatusNormal
		return nil
	})
	require.NoError(t, err)

	// The next call from the frozen operator is rejected at admission.
	_, _, err = f.service.Start(ctx, f.operator, []string{"pos1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForceAbandon_TooEarly(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)

	err = f.service.ForceAbandon(ctx, f.admin)
	assert.ErrorIs(t, err, domain.ErrAbandonTooEarly)
}

func TestForceAbandon_WritesOffUnreturnedAssets(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)

	// The operator disappears; two hours later the admin pulls the cord.
	f.now = f.now.Add(2 * time.Hour)

	require.NoError(t, f.service.ForceAbandon(ctx, f.admin))

	stored, err := f.repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultStatusNormal, stored.Status)
	assert.Nil(t, stored.Recon)
	assert.NotContains(t, stored.Assets, "pos1")
	assert.NotContains(t, stored.Valuations, "pos1")
	// The written-off position was worth $1,000; the loss is recorded
	// explicitly even though it dwarfs the governed cap.
	assert.True(t, decimal.NewFromInt(1000).Equal(stored.Loss.Accumulated))
}

func TestForceAbandon_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, vaultWithPosition(t, now))

	_, _, err := f.service.Start(ctx, f.operator, []string{"pos1"})
	require.NoError(t, err)
	f.now = f.now.Add(2 * time.Hour)

	err = f.service.ForceAbandon(ctx, f.operator)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
