package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault() *Vault {
	return NewVault(60*time.Second, decimal.RequireFromString("0.001"))
}

func TestVault_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *Vault)
		wantErr bool
	}{
		{
			name:    "fresh vault is valid",
			mutate:  func(v *Vault) {},
			wantErr: false,
		},
		{
			name: "during operation requires reconciliation record",
			mutate: func(v *Vault) {
				v.Status = VaultStatusDuringOperation
			},
			wantErr: true,
		},
		{
			name: "reconciliation record requires during operation",
			mutate: func(v *Vault) {
				v.Recon = &ReconciliationRecord{
					Borrowed: map[string]bool{},
					Revalued: map[string]bool{},
				}
			},
			wantErr: true,
		},
		{
			name: "during operation with record is valid",
			mutate: func(v *Vault) {
				v.Status = VaultStatusDuringOperation
				v.Recon = &ReconciliationRecord{
					Borrowed: map[string]bool{},
					Revalued: map[string]bool{},
				}
			},
			wantErr: false,
		},
		{
			name: "negative total shares",
			mutate: func(v *Vault) {
				v.TotalShares = decimal.NewFromInt(-1)
			},
			wantErr: true,
		},
		{
			name: "asset both registered and checked out",
			mutate: func(v *Vault) {
				v.Assets["usdc"] = &AssetRecord{Key: "usdc", Kind: AssetKindBalance, Balance: decimal.Zero}
				v.CheckedOut["usdc"] = true
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVault()
			tt.mutate(v)
			err := v.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVault_CheckoutCheckInRoundTrip(t *testing.T) {
	v := newTestVault()
	record := &AssetRecord{
		Key:     "usdc",
		Kind:    AssetKindBalance,
		Balance: decimal.NewFromInt(1_000_000),
	}
	require.NoError(t, v.AddAsset(record))

	before := v.Clone()

	out, err := v.Checkout("usdc")
	require.NoError(t, err)
	assert.Equal(t, record, out)
	assert.NotContains(t, v.Assets, "usdc")
	assert.True(t, v.CheckedOut["usdc"])

	require.NoError(t, v.CheckIn("usdc", out))

	// Registry restored exactly
	assert.Equal(t, before.Assets, v.Assets)
	assert.Equal(t, before.CheckedOut, v.CheckedOut)
}

func TestVault_DoubleCheckout(t *testing.T) {
	v := newTestVault()
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "pos1", Kind: AssetKindPosition, PositionHandle: "strategy-a"}))

	_, err := v.Checkout("pos1")
	require.NoError(t, err)

	_, err = v.Checkout("pos1")
	assert.ErrorIs(t, err, ErrDoubleCheckout)
}

func TestVault_DoubleCheckin(t *testing.T) {
	v := newTestVault()
	record := &AssetRecord{Key: "pos1", Kind: AssetKindPosition, PositionHandle: "strategy-a"}
	require.NoError(t, v.AddAsset(record))

	out, err := v.Checkout("pos1")
	require.NoError(t, err)
	require.NoError(t, v.CheckIn("pos1", out))

	err = v.CheckIn("pos1", out)
	assert.ErrorIs(t, err, ErrDoubleCheckin)
}

func TestVault_CheckoutUnknownAsset(t *testing.T) {
	v := newTestVault()
	_, err := v.Checkout("missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestVault_CheckoutTracksBorrowedDuringOperation(t *testing.T) {
	v := newTestVault()
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "pos1", Kind: AssetKindPosition, PositionHandle: "strategy-a"}))

	v.Status = VaultStatusDuringOperation
	v.Recon = &ReconciliationRecord{
		Borrowed: map[string]bool{},
		Revalued: map[string]bool{},
	}

	_, err := v.Checkout("pos1")
	require.NoError(t, err)
	assert.True(t, v.Recon.Borrowed["pos1"])
}

func TestVault_RevalueIdempotentForReconciliation(t *testing.T) {
	now := time.Now()
	v := newTestVault()
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "pos1", Kind: AssetKindPosition, PositionHandle: "strategy-a"}))

	v.Status = VaultStatusDuringOperation
	v.Recon = &ReconciliationRecord{
		Borrowed: map[string]bool{"pos1": true},
		Revalued: map[string]bool{},
	}

	require.NoError(t, v.Revalue("pos1", decimal.NewFromInt(500), now))
	first := len(v.Recon.Revalued)

	require.NoError(t, v.Revalue("pos1", decimal.NewFromInt(501), now.Add(time.Second)))
	assert.Equal(t, first, len(v.Recon.Revalued))
	assert.True(t, v.Recon.Revalued["pos1"])
}

func TestVault_RevalueUnknownAsset(t *testing.T) {
	v := newTestVault()
	err := v.Revalue("missing", decimal.NewFromInt(1), time.Now())
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestVault_TotalValueStalenessGate(t *testing.T) {
	now := time.Now()
	v := newTestVault() // 60s window

	require.NoError(t, v.AddAsset(&AssetRecord{Key: "pos1", Kind: AssetKindPosition, PositionHandle: "strategy-a"}))
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "pos2", Kind: AssetKindPosition, PositionHandle: "strategy-b"}))
	v.Principal = decimal.NewFromInt(100)

	require.NoError(t, v.Revalue("pos1", decimal.NewFromInt(400), now))
	require.NoError(t, v.Revalue("pos2", decimal.NewFromInt(500), now))

	total, err := v.TotalValue(now.Add(30 * time.Second))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(total))

	// An entry aged exactly to the window boundary is already stale
	_, err = v.TotalValue(now.Add(60 * time.Second))
	assert.ErrorIs(t, err, ErrStale)
}

func TestVault_ShareRatio(t *testing.T) {
	v := newTestVault()

	// Bootstrap: no shares outstanding, ratio defaults to 1
	ratio, err := v.ShareRatio(decimal.NewFromInt(12345))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(ratio))

	v.TotalShares = decimal.NewFromInt(100)
	ratio, err = v.ShareRatio(decimal.NewFromInt(10_000))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(ratio))
}

func TestVault_AddAssetDuplicate(t *testing.T) {
	v := newTestVault()
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "usdc", Kind: AssetKindBalance, Balance: decimal.Zero}))

	err := v.AddAsset(&AssetRecord{Key: "usdc", Kind: AssetKindBalance, Balance: decimal.Zero})
	assert.ErrorIs(t, err, ErrAssetExists)

	// A checked-out key is still taken
	_, err = v.Checkout("usdc")
	require.NoError(t, err)
	err = v.AddAsset(&AssetRecord{Key: "usdc", Kind: AssetKindBalance, Balance: decimal.Zero})
	assert.ErrorIs(t, err, ErrAssetExists)
}

func TestVault_CloneIsDeep(t *testing.T) {
	v := newTestVault()
	require.NoError(t, v.AddAsset(&AssetRecord{Key: "usdc", Kind: AssetKindBalance, Balance: decimal.NewFromInt(5)}))

	c := v.Clone()
	c.Assets["usdc"].Balance = decimal.NewFromInt(99)
	c.Principal = decimal.NewFromInt(7)

	assert.True(t, v.Assets["usdc"].Balance.Equal(decimal.NewFromInt(5)))
	assert.True(t, v.Principal.IsZero())
}
