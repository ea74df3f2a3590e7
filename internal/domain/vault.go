package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VaultStatus represents the service state of the vault
type VaultStatus string

const (
	// VaultStatusNormal accepts deposits, withdrawals and new operations.
	VaultStatusNormal VaultStatus = "NORMAL"
	// VaultStatusDuringOperation means custody of some assets has been
	// lent to an operator; share flow is frozen until reconciliation.
	VaultStatusDuringOperation VaultStatus = "DURING_OPERATION"
	// VaultStatusDisabled rejects everything except admin calls.
	VaultStatusDisabled VaultStatus = "DISABLED"
)

// ValuationEntry is one cached USD valuation for an asset key
type ValuationEntry struct {
	Value     decimal.Decimal `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ReconciliationRecord tracks one checkout/check-in cycle.
// It exists exactly while the vault status is DURING_OPERATION; commit
// requires Armed and Revalued covering every borrowed key.
type ReconciliationRecord struct {
	Borrowed          map[string]bool `json:"borrowed"`
	Armed             bool            `json:"armed"`
	Revalued          map[string]bool `json:"revalued"`
	TotalValueBefore  decimal.Decimal `json:"total_value_before"`
	TotalSharesBefore decimal.Decimal `json:"total_shares_before"`
	StartedAt         time.Time       `json:"started_at"`
}

// ShareAccount is a holder's receipt for vault ownership units
type ShareAccount struct {
	HolderID        uuid.UUID       `json:"holder_id"`
	Shares          decimal.Decimal `json:"shares"`
	LastInteraction time.Time       `json:"last_interaction"`
}

// Vault is the aggregate root of the custodial fund.
// Every mutation runs inside a single atomic repository update, so all
// observers see a totally-ordered sequence of state transitions.
type Vault struct {
	Status      VaultStatus     `json:"status"`
	TotalShares decimal.Decimal `json:"total_shares"`
	// Principal is the free USD balance not wrapped in an asset record.
	Principal decimal.Decimal `json:"principal"`

	// Registry of custodial asset records. A key lives in Assets while the
	// vault owns it; while checked out it is tracked only in CheckedOut.
	Assets     map[string]*AssetRecord `json:"assets"`
	CheckedOut map[string]bool         `json:"checked_out"`

	Valuations map[string]ValuationEntry `json:"valuations"`

	Accounts map[uuid.UUID]*ShareAccount `json:"accounts"`

	Loss  LossGovernorState     `json:"loss"`
	Recon *ReconciliationRecord `json:"recon,omitempty"`

	// StalenessWindow is the maximum age a cached price or valuation may
	// have before it is rejected for use.
	StalenessWindow time.Duration `json:"staleness_window"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewVault creates an empty vault in Normal status
func NewVault(stalenessWindow time.Duration, maxLossFraction decimal.Decimal) *Vault {
	return &Vault{
		Status:      VaultStatusNormal,
		TotalShares: decimal.Zero,
		Principal:   decimal.Zero,
		Assets:      make(map[string]*AssetRecord),
		CheckedOut:  make(map[string]bool),
		Valuations:  make(map[string]ValuationEntry),
		Accounts:    make(map[uuid.UUID]*ShareAccount),
		Loss: LossGovernorState{
			Baseline:        decimal.Zero,
			Accumulated:     decimal.Zero,
			MaxLossFraction: maxLossFraction,
		},
		StalenessWindow: stalenessWindow,
	}
}

// Validate checks the vault's structural invariants
func (v *Vault) Validate() error {
	if v.TotalShares.IsNegative() {
		return errors.New("total shares cannot be negative")
	}
	if v.Principal.IsNegative() {
		return errors.New("principal cannot be negative")
	}
	if v.StalenessWindow <= 0 {
		return errors.New("staleness window must be positive")
	}

	// status == DURING_OPERATION <=> reconciliation record present
	if (v.Status == VaultStatusDuringOperation) != (v.Recon != nil) {
		return errors.New("reconciliation record must exist exactly during an operation")
	}

	for key, out := range v.CheckedOut {
		if !out {
			continue
		}
		if _, present := v.Assets[key]; present {
			return fmt.Errorf("asset %q is both registered and checked out", key)
		}
	}

	return nil
}

// AddAsset registers a new custodial asset record
func (v *Vault) AddAsset(record *AssetRecord) error {
	if record == nil {
		return errors.New("asset record cannot be nil")
	}
	if err := record.Validate(); err != nil {
		return err
	}
	if _, exists := v.Assets[record.Key]; exists {
		return fmt.Errorf("%w: %q", ErrAssetExists, record.Key)
	}
	if v.CheckedOut[record.Key] {
		return fmt.Errorf("%w: %q", ErrAssetExists, record.Key)
	}

	v.Assets[record.Key] = record
	return nil
}

// Checkout removes an asset record from the registry, transferring
// exclusive ownership to the caller. While an operation is active the key
// is added to the reconciliation record's borrowed set.
func (v *Vault) Checkout(key string) (*AssetRecord, error) {
	if v.CheckedOut[key] {
		return nil, fmt.Errorf("%w: %q", ErrDoubleCheckout, key)
	}
	record, ok := v.Assets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, key)
	}

	delete(v.Assets, key)
	v.CheckedOut[key] = true

	if v.Status == VaultStatusDuringOperation && v.Recon != nil {
		v.Recon.Borrowed[key] = true
	}

	return record, nil
}

// CheckIn returns a previously checked-out record to the registry
func (v *Vault) CheckIn(key string, record *AssetRecord) error {
	if _, present := v.Assets[key]; present {
		return fmt.Errorf("%w: %q", ErrDoubleCheckin, key)
	}
	if !v.CheckedOut[key] {
		return fmt.Errorf("%w: %q was never checked out", ErrAssetNotFound, key)
	}
	if record == nil {
		return errors.New("asset record cannot be nil")
	}
	if record.Key != key {
		return fmt.Errorf("record key %q does not match check-in key %q", record.Key, key)
	}
	if err := record.Validate(); err != nil {
		return err
	}

	delete(v.CheckedOut, key)
	v.Assets[key] = record
	return nil
}

// Revalue writes a fresh USD valuation for an asset key. This is the
// single write path into the valuation cache; when a reconciliation is
// active and the key was borrowed, the key is marked revalued.
// Revaluing the same key twice is idempotent with respect to the
// reconciliation record.
func (v *Vault) Revalue(key string, usdValue decimal.Decimal, now time.Time) error {
	if usdValue.IsNegative() {
		return errors.New("valuation cannot be negative")
	}
	_, registered := v.Assets[key]
	if !registered && !v.CheckedOut[key] {
		return fmt.Errorf("%w: %q", ErrAssetNotFound, key)
	}

	v.Valuations[key] = ValuationEntry{Value: usdValue, UpdatedAt: now}

	if v.Recon != nil && v.Recon.Borrowed[key] {
		v.Recon.Revalued[key] = true
	}
	return nil
}

// TotalValue sums the free principal and every cached valuation.
// Fails with ErrStale when any entry's age is at least the staleness
// window; a stale entry is never silently skipped or reused.
func (v *Vault) TotalValue(now time.Time) (decimal.Decimal, error) {
	total := v.Principal
	for key, entry := range v.Valuations {
		if now.Sub(entry.UpdatedAt) >= v.StalenessWindow {
			return decimal.Zero, fmt.Errorf("%w: valuation for %q", ErrStale, key)
		}
		total = total.Add(entry.Value)
	}
	return total, nil
}

// ShareRatio is the exchange rate between USD value and ownership units,
// defined as 1.0 while no shares are outstanding (bootstrap case).
// totalValue must be a snapshot that excludes any principal being priced
// by this ratio, to avoid self-referential inflation.
func (v *Vault) ShareRatio(totalValue decimal.Decimal) (decimal.Decimal, error) {
	if v.TotalShares.IsZero() {
		return decimal.NewFromInt(1), nil
	}
	if v.TotalShares.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: total shares", ErrDivisionByZero)
	}
	return totalValue.Div(v.TotalShares), nil
}

// Account returns the share account for a holder, creating it on first use
func (v *Vault) Account(holderID uuid.UUID) *ShareAccount {
	if acct, ok := v.Accounts[holderID]; ok {
		return acct
	}
	acct := &ShareAccount{HolderID: holderID, Shares: decimal.Zero}
	v.Accounts[holderID] = acct
	return acct
}

// Clone returns a deep copy of the vault aggregate
func (v *Vault) Clone() *Vault {
	if v == nil {
		return nil
	}
	c := *v

	c.Assets = make(map[string]*AssetRecord, len(v.Assets))
	for key, record := range v.Assets {
		c.Assets[key] = record.Clone()
	}
	c.CheckedOut = make(map[string]bool, len(v.CheckedOut))
	for key, out := range v.CheckedOut {
		c.CheckedOut[key] = out
	}
	c.Valuations = make(map[string]ValuationEntry, len(v.Valuations))
	for key, entry := range v.Valuations {
		c.Valuations[key] = entry
	}
	c.Accounts = make(map[uuid.UUID]*ShareAccount, len(v.Accounts))
	for id, acct := range v.Accounts {
		copied := *acct
		c.Accounts[id] = &copied
	}
	if v.Recon != nil {
		recon := *v.Recon
		recon.Borrowed = make(map[string]bool, len(v.Recon.Borrowed))
		for key, b := range v.Recon.Borrowed {
			recon.Borrowed[key] = b
		}
		recon.Revalued = make(map[string]bool, len(v.Recon.Revalued))
		for key, r := range v.Recon.Revalued {
			recon.Revalued[key] = r
		}
		c.Recon = &recon
	}

	return &c
}
