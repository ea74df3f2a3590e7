package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborfund/vault-backend/internal/domain"
)

// VaultRepository implements domain.VaultRepository on a single vaults
// row. Update takes a row-level exclusive lock (SELECT ... FOR UPDATE) so
// every mutation observes and produces a totally-ordered state sequence;
// Get reads a committed snapshot without blocking writers.
type VaultRepository struct {
	db *DB
}

// NewVaultRepository creates a new vault repository
func NewVaultRepository(db *DB) *VaultRepository {
	return &VaultRepository{db: db}
}

// vaultRow is the persisted shape of the aggregate. Decimals travel as
// strings, maps as JSONB documents.
type vaultRow struct {
	Status          string
	TotalShares     string
	Principal       string
	Assets          []byte
	CheckedOut      []byte
	Valuations      []byte
	Accounts        []byte
	Loss            []byte
	Recon           []byte // nullable
	StalenessWindow int64  // seconds
	UpdatedAt       time.Time
}

const selectVaultQuery = `
	SELECT status, total_shares, principal, assets, checked_out,
	       valuations, accounts, loss, recon, staleness_window_seconds, updated_at
	FROM vaults WHERE id = 1
`

const updateVaultQuery = `
	UPDATE vaults
	SET status = $1, total_shares = $2, principal = $3, assets = $4,
	    checked_out = $5, valuations = $6, accounts = $7, loss = $8,
	    recon = $9, staleness_window_seconds = $10, updated_at = $11
	WHERE id = 1
`

// Get retrieves a committed snapshot of the vault
func (r *VaultRepository) Get(ctx context.Context) (*domain.Vault, error) {
	row := r.db.QueryRowContext(ctx, selectVaultQuery)
	return scanVault(row)
}

// Update applies fn inside one database transaction holding the vault row
// lock; a failure from fn rolls the transaction back untouched
func (r *VaultRepository) Update(ctx context.Context, fn func(*domain.Vault) error) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	row := dbTx.QueryRowContext(ctx, selectVaultQuery+" FOR UPDATE")
	vault, err := scanVault(row)
	if err != nil {
		return err
	}

	if err := fn(vault); err != nil {
		return err
	}
	if err := vault.Validate(); err != nil {
		return err
	}

	stored, err := marshalVault(vault)
	if err != nil {
		return err
	}
	_, err = dbTx.ExecContext(ctx, updateVaultQuery,
		stored.Status,
		stored.TotalShares,
		stored.Principal,
		stored.Assets,
		stored.CheckedOut,
		stored.Valuations,
		stored.Accounts,
		stored.Loss,
		stored.Recon,
		stored.StalenessWindow,
		stored.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vault: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Seed inserts the initial vault row if the table is empty
func (r *VaultRepository) Seed(ctx context.Context, vault *domain.Vault) error {
	stored, err := marshalVault(vault)
	if err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO vaults (id, status, total_shares, principal, assets, checked_out,
		                    valuations, accounts, loss, recon, staleness_window_seconds, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = r.db.ExecContext(ctx, insertQuery,
		stored.Status,
		stored.TotalShares,
		stored.Principal,
		stored.Assets,
		stored.CheckedOut,
		stored.Valuations,
		stored.Accounts,
		stored.Loss,
		stored.Recon,
		stored.StalenessWindow,
		stored.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to seed vault: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVault(row rowScanner) (*domain.Vault, error) {
	var (
		stored vaultRow
		recon  []byte
	)
	err := row.Scan(
		&stored.Status,
		&stored.TotalShares,
		&stored.Principal,
		&stored.Assets,
		&stored.CheckedOut,
		&stored.Valuations,
		&stored.Accounts,
		&stored.Loss,
		&recon,
		&stored.StalenessWindow,
		&stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault row: %w", err)
	}
	if recon != nil {
		stored.Recon = recon
	}

	vault := &domain.Vault{
		Status:          domain.VaultStatus(stored.Status),
		StalenessWindow: time.Duration(stored.StalenessWindow) * time.Second,
		UpdatedAt:       stored.UpdatedAt,
	}
	if vault.TotalShares, err = decimal.NewFromString(stored.TotalShares); err != nil {
		return nil, fmt.Errorf("invalid total_shares: %w", err)
	}
	if vault.Principal, err = decimal.NewFromString(stored.Principal); err != nil {
		return nil, fmt.Errorf("invalid principal: %w", err)
	}
	if err := json.Unmarshal(stored.Assets, &vault.Assets); err != nil {
		return nil, fmt.Errorf("invalid assets document: %w", err)
	}
	if err := json.Unmarshal(stored.CheckedOut, &vault.CheckedOut); err != nil {
		return nil, fmt.Errorf("invalid checked_out document: %w", err)
	}
	if err := json.Unmarshal(stored.Valuations, &vault.Valuations); err != nil {
		return nil, fmt.Errorf("invalid valuations document: %w", err)
	}
	if err := json.Unmarshal(stored.Accounts, &vault.Accounts); err != nil {
		return nil, fmt.Errorf("invalid accounts document: %w", err)
	}
	if err := json.Unmarshal(stored.Loss, &vault.Loss); err != nil {
		return nil, fmt.Errorf("invalid loss document: %w", err)
	}
	if len(stored.Recon) > 0 {
		vault.Recon = &domain.ReconciliationRecord{}
		if err := json.Unmarshal(stored.Recon, vault.Recon); err != nil {
			return nil, fmt.Errorf("invalid recon document: %w", err)
		}
	}

	return vault, nil
}

func marshalVault(vault *domain.Vault) (*vaultRow, error) {
	stored := &vaultRow{
		Status:          string(vault.Status),
		TotalShares:     vault.TotalShares.String(),
		Principal:       vault.Principal.String(),
		StalenessWindow: int64(vault.StalenessWindow / time.Second),
		UpdatedAt:       vault.UpdatedAt,
	}

	var err error
	if stored.Assets, err = json.Marshal(vault.Assets); err != nil {
		return nil, fmt.Errorf("failed to marshal assets: %w", err)
	}
	if stored.CheckedOut, err = json.Marshal(vault.CheckedOut); err != nil {
		return nil, fmt.Errorf("failed to marshal checked_out: %w", err)
	}
	if stored.Valuations, err = json.Marshal(vault.Valuations); err != nil {
		return nil, fmt.Errorf("failed to marshal valuations: %w", err)
	}
	if stored.Accounts, err = json.Marshal(vault.Accounts); err != nil {
		return nil, fmt.Errorf("failed to marshal accounts: %w", err)
	}
	if stored.Loss, err = json.Marshal(vault.Loss); err != nil {
		return nil, fmt.Errorf("failed to marshal loss: %w", err)
	}
	if vault.Recon != nil {
		if stored.Recon, err = json.Marshal(vault.Recon); err != nil {
			return nil, fmt.Errorf("failed to marshal recon: %w", err)
		}
	}

	return stored, nil
}
