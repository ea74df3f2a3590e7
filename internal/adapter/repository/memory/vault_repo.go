package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/harborfund/vault-backend/internal/domain"
)

// vaultRepository is an in-memory implementation of domain.VaultRepository.
// Mutations run against a deep copy that replaces the held aggregate only
// when the mutation function succeeds, so a failed update observes the
// same all-or-nothing semantics as the database-backed repository.
type vaultRepository struct {
	mu    sync.Mutex
	vault *domain.Vault
}

// NewVaultRepository creates an in-memory vault repository seeded with the
// given aggregate
func NewVaultRepository(vault *domain.Vault) domain.VaultRepository {
	return &vaultRepository{vault: vault}
}

// Get returns a snapshot of the vault
func (r *vaultRepository) Get(_ context.Context) (*domain.Vault, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vault == nil {
		return nil, errors.New("vault not initialized")
	}
	return r.vault.Clone(), nil
}

// Update applies fn to a working copy and swaps it in on success
func (r *vaultRepository) Update(_ context.Context, fn func(*domain.Vault) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vault == nil {
		return errors.New("vault not initialized")
	}

	working := r.vault.Clone()
	if err := fn(working); err != nil {
		return err
	}
	if err := working.Validate(); err != nil {
		return err
	}

	r.vault = working
	return nil
}
