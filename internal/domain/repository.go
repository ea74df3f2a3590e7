package domain

import (
	"context"

	"github.com/google/uuid"
)

// VaultRepository persists the vault aggregate.
// Update is the single mutation path: it loads the aggregate under an
// exclusive lock, applies fn, and commits only when fn returns nil. A
// failure inside fn leaves the persisted state untouched.
type VaultRepository interface {
	// Get returns a read-only snapshot of the vault
	Get(ctx context.Context) (*Vault, error)

	// Update applies fn to the vault inside one atomic transaction
	Update(ctx context.Context, fn func(*Vault) error) error
}

// PriceFeedRepository persists per-asset price feeds
type PriceFeedRepository interface {
	// Get retrieves the feed for an asset key
	Get(ctx context.Context, assetKey string) (*PriceFeed, error)

	// List retrieves all registered feeds
	List(ctx context.Context) ([]*PriceFeed, error)

	// Save creates or replaces a feed
	Save(ctx context.Context, feed *PriceFeed) error
}

// TokenRepository persists capability tokens and their freeze state
type TokenRepository interface {
	// GetByID retrieves a token by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*CapabilityToken, error)

	// Save creates or replaces a token
	Save(ctx context.Context, token *CapabilityToken) error
}
