package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harborfund/vault-backend/internal/domain"
)

// feedRepository implements domain.PriceFeedRepository
type feedRepository struct {
	db *DB
}

// NewPriceFeedRepository creates a new price feed repository
func NewPriceFeedRepository(db *DB) domain.PriceFeedRepository {
	return &feedRepository{db: db}
}

// Get retrieves the feed for an asset key
func (r *feedRepository) Get(ctx context.Context, assetKey string) (*domain.PriceFeed, error) {
	query := `SELECT doc FROM price_feeds WHERE asset_key = $1`

	var doc []byte
	if err := r.db.QueryRowContext(ctx, query, assetKey).Scan(&doc); err != nil {
		return nil, fmt.Errorf("failed to load feed for %q: %w", assetKey, err)
	}

	feed := &domain.PriceFeed{}
	if err := json.Unmarshal(doc, feed); err != nil {
		return nil, fmt.Errorf("invalid feed document for %q: %w", assetKey, err)
	}
	return feed, nil
}

// List retrieves all registered feeds
func (r *feedRepository) List(ctx context.Context) ([]*domain.PriceFeed, error) {
	query := `SELECT doc FROM price_feeds ORDER BY asset_key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []*domain.PriceFeed
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		feed := &domain.PriceFeed{}
		if err := json.Unmarshal(doc, feed); err != nil {
			return nil, fmt.Errorf("invalid feed document: %w", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feed rows: %w", err)
	}
	return feeds, nil
}

// Save creates or replaces a feed
func (r *feedRepository) Save(ctx context.Context, feed *domain.PriceFeed) error {
	doc, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to marshal feed: %w", err)
	}

	query := `
		INSERT INTO price_feeds (asset_key, doc)
		VALUES ($1, $2)
		ON CONFLICT (asset_key) DO UPDATE SET doc = EXCLUDED.doc
	`
	if _, err := r.db.ExecContext(ctx, query, feed.AssetKey, doc); err != nil {
		return fmt.Errorf("failed to save feed: %w", err)
	}
	return nil
}
