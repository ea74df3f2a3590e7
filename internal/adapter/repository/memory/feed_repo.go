package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/harborfund/vault-backend/internal/domain"
)

// feedRepository is an in-memory implementation of domain.PriceFeedRepository
type feedRepository struct {
	mu    sync.Mutex
	feeds map[string]*domain.PriceFeed
}

// NewPriceFeedRepository creates an empty in-memory feed repository
func NewPriceFeedRepository() domain.PriceFeedRepository {
	return &feedRepository{feeds: make(map[string]*domain.PriceFeed)}
}

func (r *feedRepository) Get(_ context.Context, assetKey string) (*domain.PriceFeed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	feed, ok := r.feeds[assetKey]
	if !ok {
		return nil, fmt.Errorf("feed for asset %q not found", assetKey)
	}
	return feed.Clone(), nil
}

func (r *feedRepository) List(_ context.Context) ([]*domain.PriceFeed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	feeds := make([]*domain.PriceFeed, 0, len(r.feeds))
	for _, feed := range r.feeds {
		feeds = append(feeds, feed.Clone())
	}
	return feeds, nil
}

func (r *feedRepository) Save(_ context.Context, feed *domain.PriceFeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeds[feed.AssetKey] = feed.Clone()
	return nil
}
