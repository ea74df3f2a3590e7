package oracle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/harborfund/vault-backend/internal/domain"
)

// FeedConfig describes the sources for one asset's price feed
type FeedConfig struct {
	Primary   domain.SourceID
	Secondary domain.SourceID // optional fallback
}

// Service caches per-asset prices with a staleness window and
// multi-source fallback. Writes go through Refresh; reads are served
// from an in-memory snapshot under a read lock so price queries can run
// concurrently with vault mutations. GetPrice never blocks waiting for
// new data; it answers Stale or Unavailable synchronously instead.
type Service struct {
	FeedRepo domain.PriceFeedRepository
	MaxAge   func() time.Duration
	Logger   zerolog.Logger

	mu    sync.RWMutex
	feeds map[string]*domain.PriceFeed
}

// NewService creates a new oracle Service instance.
// maxAge is read per call so an admin change to the staleness window
// applies to subsequent lookups immediately.
func NewService(feedRepo domain.PriceFeedRepository, maxAge func() time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		FeedRepo: feedRepo,
		MaxAge:   maxAge,
		Logger:   logger,
		feeds:    make(map[string]*domain.PriceFeed),
	}
}

// Load hydrates the in-memory cache from the repository at startup
func (s *Service) Load(ctx context.Context) error {
	feeds, err := s.FeedRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load price feeds: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, feed := range feeds {
		s.feeds[feed.AssetKey] = feed
	}
	return nil
}

// RegisterFeed creates the feed for an asset key
func (s *Service) RegisterFeed(ctx context.Context, assetKey string, cfg FeedConfig) error {
	feed, err := domain.NewPriceFeed(assetKey, cfg.Primary, cfg.Secondary)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.feeds[assetKey]; exists {
		return fmt.Errorf("feed for asset %q already registered", assetKey)
	}
	if err := s.FeedRepo.Save(ctx, feed); err != nil {
		return fmt.Errorf("failed to save feed: %w", err)
	}
	s.feeds[assetKey] = feed

	s.Logger.Info().Str("asset", assetKey).Str("primary", string(cfg.Primary)).Msg("price feed registered")
	return nil
}

// Refresh validates and caches one pushed price reading.
// A rejected reading leaves both the cache and the persisted feed
// untouched.
func (s *Service) Refresh(ctx context.Context, reading domain.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed, ok := s.feeds[reading.AssetKey]
	if !ok {
		return fmt.Errorf("no feed registered for asset %q", reading.AssetKey)
	}

	// Apply against a copy so a failed persist cannot leave the cache
	// ahead of the repository.
	next := feed.Clone()
	if err := next.Apply(reading); err != nil {
		return err
	}
	if err := s.FeedRepo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save feed: %w", err)
	}
	s.feeds[reading.AssetKey] = next

	return nil
}

// GetPrice resolves the freshest usable price for an asset at the given
// instant. Prefers the primary source; falls back to a fresh secondary
// flagged degraded; never reuses a stale cached value.
func (s *Service) GetPrice(_ context.Context, assetKey string, now time.Time) (domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feed, ok := s.feeds[assetKey]
	if !ok {
		return domain.Quote{}, fmt.Errorf("no feed registered for asset %q", assetKey)
	}

	quote, err := feed.Quote(now, s.MaxAge())
	if err != nil {
		return domain.Quote{}, err
	}
	if quote.Degraded {
		s.Logger.Warn().Str("asset", assetKey).Str("source", string(quote.SourceID)).Msg("serving degraded price from secondary source")
	}
	return quote, nil
}
