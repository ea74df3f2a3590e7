package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceID identifies a price source (e.g. an aggregator or exchange feed)
type SourceID string

// PricePoint is the last accepted reading from one source.
// Invariant: once initialized, Price > 0 and UpdatedAt only moves forward.
type PricePoint struct {
	Price     decimal.Decimal `json:"price"`
	Decimals  int32           `json:"decimals"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PriceFeed caches per-asset prices from a primary source and an optional
// secondary fallback source.
type PriceFeed struct {
	AssetKey  string                 `json:"asset_key"`
	Primary   SourceID               `json:"primary"`
	Secondary SourceID               `json:"secondary"` // empty when not configured
	Points    map[SourceID]PricePoint `json:"points"`
}

// Reading is one price observation pushed by the external feed ingestion
type Reading struct {
	AssetKey  string
	SourceID  SourceID
	Price     decimal.Decimal
	Decimals  int32
	Timestamp time.Time
}

// Quote is the result of a price lookup. Degraded is true when the value
// came from the secondary source because the primary was stale.
type Quote struct {
	Price     decimal.Decimal
	Decimals  int32
	SourceID  SourceID
	UpdatedAt time.Time
	Degraded  bool
}

// NewPriceFeed creates a feed with a primary and an optional secondary source
func NewPriceFeed(assetKey string, primary, secondary SourceID) (*PriceFeed, error) {
	if assetKey == "" {
		return nil, errors.New("asset key cannot be empty")
	}
	if primary == "" {
		return nil, errors.New("primary source cannot be empty")
	}
	if secondary == primary {
		return nil, errors.New("secondary source must differ from primary")
	}

	return &PriceFeed{
		AssetKey:  assetKey,
		Primary:   primary,
		Secondary: secondary,
		Points:    make(map[SourceID]PricePoint),
	}, nil
}

// Apply validates and caches a reading.
// Rejects non-positive prices, readings from sources the feed was not
// registered with, and timestamps that are not strictly newer than the
// cached point for the same source.
func (f *PriceFeed) Apply(r Reading) error {
	if r.SourceID != f.Primary && r.SourceID != f.Secondary {
		return fmt.Errorf("%w: source %q not registered for asset %q", ErrInvalidReading, r.SourceID, f.AssetKey)
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", ErrInvalidReading)
	}
	if r.Decimals < 0 {
		return fmt.Errorf("%w: decimals cannot be negative", ErrInvalidReading)
	}
	if prev, ok := f.Points[r.SourceID]; ok && !r.Timestamp.After(prev.UpdatedAt) {
		return fmt.Errorf("%w: timestamp not newer than cached reading", ErrInvalidReading)
	}

	f.Points[r.SourceID] = PricePoint{
		Price:     r.Price,
		Decimals:  r.Decimals,
		UpdatedAt: r.Timestamp,
	}
	return nil
}

// Quote resolves the freshest usable price at the given instant.
// Fallback order: primary if fresh; otherwise secondary if configured and
// fresh, flagged degraded; otherwise the lookup fails rather than reusing
// a stale cached value. A point whose age equals maxAge is already stale.
func (f *PriceFeed) Quote(now time.Time, maxAge time.Duration) (Quote, error) {
	primary, ok := f.Points[f.Primary]
	if ok && now.Sub(primary.UpdatedAt) < maxAge {
		return Quote{
			Price:     primary.Price,
			Decimals:  primary.Decimals,
			SourceID:  f.Primary,
			UpdatedAt: primary.UpdatedAt,
		}, nil
	}

	if f.Secondary == "" {
		return Quote{}, fmt.Errorf("%w: primary source for asset %q", ErrStale, f.AssetKey)
	}

	secondary, ok := f.Points[f.Secondary]
	if ok && now.Sub(secondary.UpdatedAt) < maxAge {
		return Quote{
			Price:     secondary.Price,
			Decimals:  secondary.Decimals,
			SourceID:  f.Secondary,
			UpdatedAt: secondary.UpdatedAt,
			Degraded:  true,
		}, nil
	}

	return Quote{}, fmt.Errorf("%w: all sources stale for asset %q", ErrUnavailable, f.AssetKey)
}

// Clone returns a deep copy of the feed
func (f *PriceFeed) Clone() *PriceFeed {
	if f == nil {
		return nil
	}
	c := *f
	c.Points = make(map[SourceID]PricePoint, len(f.Points))
	for id, p := range f.Points {
		c.Points[id] = p
	}
	return &c
}
