package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxAge = 60 * time.Second

func newTestFeed(t *testing.T) *PriceFeed {
	t.Helper()
	feed, err := NewPriceFeed("usdc", "chainfeed", "backupfeed")
	require.NoError(t, err)
	return feed
}

func TestPriceFeed_ApplyValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		reading Reading
		wantErr error
	}{
		{
			name:    "unknown source",
			reading: Reading{AssetKey: "usdc", SourceID: "rogue", Price: decimal.NewFromInt(1), Timestamp: now},
			wantErr: ErrInvalidReading,
		},
		{
			name:    "zero price",
			reading: Reading{AssetKey: "usdc", SourceID: "chainfeed", Price: decimal.Zero, Timestamp: now},
			wantErr: ErrInvalidReading,
		},
		{
			name:    "negative price",
			reading: Reading{AssetKey: "usdc", SourceID: "chainfeed", Price: decimal.NewFromInt(-1), Timestamp: now},
			wantErr: ErrInvalidReading,
		},
		{
			name:    "valid reading",
			reading: Reading{AssetKey: "usdc", SourceID: "chainfeed", Price: decimal.NewFromInt(1), Timestamp: now},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := newTestFeed(t)
			err := feed.Apply(tt.reading)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceFeed_ApplyRejectsNonMonotonicTimestamp(t *testing.T) {
	now := time.Now()
	feed := newTestFeed(t)

	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now,
	}))

	// Same timestamp is not newer
	err := feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(2), Timestamp: now,
	})
	assert.ErrorIs(t, err, ErrInvalidReading)

	// Older timestamp rejected too
	err = feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(2), Timestamp: now.Add(-time.Second),
	})
	assert.ErrorIs(t, err, ErrInvalidReading)
}

func TestPriceFeed_QuoteFreshPrimary(t *testing.T) {
	now := time.Now()
	feed := newTestFeed(t)
	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.RequireFromString("1.01"), Timestamp: now,
	}))

	quote, err := feed.Quote(now.Add(30*time.Second), maxAge)
	require.NoError(t, err)
	assert.False(t, quote.Degraded)
	assert.Equal(t, SourceID("chainfeed"), quote.SourceID)
	assert.True(t, decimal.RequireFromString("1.01").Equal(quote.Price))
}

func TestPriceFeed_QuoteStaleAtBoundary(t *testing.T) {
	now := time.Now()
	feed, err := NewPriceFeed("usdc", "chainfeed", "")
	require.NoError(t, err)

	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now,
	}))

	// 61 seconds old with a 60 second window
	_, err = feed.Quote(now.Add(61*time.Second), maxAge)
	assert.ErrorIs(t, err, ErrStale)

	// Exactly the window boundary is already stale
	_, err = feed.Quote(now.Add(60*time.Second), maxAge)
	assert.ErrorIs(t, err, ErrStale)
}

func TestPriceFeed_QuoteFallsBackToSecondary(t *testing.T) {
	now := time.Now()
	feed := newTestFeed(t)

	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now.Add(-2 * time.Minute),
	}))
	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "backupfeed",
		Price: decimal.RequireFromString("0.99"), Timestamp: now.Add(-10 * time.Second),
	}))

	quote, err := feed.Quote(now, maxAge)
	require.NoError(t, err)
	assert.True(t, quote.Degraded)
	assert.Equal(t, SourceID("backupfeed"), quote.SourceID)
	assert.True(t, decimal.RequireFromString("0.99").Equal(quote.Price))
}

func TestPriceFeed_QuoteUnavailableWhenAllStale(t *testing.T) {
	now := time.Now()
	feed := newTestFeed(t)

	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now.Add(-2 * time.Minute),
	}))
	require.NoError(t, feed.Apply(Reading{
		AssetKey: "usdc", SourceID: "backupfeed",
		Price: decimal.NewFromInt(1), Timestamp: now.Add(-3 * time.Minute),
	}))

	_, err := feed.Quote(now, maxAge)
	assert.ErrorIs(t, err, ErrUnavailable)
}
