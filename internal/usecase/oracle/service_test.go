package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfund/vault-backend/internal/adapter/repository/memory"
	"github.com/harborfund/vault-backend/internal/domain"
)

func newTestService() *Service {
	return NewService(
		memory.NewPriceFeedRepository(),
		func() time.Duration { return 60 * time.Second },
		zerolog.Nop(),
	)
}

func TestRegisterFeed_Duplicate(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	require.NoError(t, service.RegisterFeed(ctx, "usdc", FeedConfig{Primary: "chainfeed"}))
	assert.Error(t, service.RegisterFeed(ctx, "usdc", FeedConfig{Primary: "chainfeed"}))
}

func TestRefresh_UnknownAsset(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	err := service.Refresh(ctx, domain.Reading{
		AssetKey: "ghost",
		SourceID: "chainfeed",
		Price:    decimal.NewFromInt(1),
	})
	assert.Error(t, err)
}

func TestRefresh_RejectedReadingLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	service := newTestService()

	require.NoError(t, service.RegisterFeed(ctx, "usdc", FeedConfig{Primary: "chainfeed"}))
	require.NoError(t, service.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now,
	}))

	err := service.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(-1), Timestamp: now.Add(time.Second),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReading)

	quote, err := service.GetPrice(ctx, "usdc", now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(quote.Price))
}

func TestGetPrice_StaleAfterWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	service := newTestService()

	require.NoError(t, service.RegisterFeed(ctx, "usdc", FeedConfig{Primary: "chainfeed"}))
	require.NoError(t, service.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now,
	}))

	// 61 seconds later with a 60 second window
	_, err := service.GetPrice(ctx, "usdc", now.Add(61*time.Second))
	assert.ErrorIs(t, err, domain.ErrStale)
}

func TestGetPrice_DegradedFallback(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	service := newTestService()

	require.NoError(t, service.RegisterFeed(ctx, "usdc", FeedConfig{
		Primary:   "chainfeed",
		Secondary: "backupfeed",
	}))
	require.NoError(t, service.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now.Add(-2 * time.Minute),
	}))
	require.NoError(t, service.Refresh(ctx, domain.Reading{
		AssetKey: "usdc", SourceID: "backupfeed",
		Price: decimal.RequireFromString("0.99"), Timestamp: now.Add(-5 * time.Second),
	}))

	quote, err := service.GetPrice(ctx, "usdc", now)
	require.NoError(t, err)
	assert.True(t, quote.Degraded)
	assert.Equal(t, domain.SourceID("backupfeed"), quote.SourceID)
}

func TestLoad_HydratesFromRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	repo := memory.NewPriceFeedRepository()

	feed, err := domain.NewPriceFeed("usdc", "chainfeed", "")
	require.NoError(t, err)
	require.NoError(t, feed.Apply(domain.Reading{
		AssetKey: "usdc", SourceID: "chainfeed",
		Price: decimal.NewFromInt(1), Timestamp: now,
	}))
	require.NoError(t, repo.Save(ctx, feed))

	service := NewService(repo, func() time.Duration { return 60 * time.Second }, zerolog.Nop())
	require.NoError(t, service.Load(ctx))

	quote, err := service.GetPrice(ctx, "usdc", now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(quote.Price))
}
