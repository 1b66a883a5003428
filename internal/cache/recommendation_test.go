package cache_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/casavia/engage/internal/cache"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/database/types/enum"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*cache.RecommendationCache, *miniredis.Miniredis, func()) {
	t.Helper()

	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	logger := zap.NewNop()
	recCache := cache.NewRecommendationCacheWithClient(client, logger)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return recCache, mr, cleanup
}

func TestGetMissingEntry(t *testing.T) {
	t.Parallel()

	recCache, _, cleanup := setupTest(t)
	defer cleanup()

	set, err := recCache.Get(t.Context(), 7)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	recCache, _, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()
	stored := &types.RecommendationSet{
		ListingIDs: []int64{4, 8, 15},
		Source:     enum.RecommendationSourcePersonalized,
	}

	require.NoError(t, recCache.Set(ctx, 7, stored))

	got, err := recCache.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stored.ListingIDs, got.ListingIDs)
	assert.Equal(t, enum.RecommendationSourcePersonalized, got.Source)

	// Entries for other users stay independent.
	other, err := recCache.Get(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSetAppliesTTL(t *testing.T) {
	t.Parallel()

	recCache, mr, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()
	stored := &types.RecommendationSet{
		ListingIDs: []int64{1},
		Source:     enum.RecommendationSourceLatest,
	}

	require.NoError(t, recCache.Set(ctx, 7, stored))
	assert.Equal(t, cache.RecommendationTTL, mr.TTL("recommendations:7"))

	// Expired entries read back as misses.
	mr.FastForward(cache.RecommendationTTL)

	got, err := recCache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetOverwritesExistingEntry(t *testing.T) {
	t.Parallel()

	recCache, _, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	require.NoError(t, recCache.Set(ctx, 7, &types.RecommendationSet{
		ListingIDs: []int64{1, 2},
		Source:     enum.RecommendationSourceLatest,
	}))
	require.NoError(t, recCache.Set(ctx, 7, &types.RecommendationSet{
		ListingIDs: []int64{3},
		Source:     enum.RecommendationSourcePersonalized,
	}))

	got, err := recCache.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []int64{3}, got.ListingIDs)
	assert.Equal(t, enum.RecommendationSourcePersonalized, got.Source)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()

	recCache, _, cleanup := setupTest(t)
	defer cleanup()

	ctx := t.Context()

	require.NoError(t, recCache.Set(ctx, 7, &types.RecommendationSet{
		ListingIDs: []int64{1},
		Source:     enum.RecommendationSourceLatest,
	}))
	require.NoError(t, recCache.Invalidate(ctx, 7))

	got, err := recCache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Invalidating a missing entry is fine.
	require.NoError(t, recCache.Invalidate(ctx, 7))
}
