package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/casavia/engage/internal/database/types"
	"github.com/casavia/engage/internal/redis"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

const (
	// RecommendationTTL defines how long computed recommendation sets
	// remain cached before they are recomputed.
	RecommendationTTL = 15 * time.Minute

	// RecommendationKeyPrefix identifies recommendation entries in Redis.
	RecommendationKeyPrefix = "recommendations:"
)

// RecommendationCache stores per-user recommendation sets in Redis so
// repeated requests within the TTL skip the matching queries entirely.
// Writes are unconditional SETs, so concurrent computations for the same
// user resolve last-writer-wins.
type RecommendationCache struct {
	client rueidis.Client
	logger *zap.Logger
}

// NewRecommendationCache initializes the recommendation cache.
func NewRecommendationCache(redisManager *redis.Manager, logger *zap.Logger) *RecommendationCache {
	client, err := redisManager.GetClient(redis.RecommendationDBIndex)
	if err != nil {
		logger.Fatal("Failed to get Redis client for recommendation cache", zap.Error(err))
	}

	return NewRecommendationCacheWithClient(client, logger)
}

// NewRecommendationCacheWithClient wraps an existing Redis client.
func NewRecommendationCacheWithClient(client rueidis.Client, logger *zap.Logger) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		logger: logger.Named("recommendation_cache"),
	}
}

// Get retrieves a user's cached recommendation set.
// Returns nil without error when no entry exists.
func (c *RecommendationCache) Get(ctx context.Context, userID int64) (*types.RecommendationSet, error) {
	key := RecommendationKeyPrefix + strconv.FormatInt(userID, 10)

	data, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get recommendations for user %d: %w", userID, err)
	}

	var set types.RecommendationSet
	if err := sonic.Unmarshal(data, &set); err != nil {
		c.logger.Warn("Invalid recommendation entry in Redis",
			zap.Int64("userID", userID),
			zap.Error(err))

		return nil, fmt.Errorf("invalid recommendation entry for user %d: %w", userID, err)
	}

	c.logger.Debug("Retrieved recommendations from cache",
		zap.Int64("userID", userID),
		zap.Int("listings", len(set.ListingIDs)))

	return &set, nil
}

// Set caches a user's recommendation set for the cache TTL.
func (c *RecommendationCache) Set(ctx context.Context, userID int64, set *types.RecommendationSet) error {
	key := RecommendationKeyPrefix + strconv.FormatInt(userID, 10)

	data, err := sonic.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations for user %d: %w", userID, err)
	}

	err = c.client.Do(ctx,
		c.client.B().Set().Key(key).Value(rueidis.BinaryString(data)).Ex(RecommendationTTL).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to set recommendations for user %d: %w", userID, err)
	}

	c.logger.Debug("Stored recommendations in cache",
		zap.Int64("userID", userID),
		zap.Int("listings", len(set.ListingIDs)))

	return nil
}

// Invalidate drops a user's cached recommendation set, forcing the next
// request to recompute. A missing entry is not an error.
func (c *RecommendationCache) Invalidate(ctx context.Context, userID int64) error {
	key := RecommendationKeyPrefix + strconv.FormatInt(userID, 10)

	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		return fmt.Errorf("failed to invalidate recommendations for user %d: %w", userID, err)
	}

	return nil
}
