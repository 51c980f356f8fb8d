// matchmaking/store/stats_cache.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/findrivals/go-backend/shared/models"
	redisu "github.com/findrivals/go-backend/shared/redis"
	"github.com/redis/go-redis/v9"
)

// StatsCache keeps a short-lived snapshot of the admin stats in Redis so the
// stats endpoint does not hit MongoDB with count queries on every request.
type StatsCache struct {
	redisClient *redis.ClusterClient
	ttl         time.Duration
}

// NewStatsCache creates a new StatsCache with the given freshness window.
func NewStatsCache(redisClient *redis.ClusterClient, ttl time.Duration) *StatsCache {
	return &StatsCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns the cached snapshot, or redisu.ErrRedisKeyNotFound when the
// snapshot is missing or expired.
func (sc *StatsCache) Get(ctx context.Context) (*models.AdminStats, error) {
	val, err := sc.redisClient.Get(ctx, redisu.AdminStatsKey).Result()
	if err == redis.Nil {
		return nil, redisu.ErrRedisKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached admin stats: %w", err)
	}

	var stats models.AdminStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached admin stats: %w", err)
	}
	return &stats, nil
}

// Set stores the snapshot with the configured TTL.
func (sc *StatsCache) Set(ctx context.Context, stats *models.AdminStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode admin stats for caching: %w", err)
	}
	if err := sc.redisClient.Set(ctx, redisu.AdminStatsKey, payload, sc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache admin stats: %w", err)
	}
	return nil
}
