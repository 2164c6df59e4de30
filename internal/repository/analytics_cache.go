package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"wellnessa_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const analyticsKeyPrefix = "analytics:user:"

// AnalyticsCache keeps computed analytics summaries in redis.
type AnalyticsCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{Redis: rdb, TTL: ttl}
}

func analyticsKey(userID uint) string {
	return fmt.Sprintf("%s%d", analyticsKeyPrefix, userID)
}

// Get reports ok=false on a cache miss.
func (c *AnalyticsCache) Get(ctx context.Context, userID uint) (*model.AnalyticsSummary, bool, error) {
	val, err := c.Redis.Get(ctx, analyticsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary model.AnalyticsSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, userID uint, summary *model.AnalyticsSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, analyticsKey(userID), payload, c.TTL).Err()
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, userID uint) error {
	return c.Redis.Del(ctx, analyticsKey(userID)).Err()
}
