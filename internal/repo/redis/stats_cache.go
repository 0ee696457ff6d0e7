package redis

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) repo.StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *StatsCache) GetStats(ctx context.Context, key string) ([]*entity.ViewStats, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repo.ErrCacheMiss
		}
		return nil, err
	}

	stats := make([]*entity.ViewStats, 0)
	if err := msgpack.Unmarshal(val, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *StatsCache) SetStats(ctx context.Context, key string, stats []*entity.ViewStats) error {
	b, err := msgpack.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}
