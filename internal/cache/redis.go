package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

const quotePrefix = "quote:"

// QuoteCache is a short-TTL Redis cache for served quote responses. Quotes
// go stale as reserves move, so the TTL should stay in the low seconds.
type QuoteCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewQuoteCache(client redis.Cmdable, ttl time.Duration) (*QuoteCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &QuoteCache{client: client, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into out.
func (q *QuoteCache) Get(ctx context.Context, key string, out any) error {
	val, err := q.client.Get(ctx, quotePrefix+key).Result()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return fmt.Errorf("unmarshal quote: %w", err)
	}
	return nil
}

// Set stores value under key for the cache TTL.
func (q *QuoteCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	if err := q.client.Set(ctx, quotePrefix+key, b, q.ttl).Err(); err != nil {
		return fmt.Errorf("set quote: %w", err)
	}
	return nil
}
