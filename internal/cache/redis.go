package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

// RedisCache is an optional read-through cache for content collections.
// Payloads are stored as JSON under key: "<prefix><collection>" with a fixed
// TTL. Every failure (transport, decode, missing key) is reported as a miss
// so callers fall through to the store.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis-based content cache. Prefix may be empty.
func New(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "content:"
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(collection string) string {
	return c.prefix + collection
}

func (c *RedisCache) Get(ctx context.Context, collection string) ([]bson.M, bool) {
	b, err := c.client.Get(ctx, c.key(collection)).Bytes()
	if err != nil {
		return nil, false
	}
	var docs []bson.M
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, false
	}
	return docs, true
}

func (c *RedisCache) Set(ctx context.Context, collection string, docs []bson.M) {
	b, err := json.Marshal(docs)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(collection), b, c.ttl).Err()
}
