package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache wraps the optional redis backend used for estimate responses and
// AI-endpoint rate limiting. A nil *Cache is valid and disables both.
type Cache struct {
	rdb *redis.Client
}

// New connects to redis, or returns nil when no URL is configured.
func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil
	}
	return &Cache{rdb: redis.NewClient(opts)}
}

// Key builds a stable cache key from its parts. The parts are JSON
// encoded so adjacent values cannot run together and collide.
func Key(parts ...any) string {
	b, _ := json.Marshal(parts)
	h := sha1.Sum(b)
	return "estimate:" + hex.EncodeToString(h[:])
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, value, ttl)
}

// Allow implements a fixed-window limiter: at most limit hits per key per
// window. Fails open when redis is down or disabled.
func (c *Cache) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if c == nil {
		return true
	}

	bucket := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(window.Seconds()))

	n, err := c.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		c.rdb.Expire(ctx, bucket, window)
	}
	return n <= int64(limit)
}
