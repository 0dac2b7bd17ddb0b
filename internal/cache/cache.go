// Package cache wraps redis for short-lived derived data (the absence
// leaderboard). Every method is a no-op when redis is not configured, so call
// sites never need to branch.
package cache

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"
)

type Cache struct {
    client *redis.Client
}

// New connects to redis with short timeouts. An empty addr returns a disabled
// cache.
func New(addr string) *Cache {
    if addr == "" {
        return &Cache{}
    }
    client := redis.NewClient(&redis.Options{
        Addr:         addr,
        DialTimeout:  2 * time.Second,
        ReadTimeout:  1 * time.Second,
        WriteTimeout: 1 * time.Second,
    })
    return &Cache{client: client}
}

// GetJSON loads key into v, reporting whether a value was found.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
    if c == nil || c.client == nil {
        return false
    }
    data, err := c.client.Get(ctx, key).Bytes()
    if err != nil {
        return false
    }
    return json.Unmarshal(data, v) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
    if c == nil || c.client == nil {
        return
    }
    data, err := json.Marshal(v)
    if err != nil {
        return
    }
    _ = c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
    if c == nil || c.client == nil || len(keys) == 0 {
        return
    }
    _ = c.client.Del(ctx, keys...).Err()
}

// Healthy verifies redis connectivity.
func (c *Cache) Healthy(ctx context.Context) bool {
    if c == nil || c.client == nil {
        return false
    }
    return c.client.Ping(ctx).Err() == nil
}

// Enabled reports whether a redis backend is configured.
func (c *Cache) Enabled() bool {
    return c != nil && c.client != nil
}
