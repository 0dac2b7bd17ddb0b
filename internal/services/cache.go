package services

import (
    "context"
    "time"
)

// Cache is the slice of the redis wrapper the services use for the absence
// leaderboard. A disabled cache satisfies it with no-ops.
type Cache interface {
    GetJSON(ctx context.Context, key string, v any) bool
    SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
    Delete(ctx context.Context, keys ...string)
}
