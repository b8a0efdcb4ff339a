package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	vehicleListKeyPrefix = "user:%d:vehicles"
)

// VehicleListTTL bounds staleness of the per-user dashboard cache; every
// vehicle mutation also invalidates it explicitly.
const VehicleListTTL = 5 * time.Minute

// VehicleListKey is the cache key for a user's vehicle list.
func VehicleListKey(userID uint) string {
	return fmt.Sprintf(vehicleListKeyPrefix, userID)
}

// Aside implements the cache-aside pattern: on hit, unmarshal the cached
// JSON into dest; on miss, run fetch (which must populate dest) and store
// the result best-effort. A nil client degrades to fetch-only.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Result(); err == nil {
			if err := json.Unmarshal([]byte(raw), dest); err == nil {
				return nil
			}
			// Corrupt entry: drop it and fall through to fetch.
			client.Del(ctx, key)
		}
	}

	if err := fetch(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

// Invalidate removes a key, ignoring errors; a stale miss is acceptable.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateVehicleList drops the cached dashboard for a user.
func InvalidateVehicleList(ctx context.Context, userID uint) {
	Invalidate(ctx, VehicleListKey(userID))
}
