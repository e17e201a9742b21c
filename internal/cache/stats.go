// stats.go
//
// Pitch 2 Angels application portal: public pitch submissions and admin review service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pitch2angels-portal.
// pitch2angels-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pitch2angels-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pitch2angels-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package cache keeps the admin statistics in Redis between submissions.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pitch2angels/portal/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// StatsKey is the Redis key holding the cached statistics
const StatsKey = "pitch2angels:statistics"

// Stats caches one JSON encoded statistics value
type Stats interface {
	Get(ctx context.Context, dest interface{}) (bool, error)
	Set(ctx context.Context, value interface{}) error
	Invalidate(ctx context.Context) error
}

// NewStats returns a Redis backed cache, or a no-op cache when rdb is nil
func NewStats(rdb *redis.Client, ttl time.Duration) Stats {
	if rdb == nil {
		return Noop{}
	}
	return &RedisStats{rdb: rdb, ttl: ttl}
}

// RedisStats stores statistics in Redis with a TTL
type RedisStats struct {
	rdb *redis.Client
	ttl time.Duration
}

// Get decodes the cached value into dest and reports whether it was present
func (r *RedisStats) Get(ctx context.Context, dest interface{}) (bool, error) {
	val, err := r.rdb.Get(ctx, StatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StatsCacheLookups.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		metrics.StatsCacheLookups.WithLabelValues("error").Inc()
		return false, fmt.Errorf("stats cache get: %w", err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		metrics.StatsCacheLookups.WithLabelValues("error").Inc()
		return false, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value
func (r *RedisStats) Set(ctx context.Context, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := r.rdb.Set(ctx, StatsKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached value
func (r *RedisStats) Invalidate(ctx context.Context) error {
	if err := r.rdb.Del(ctx, StatsKey).Err(); err != nil {
		return fmt.Errorf("stats cache invalidate: %w", err)
	}
	return nil
}

// Noop never caches
type Noop struct{}

func (Noop) Get(context.Context, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, interface{}) error         { return nil }
func (Noop) Invalidate(context.Context) error               { return nil }
