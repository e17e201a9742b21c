// stats_test.go
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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Total int64 `json:"total"`
}

func TestRedisStats(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	c := NewStats(rdb, 30*time.Second)

	var got sample
	found, err := c.Get(ctx, &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, sample{Total: 12}))
	assert.Equal(t, 30*time.Second, mr.TTL(StatsKey))

	found, err = c.Get(ctx, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(12), got.Total)

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(StatsKey))

	mr.FastForward(time.Minute)
	require.NoError(t, c.Set(ctx, sample{Total: 1}))
	mr.FastForward(31 * time.Second)
	found, err = c.Get(ctx, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStats_Corrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	require.NoError(t, mr.Set(StatsKey, "not-json"))

	var got sample
	_, err := NewStats(rdb, time.Second).Get(context.Background(), &got)
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	c := NewStats(nil, time.Second)
	assert.IsType(t, Noop{}, c)

	found, err := c.Get(context.Background(), &sample{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), sample{}))
	assert.NoError(t, c.Invalidate(context.Background()))
}
