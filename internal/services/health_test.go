// health_test.go
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

package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func healthConfig() *config.Config {
	return &config.Config{
		ServiceName: "pitch2angels-api",
		Environment: "test",
		DBType:      "sqlite",
		DBDatabase:  ":memory:",
	}
}

func TestHealthCheck_Healthy(t *testing.T) {
	store, _ := setupTestStore(t)
	mr := miniredis.RunT(t)

	result := HealthCheck(context.Background(), healthConfig(), HealthDeps{
		DB:    setupTestDB(t),
		Store: store,
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Log:   logger.NewTestLogger(t),
	})

	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "pitch2angels-api", result.Service)
	assert.Equal(t, "test", result.Environment)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "configured", result.Storage)
	assert.Equal(t, "ok", result.Cache)
	assert.Equal(t, "fs", result.Details["storage_provider"])
	assert.Empty(t, result.ErrorMessage)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	result := HealthCheck(context.Background(), healthConfig(), HealthDeps{DB: db})
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.Equal(t, "not-configured", result.Storage)
	assert.Contains(t, result.ErrorMessage, "Database ping failed")
}

func TestHealthCheck_CacheDownOnlyDegrades(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	result := HealthCheck(context.Background(), healthConfig(), HealthDeps{DB: setupTestDB(t), Redis: rdb})
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "unreachable", result.Cache)
	assert.NotEmpty(t, result.Details["cache_error"])
}
