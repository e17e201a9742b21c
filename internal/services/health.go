// health.go
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
	"fmt"
	"time"

	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/storage"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Service      string            `json:"service"`
	Environment  string            `json:"environment"`
	Storage      string            `json:"storage"`
	Database     string            `json:"database"`
	Cache        string            `json:"cache,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthDeps are the collaborators a health check probes. Store and Redis may be nil.
type HealthDeps struct {
	DB    *gorm.DB
	Store storage.Store
	Redis *redis.Client
	Log   logger.Logger
}

func (r *HealthCheckResult) fail(component, message string, err error) {
	r.Status = "unhealthy"
	r.Details[component+"_error"] = err.Error()
	if r.ErrorMessage == "" {
		r.ErrorMessage = fmt.Sprintf("%s: %v", message, err)
	} else {
		r.ErrorMessage += fmt.Sprintf("; %s: %v", message, err)
	}
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(ctx context.Context, cfg *config.Config, deps HealthDeps) HealthCheckResult {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result := HealthCheckResult{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Service:     cfg.ServiceName,
		Environment: cfg.Environment,
		Storage:     "not-configured",
		Database:    "not-configured",
		Details:     make(map[string]string),
	}
	log := deps.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	// Check database connectivity
	if deps.DB != nil {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			result.Database = "error"
			result.fail("database", "Database connection error", err)
		} else if err := sqlDB.PingContext(ctx); err != nil {
			result.Database = "unreachable"
			result.fail("database_ping", "Database ping failed", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check blob storage
	if deps.Store != nil {
		if err := deps.Store.Check(ctx); err != nil {
			result.Storage = "unreachable"
			result.fail("storage", "Storage check failed", err)
		} else {
			result.Storage = "configured"
			result.Details["storage_provider"] = deps.Store.Name()
		}
	}

	// Redis is optional; an outage is reported but not fatal
	if deps.Redis != nil {
		if err := deps.Redis.Ping(ctx).Err(); err != nil {
			result.Cache = "unreachable"
			result.Details["cache_error"] = err.Error()
		} else {
			result.Cache = "ok"
		}
	}

	if result.Status == "healthy" {
		log.Debug("health check passed", nil)
	} else {
		log.Warn("health check failed", logger.Fields{"error": result.ErrorMessage})
	}

	return result
}
