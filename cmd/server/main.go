// main.go
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

package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/pitch2angels/portal/internal/cache"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/database"
	"github.com/pitch2angels/portal/internal/handlers"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/middleware"
	"github.com/pitch2angels/portal/internal/notify"
	"github.com/pitch2angels/portal/internal/services"
	"github.com/pitch2angels/portal/internal/storage"

	_ "github.com/pitch2angels/portal/docs/api" // Swagger docs
)

// @title Pitch 2 Angels API
// @version 1.0.0
// @description Startup pitch application submissions and admin review
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://pitch2angels.com
// @contact.email info@pitch2angels.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:4000
// @BasePath /api
// @schemes http https

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("server exited: %v", err)
		os.Exit(1)
	}
}

// run starts the server and returns once it has stopped
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLog, err := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLog.Sync()
	appLog = appLog.WithFields(logger.Fields{"service": cfg.ServiceName, "environment": cfg.Environment})

	ctx := context.Background()

	// Connect to database
	db, err := database.Connect(cfg, appLog)
	if err != nil {
		appLog.Error("failed to connect to database", logger.Fields{"error": err})
		return err
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		appLog.Error("failed to run migrations", logger.Fields{"error": err})
		return err
	}

	// Statistics cache (optional)
	rdb := database.NewRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
		if err := database.PingRedis(ctx, rdb); err != nil {
			appLog.Warn("statistics cache unavailable, continuing without it", logger.Fields{"error": err})
		}
	}
	stats := cache.NewStats(rdb, cfg.StatsCacheTTL)

	store, err := storage.New(ctx, cfg, appLog)
	if err != nil {
		appLog.Error("failed to create blob store", logger.Fields{"error": err})
		return err
	}

	notifier, err := notify.New(ctx, cfg, appLog)
	if err != nil {
		appLog.Error("failed to create notifier", logger.Fields{"error": err})
		return err
	}

	dev := cfg.IsDevelopment()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: handlers.ErrorHandler(appLog, dev),
		BodyLimit:    cfg.BodyLimit,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(appLog))
	app.Use(compress.New())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// Prometheus metrics
	prometheus := fiberprometheus.New(cfg.ServiceName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	handlers.Routes(app.Group("/api"),
		&handlers.ApplicationHandler{
			Submissions: &services.SubmissionService{
				DB:          db,
				Store:       store,
				Stats:       stats,
				Notifier:    notifier,
				Log:         appLog,
				Prefix:      cfg.StoragePrefix,
				MaxFileSize: cfg.MaxFileSize,
			},
			Log: appLog,
			Dev: dev,
		},
		&handlers.AdminHandler{
			Admin: &services.AdminService{DB: db, Store: store, Stats: stats, Log: appLog},
			Log:   appLog,
			Dev:   dev,
		},
		&handlers.HealthHandler{
			Config: cfg,
			Deps:   services.HealthDeps{DB: db, Store: store, Redis: rdb, Log: appLog},
		},
	)

	// Uploaded files are served by the service itself on the fs provider
	if fsStore, ok := store.(*storage.FSStore); ok {
		app.Static(uploadsPath(cfg.StoragePublicURL), fsStore.BasePath())
	}

	// Static site
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	// 404 handler, or the site's index for client side routes
	app.Use(func(c *fiber.Ctx) error {
		if cfg.StaticDir != "" && c.Method() == fiber.MethodGet && !strings.HasPrefix(c.Path(), "/api") {
			return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
		}
		return handlers.NotFound(c)
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-quit
		appLog.Info("gracefully shutting down", logger.Fields{"signal": sig.String()})
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			appLog.Error("forced shutdown", logger.Fields{"error": err})
		}
	}()

	// Start server
	appLog.Info("starting server", logger.Fields{
		"port":    cfg.Port,
		"storage": store.Name(),
		"cache":   cfg.StatsCacheEnabled(),
	})
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Error("failed to start server", logger.Fields{"error": err})
		return err
	}

	appLog.Info("server stopped", nil)
	return nil
}

// uploadsPath is the route prefix of the public URL uploads are served under
func uploadsPath(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/uploads"
	}
	return strings.TrimRight(u.Path, "/")
}
