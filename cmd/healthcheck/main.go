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
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/database"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/services"
	"github.com/pitch2angels/portal/internal/storage"
	"github.com/pitch2angels/portal/internal/utils"
)

func main() {
	var serverOnly bool
	flag.BoolVar(&serverOnly, "server", false, "only check that the server accepts connections on PORT")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if serverOnly {
		if err := utils.PingServer(cfg.Port); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()
	quiet := logger.NewNoOpLogger()

	// Connect to database
	db, err := database.Connect(cfg, quiet)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	store, err := storage.New(ctx, cfg, quiet)
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}

	rdb := database.NewRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// Perform health check
	result := services.HealthCheck(ctx, cfg, services.HealthDeps{DB: db, Store: store, Redis: rdb, Log: quiet})

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
