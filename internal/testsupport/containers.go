// containers.go
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

// Package testsupport starts the database and cache containers used by the
// integration tests and by cmd/devdb for local development.
package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Options selects the containers to start
type Options struct {
	DBType     string // postgres or mariadb
	DBImage    string
	DBName     string
	DBUser     string
	DBPassword string
	WithRedis  bool
	RedisImage string
}

// DefaultOptions returns a Postgres setup matching the service defaults
func DefaultOptions() Options {
	return Options{
		DBType:     "postgres",
		DBImage:    "postgres:16-alpine",
		DBName:     "pitch2angels",
		DBUser:     "pitch2angels",
		DBPassword: "pitch2angels",
		WithRedis:  true,
		RedisImage: "redis:7-alpine",
	}
}

// OptionsFromEnv overrides the defaults with DB_TYPE, DB_IMAGE, DB_DATABASE,
// DB_USER, DB_PASSWORD and REDIS_IMAGE when they are set
func OptionsFromEnv() Options {
	opts := DefaultOptions()
	for env, dest := range map[string]*string{
		"DB_TYPE":     &opts.DBType,
		"DB_IMAGE":    &opts.DBImage,
		"DB_DATABASE": &opts.DBName,
		"DB_USER":     &opts.DBUser,
		"DB_PASSWORD": &opts.DBPassword,
		"REDIS_IMAGE": &opts.RedisImage,
	} {
		if value := os.Getenv(env); value != "" {
			*dest = value
		}
	}
	if opts.DBType == "mariadb" && os.Getenv("DB_IMAGE") == "" {
		opts.DBImage = "mariadb:11"
	}
	return opts
}

// Containers are the running containers and how to reach them
type Containers struct {
	Network        *testcontainers.DockerNetwork
	DBContainer    testcontainers.Container
	RedisContainer testcontainers.Container

	Options   Options
	DBHost    string
	DBPort    string
	RedisAddr string
}

// Terminate stops every started container and removes the network
func (tc *Containers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.RedisContainer != nil {
		if err := tc.RedisContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Redis: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", tc.Options.DBType, err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// Env returns the service environment that points at the containers
func (tc *Containers) Env() map[string]string {
	env := map[string]string{
		"DB_TYPE":     tc.Options.DBType,
		"DB_HOST":     tc.DBHost,
		"DB_PORT":     tc.DBPort,
		"DB_DATABASE": tc.Options.DBName,
		"DB_USER":     tc.Options.DBUser,
		"DB_PASSWORD": tc.Options.DBPassword,
	}
	if tc.RedisAddr != "" {
		env["REDIS_ADDR"] = tc.RedisAddr
	}
	return env
}

// Start runs the database container, and Redis when requested, and waits
// until the database accepts connections
func Start(ctx context.Context, t *testing.T, opts Options) (*Containers, error) {
	tc := &Containers{Options: opts}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw

	dbPort, driver, err := dbPortAndDriver(opts.DBType)
	if err != nil {
		tc.Terminate(t)
		return nil, err
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.DBImage,
			ExposedPorts: []string{string(dbPort)},
			Env:          dbInitEnv(opts),
			WaitingFor:   wait.ForListeningPort(dbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {"db"},
			},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to start %s: %w", opts.DBType, err)
	}
	tc.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to get database host: %w", err)
	}
	mapped, err := dbContainer.MappedPort(ctx, dbPort)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to get database port: %w", err)
	}
	tc.DBHost, tc.DBPort = host, mapped.Port()

	if err := waitForDB(driver, dataSource(opts, host, mapped)); err != nil {
		tc.Terminate(t)
		return nil, err
	}
	logMessage(t, "%s ready at %s:%s", opts.DBType, tc.DBHost, tc.DBPort)

	if opts.WithRedis {
		redisPort := nat.Port("6379/tcp")
		redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        opts.RedisImage,
				ExposedPorts: []string{string(redisPort)},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
				Networks:     []string{nw.Name},
			},
			Started: true,
		})
		if err != nil {
			tc.Terminate(t)
			return nil, fmt.Errorf("failed to start Redis: %w", err)
		}
		tc.RedisContainer = redisContainer

		redisHost, _ := redisContainer.Host(ctx)
		redisMapped, err := redisContainer.MappedPort(ctx, redisPort)
		if err != nil {
			tc.Terminate(t)
			return nil, fmt.Errorf("failed to get Redis port: %w", err)
		}
		tc.RedisAddr = fmt.Sprintf("%s:%s", redisHost, redisMapped.Port())
		logMessage(t, "Redis ready at %s", tc.RedisAddr)
	}

	return tc, nil
}

func dbPortAndDriver(dbType string) (nat.Port, string, error) {
	switch dbType {
	case "postgres":
		port, err := nat.NewPort("tcp", "5432")
		return port, "pgx", err
	case "mariadb", "mysql":
		port, err := nat.NewPort("tcp", "3306")
		return port, "mysql", err
	}
	return "", "", fmt.Errorf("unsupported container database type: %s", dbType)
}

func dbInitEnv(opts Options) map[string]string {
	switch opts.DBType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": opts.DBPassword,
			"POSTGRES_USER":     opts.DBUser,
			"POSTGRES_DB":       opts.DBName,
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": opts.DBPassword,
			"MYSQL_DATABASE":      opts.DBName,
			"MYSQL_USER":          opts.DBUser,
			"MYSQL_PASSWORD":      opts.DBPassword,
		}
	}
	return nil
}

func dataSource(opts Options, host string, port nat.Port) string {
	if opts.DBType == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", opts.DBUser, opts.DBPassword, host, port.Port(), opts.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", opts.DBUser, opts.DBPassword, host, port.Port(), opts.DBName)
}

// waitForDB pings until the server accepts logins, which can lag the open port
func waitForDB(driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for setup: %w", err)
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", err)
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
