// connection_test.go
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

package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dbType string
		name   string
	}{
		{"postgres", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite", "sqlite"},
		{"sqlserver", "sqlserver"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			cfg := &config.Config{DBType: tt.dbType, DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBDatabase: "applications"}
			d, err := Dialector(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, LogLevel("silent"))
	assert.Equal(t, gormlogger.Error, LogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, LogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, LogLevel(""))
}

func TestConnectSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "portal.db"),
		DBConnectionLimit: 2,
		DBLogLevel:        "silent",
	}

	db, err := Connect(cfg, logger.NewTestLogger(t))
	require.NoError(t, err)
	defer Close(db)
	assert.Equal(t, time.UTC, db.NowFunc().Location())

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Application{}))
	assert.True(t, db.Migrator().HasIndex(&models.Application{}, "Email"))

	app := models.Application{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.Create(&app).Error)

	dup := models.Application{FirstName: "Ada", LastName: "Again", Email: "ada@example.com"}
	assert.Error(t, db.Create(&dup).Error)
}

func TestNewRedis(t *testing.T) {
	assert.Nil(t, NewRedis(&config.Config{}))

	mr := miniredis.RunT(t)
	rdb := NewRedis(&config.Config{RedisAddr: mr.Addr()})
	require.NotNil(t, rdb)
	defer rdb.Close()

	assert.NoError(t, PingRedis(t.Context(), rdb))
}
