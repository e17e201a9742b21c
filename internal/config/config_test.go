// config_test.go
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(values map[string]interface{}) *viper.Viper {
	v := newViper()
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]interface{}{
		"DB_DATABASE": "pitch2angels",
		"DB_USER":     "portal",
	}))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, []string{"https://pitch2angels.com", "https://www.pitch2angels.com"}, cfg.CORSOrigins)
	assert.Equal(t, 25*1024*1024, cfg.BodyLimit)
	assert.EqualValues(t, 10*1024*1024, cfg.MaxFileSize)
	assert.Equal(t, "fs", cfg.StorageProvider)
	assert.Equal(t, "pitch2angels", cfg.StoragePrefix)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.StatsCacheEnabled())
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]interface{}{
		"APP_ENV":            "production",
		"CORS_ORIGIN":        " https://a.example.com , ,https://b.example.com",
		"DB_TYPE":            "SQLite",
		"DB_DATABASE":        "portal.db",
		"STORAGE_PROVIDER":   "S3",
		"S3_BUCKET":          "pitches",
		"STORAGE_PUBLIC_URL": "https://cdn.example.com/",
		"STORAGE_PREFIX":     "/uploads/",
		"REDIS_ADDR":         "localhost:6379",
		"STATS_CACHE_TTL":    "2m",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "s3", cfg.StorageProvider)
	assert.Equal(t, "https://cdn.example.com", cfg.StoragePublicURL)
	assert.Equal(t, "uploads", cfg.StoragePrefix)
	assert.True(t, cfg.StatsCacheEnabled())
	assert.Equal(t, 2*time.Minute, cfg.StatsCacheTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]interface{}
		errMsg string
	}{
		{"missing database", map[string]interface{}{"DB_USER": "u"}, "DB_DATABASE is required"},
		{"missing user", map[string]interface{}{"DB_DATABASE": "d"}, "DB_USER is required"},
		{"s3 without bucket", map[string]interface{}{"DB_DATABASE": "d", "DB_USER": "u", "STORAGE_PROVIDER": "s3"}, "S3_BUCKET is required"},
		{"unknown provider", map[string]interface{}{"DB_DATABASE": "d", "DB_USER": "u", "STORAGE_PROVIDER": "ftp"}, "unsupported storage provider"},
		{"ses without sender", map[string]interface{}{"DB_DATABASE": "d", "DB_USER": "u", "SES_ENABLED": true}, "SES_FROM_EMAIL is required"},
		{"bad file size", map[string]interface{}{"DB_DATABASE": "d", "DB_USER": "u", "MAX_FILE_SIZE": 0}, "MAX_FILE_SIZE must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromViper(testViper(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_TYPE=sqlite\nDB_DATABASE=from-env-file.db\nPORT=4100\n"), 0o600))

	t.Setenv("ENV_FILE", envFile)
	// godotenv does not override variables that are already set
	t.Setenv("PORT", "4200")
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_DATABASE", "")
	os.Unsetenv("DB_TYPE")
	os.Unsetenv("DB_DATABASE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "from-env-file.db", cfg.DBDatabase)
	assert.Equal(t, "4200", cfg.Port)
}
