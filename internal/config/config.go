// config.go
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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	Environment string
	ServiceName string
	CORSOrigins []string
	StaticDir   string
	BodyLimit   int
	MaxFileSize int64

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Database configuration
	DBType            string // postgres, mysql, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string

	// Blob storage configuration
	StorageProvider  string // fs, s3
	StorageFSPath    string
	StoragePublicURL string
	StoragePrefix    string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	S3AccessKeyID    string
	S3SecretKey      string
	S3ForcePathStyle bool

	// Statistics cache configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StatsCacheTTL time.Duration

	// Notification configuration
	SESEnabled   bool
	SESRegion    string
	SESFromEmail string
}

var defaults = map[string]interface{}{
	"PORT":                 "4000",
	"APP_ENV":              "development",
	"SERVICE_NAME":         "pitch2angels-api",
	"CORS_ORIGIN":          "https://pitch2angels.com,https://www.pitch2angels.com",
	"STATIC_DIR":           "",
	"BODY_LIMIT":           25 * 1024 * 1024,
	"MAX_FILE_SIZE":        10 * 1024 * 1024,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"DB_TYPE":              "postgres",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_DATABASE":          "",
	"DB_USER":              "",
	"DB_PASSWORD":          "",
	"DB_CONNECTION_LIMIT":  10,
	"DB_LOG_LEVEL":         "warn",
	"STORAGE_PROVIDER":     "fs",
	"STORAGE_FS_PATH":      "./uploads",
	"STORAGE_PUBLIC_URL":   "http://localhost:4000/uploads",
	"STORAGE_PREFIX":       "pitch2angels",
	"S3_BUCKET":            "",
	"S3_REGION":            "us-east-1",
	"S3_ENDPOINT":          "",
	"S3_ACCESS_KEY_ID":     "",
	"S3_SECRET_ACCESS_KEY": "",
	"S3_FORCE_PATH_STYLE":  false,
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"STATS_CACHE_TTL":      "30s",
	"SES_ENABLED":          false,
	"SES_REGION":           "us-east-1",
	"SES_FROM_EMAIL":       "",
}

// Load loads configuration from the environment, reading a .env file first when one exists
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		Environment:       v.GetString("APP_ENV"),
		ServiceName:       v.GetString("SERVICE_NAME"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGIN")),
		StaticDir:         v.GetString("STATIC_DIR"),
		BodyLimit:         v.GetInt("BODY_LIMIT"),
		MaxFileSize:       v.GetInt64("MAX_FILE_SIZE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		DBType:            strings.ToLower(v.GetString("DB_TYPE")),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBDatabase:        v.GetString("DB_DATABASE"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBConnectionLimit: v.GetInt("DB_CONNECTION_LIMIT"),
		DBLogLevel:        v.GetString("DB_LOG_LEVEL"),
		StorageProvider:   strings.ToLower(v.GetString("STORAGE_PROVIDER")),
		StorageFSPath:     v.GetString("STORAGE_FS_PATH"),
		StoragePublicURL:  strings.TrimRight(v.GetString("STORAGE_PUBLIC_URL"), "/"),
		StoragePrefix:     strings.Trim(v.GetString("STORAGE_PREFIX"), "/"),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Region:          v.GetString("S3_REGION"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		S3AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretKey:       v.GetString("S3_SECRET_ACCESS_KEY"),
		S3ForcePathStyle:  v.GetBool("S3_FORCE_PATH_STYLE"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		StatsCacheTTL:     v.GetDuration("STATS_CACHE_TTL"),
		SESEnabled:        v.GetBool("SES_ENABLED"),
		SESRegion:         v.GetString("SES_REGION"),
		SESFromEmail:      v.GetString("SES_FROM_EMAIL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required and dependent settings
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if c.DBType != "sqlite" && c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}

	switch c.StorageProvider {
	case "fs":
		if c.StorageFSPath == "" {
			return fmt.Errorf("STORAGE_FS_PATH is required for the fs storage provider")
		}
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 storage provider")
		}
	default:
		return fmt.Errorf("unsupported storage provider: %s", c.StorageProvider)
	}

	if c.SESEnabled && c.SESFromEmail == "" {
		return fmt.Errorf("SES_FROM_EMAIL is required when SES_ENABLED is set")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// StatsCacheEnabled reports whether a Redis address was configured
func (c *Config) StatsCacheEnabled() bool {
	return c.RedisAddr != ""
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
