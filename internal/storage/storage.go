// storage.go
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

// Package storage puts application attachments in a blob store and hands
// back the public URL recorded on the application row.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
)

// ErrObjectNotFound is returned when an object is not found in storage
var ErrObjectNotFound = errors.New("object not found")

// Store is a "store bytes, return URL" blob store
type Store interface {
	// Put stores the object under key and returns its public URL
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object stored under key
	Delete(ctx context.Context, key string) error
	// KeyFromURL maps a URL returned by Put back to its key
	KeyFromURL(url string) (string, bool)
	// Check verifies the store is reachable
	Check(ctx context.Context) error
	// Name identifies the provider
	Name() string
}

// New creates the store selected by STORAGE_PROVIDER
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	switch cfg.StorageProvider {
	case "fs":
		return NewFS(cfg.StorageFSPath, cfg.StoragePublicURL, log)
	case "s3":
		return NewS3(ctx, cfg, log)
	}
	return nil, fmt.Errorf("unsupported storage provider: %s", cfg.StorageProvider)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces a client supplied file name to a safe key segment
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}

// Key builds the object key for an attachment:
// <prefix>/<folder>/<stem>-<unix ms>-<uuid>-<name>
func Key(prefix, folder, stem, name string, now time.Time) string {
	object := fmt.Sprintf("%s-%d-%s-%s", stem, now.UnixMilli(), uuid.NewString(), SanitizeName(name))
	if prefix == "" {
		return path.Join(folder, object)
	}
	return path.Join(prefix, folder, object)
}

func trimBase(base, url string) (string, bool) {
	base = strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
