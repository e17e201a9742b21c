// fs.go
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

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pitch2angels/portal/internal/logger"
)

// FSStore keeps objects on the local filesystem. Objects are expected to be
// served from publicURL by the HTTP server.
type FSStore struct {
	basePath  string
	publicURL string
	log       logger.Logger
}

// NewFS creates a filesystem store rooted at basePath
func NewFS(basePath, publicURL string, log logger.Logger) (*FSStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	log.Info("filesystem storage initialized", logger.Fields{"base_path": basePath})

	return &FSStore{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log.WithFields(logger.Fields{"component": "filesystem_storage"}),
	}, nil
}

// Name implements Store
func (s *FSStore) Name() string { return "fs" }

// BasePath is the directory holding the objects
func (s *FSStore) BasePath() string { return s.basePath }

func (s *FSStore) objectPath(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid object key: %q", key)
	}
	return filepath.Join(s.basePath, clean), nil
}

// Put implements Store
func (s *FSStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	objectPath, err := s.objectPath(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(objectPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	file, err := os.Create(objectPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		_ = os.Remove(objectPath)
		return "", fmt.Errorf("failed to write data: %w", err)
	}

	s.log.Debug("object stored", logger.Fields{
		"key":          key,
		"bytes":        written,
		"content_type": contentType,
	})

	return s.publicURL + "/" + key, nil
}

// Delete implements Store
func (s *FSStore) Delete(ctx context.Context, key string) error {
	objectPath, err := s.objectPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(objectPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	s.log.Debug("object deleted", logger.Fields{"key": key})
	return nil
}

// KeyFromURL implements Store
func (s *FSStore) KeyFromURL(url string) (string, bool) {
	return trimBase(s.publicURL, url)
}

// Check implements Store
func (s *FSStore) Check(ctx context.Context) error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		return fmt.Errorf("storage path unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path is not a directory: %s", s.basePath)
	}
	return nil
}
