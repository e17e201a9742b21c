// helpers_test.go
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
	"bytes"
	"context"
	"io"
	"io/fs"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pitch2angels/portal/internal/cache"
	"github.com/pitch2angels/portal/internal/database"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/models"
	"github.com/pitch2angels/portal/internal/storage"
	"github.com/pitch2angels/portal/internal/wizard"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc:        database.NowUTC,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Application{}))
	return db
}

func setupTestStore(t *testing.T) (*storage.FSStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir, "http://localhost:4000/uploads", logger.NewNoOpLogger())
	require.NoError(t, err)
	return store, dir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	require.NoError(t, filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			n++
		}
		return err
	}))
	return n
}

func validForm() wizard.Form {
	f := wizard.NewForm()
	f.FirstName = "Ama"
	f.LastName = "Mensah"
	f.Phone = "+233200000000"
	f.Email = "ama@example.com"
	f.City = "Kumasi"
	f.Region = "Ashanti"
	f.Pronouns = "she/her"
	f.Occupation = "Founder"
	f.BusinessName = "Cocoa Labs"
	f.Categories = []string{"Food & Beverage", "Manufacturing"}
	f.Phase = "prototype"
	f.Description = "We turn cocoa husks into affordable packaging for local food vendors across Ghana"
	f.ProductImage = &wizard.File{Name: "product.png", ContentType: "image/png", Content: []byte("png-bytes")}
	f.BankName = "GCB"
	f.AccountHolderName = "Ama Mensah"
	f.TransactionReference = "TX-1001"
	f.AmountPaid = "150.50"
	f.PaymentDate = "2026-03-01"
	f.PaymentReceipt = &wizard.File{Name: "receipt.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")}
	f.AgreedToTerms = true
	f.Signature = "Ama Mensah"
	return f
}

// multipartForm encodes f the way a browser would and parses it back
func multipartForm(t *testing.T, f wizard.Form) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	contentType, err := f.WriteMultipart(&buf)
	require.NoError(t, err)

	boundary := contentType[strings.Index(contentType, "boundary=")+len("boundary="):]
	form, err := multipart.NewReader(&buf, boundary).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

type recordingStats struct {
	mu          sync.Mutex
	invalidated int
}

func (r *recordingStats) Get(context.Context, interface{}) (bool, error) { return false, nil }
func (r *recordingStats) Set(context.Context, interface{}) error         { return nil }
func (r *recordingStats) Invalidate(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated++
	return nil
}

var _ cache.Stats = (*recordingStats)(nil)

type recordingNotifier struct {
	sent []uint64
	err  error
}

func (r *recordingNotifier) ApplicationReceived(_ context.Context, app *models.Application) error {
	r.sent = append(r.sent, app.ID)
	return r.err
}

// failingStore fails every Put after the first ok ones
type failingStore struct {
	storage.Store
	ok int
}

func (f *failingStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.ok == 0 {
		return "", io.ErrUnexpectedEOF
	}
	f.ok--
	return f.Store.Put(ctx, key, r, size, contentType)
}

func seedApplication(t *testing.T, db *gorm.DB, app models.Application) models.Application {
	t.Helper()
	if app.LastName == "" {
		app.LastName = "Doe"
	}
	if app.Email == "" {
		app.Email = strings.ToLower(app.FirstName) + "@example.com"
	}
	if app.Region == "" {
		app.Region = "Greater Accra"
	}
	if app.BusinessName == "" {
		app.BusinessName = app.FirstName + " Ventures"
	}
	if app.ReviewStatus == "" {
		app.ReviewStatus = models.ReviewPending
	}
	if app.HasCollaborators == "" {
		app.HasCollaborators = "no"
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = fixedNow.Add(-time.Hour)
	}
	if app.Categories == nil {
		app.Categories = models.StringList{"Technology"}
	}
	app.PaymentDate = datatypes.Date(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&app).Error)
	return app
}
