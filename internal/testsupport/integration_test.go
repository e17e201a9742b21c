// integration_test.go
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

package testsupport_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/pitch2angels/portal/internal/cache"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/database"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/notify"
	"github.com/pitch2angels/portal/internal/services"
	"github.com/pitch2angels/portal/internal/storage"
	"github.com/pitch2angels/portal/internal/testsupport"
	"github.com/pitch2angels/portal/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, f wizard.Form) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	contentType, err := f.WriteMultipart(&buf)
	require.NoError(t, err)
	boundary := contentType[strings.Index(contentType, "boundary=")+len("boundary="):]
	form, err := multipart.NewReader(&buf, boundary).ReadForm(32 << 20)
	require.NoError(t, err)
	return form
}

func application(email string) wizard.Form {
	f := wizard.NewForm()
	f.FirstName, f.LastName = "Abena", "Owusu"
	f.Phone, f.Email = "+233550000000", email
	f.City, f.Region = "Tamale", "Northern"
	f.BusinessName = "Shea Collective"
	f.Categories = []string{"Beauty", "Manufacturing"}
	f.Description = "Women owned cooperative processing shea butter for export and local cosmetics brands"
	f.BankName, f.AccountHolderName = "Stanbic", "Abena Owusu"
	f.TransactionReference, f.AmountPaid, f.PaymentDate = "TX-3003", "120.00", "2026-03-04"
	f.AgreedToTerms, f.Signature = true, "Abena Owusu"
	f.ProductImage = &wizard.File{Name: "shea.gif", ContentType: "image/gif", Content: []byte("GIF89a")}
	f.PaymentReceipt = &wizard.File{Name: "receipt.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")}
	return f
}

// TestWithPostgres runs submission, review and statistics against real Postgres and Redis containers
func TestWithPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containers, err := testsupport.Start(ctx, t, testsupport.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { containers.Terminate(t) })

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            containers.DBHost,
		DBPort:            containers.DBPort,
		DBDatabase:        containers.Options.DBName,
		DBUser:            containers.Options.DBUser,
		DBPassword:        containers.Options.DBPassword,
		DBConnectionLimit: 5,
		DBLogLevel:        "warn",
		RedisAddr:         containers.RedisAddr,
	}
	log := logger.NewTestLogger(t)

	db, err := database.Connect(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))

	rdb := database.NewRedis(cfg)
	require.NotNil(t, rdb)
	require.NoError(t, database.PingRedis(ctx, rdb))
	stats := cache.NewStats(rdb, time.Minute)

	store, err := storage.NewFS(t.TempDir(), "http://localhost:4000/uploads", log)
	require.NoError(t, err)

	submissions := &services.SubmissionService{
		DB: db, Store: store, Stats: stats, Notifier: notify.Noop{}, Log: log, Prefix: "pitch2angels",
	}
	admin := &services.AdminService{DB: db, Store: store, Stats: stats, Log: log}

	app, err := submissions.Submit(ctx, encode(t, application("abena@example.com")))
	require.NoError(t, err)
	assert.InDelta(t, 120.0, app.AmountPaid, 0.001)

	_, err = submissions.Submit(ctx, encode(t, application("ABENA@example.com")))
	assert.ErrorIs(t, err, services.ErrDuplicate)

	first, err := admin.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Total)
	assert.Equal(t, []services.RegionCount{{Region: "Northern", Count: 1}}, first.ByRegion)

	review, err := services.ParseReview([]byte(`{"reviewed":true,"review_status":"approved"}`))
	require.NoError(t, err)
	reviewed, err := admin.UpdateReview(ctx, app.ID, review)
	require.NoError(t, err)
	assert.True(t, reviewed.Reviewed)

	list, err := admin.List(ctx, services.ListQuery{Status: "approved", Search: "SHEA"})
	require.NoError(t, err)
	require.Len(t, list.Applications, 1)
	assert.Equal(t, app.ID, list.Applications[0].ID)

	after, err := admin.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, after.ByStatus.Approved)
	assert.Zero(t, after.ByStatus.Pending)

	require.NoError(t, admin.Delete(ctx, app.ID))
	_, err = admin.Get(ctx, app.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
