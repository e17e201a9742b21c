// admin.go
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
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pitch2angels/portal/internal/cache"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/metrics"
	"github.com/pitch2angels/portal/internal/models"
	"github.com/pitch2angels/portal/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// Listing defaults and bounds
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// sortColumns are the columns a listing may be ordered by
var sortColumns = map[string]bool{
	"id": true, "first_name": true, "last_name": true, "email": true, "phone": true,
	"city": true, "region": true, "business_name": true, "phase": true,
	"amount_paid": true, "transaction_reference": true, "bank_name": true,
	"payment_date": true, "created_at": true, "reviewed": true,
	"review_status": true, "reviewed_at": true, "reviewed_by": true,
}

// ListQuery filters and pages the admin listing
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Region    string
	Status    string
	SortBy    string
	SortOrder string
}

// Normalize clamps paging and falls back to the default ordering
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	q.Limit = min(max(q.Limit, 1), MaxLimit)
	if !sortColumns[q.SortBy] {
		q.SortBy = "created_at"
	}
	if q.SortOrder = strings.ToLower(q.SortOrder); q.SortOrder != "asc" {
		q.SortOrder = "desc"
	}
}

// Pagination describes one page of a listing
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ApplicationList is one page of applications
type ApplicationList struct {
	Applications []models.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}

// RegionCount is the number of applications from one region
type RegionCount struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// StatusCounts splits applications by review outcome
type StatusCounts struct {
	Pending     int64 `json:"pending"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
	Shortlisted int64 `json:"shortlisted"`
}

// DayCount is the number of applications created on one date
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Statistics summarises all applications
type Statistics struct {
	Total    int64         `json:"total"`
	Today    int64         `json:"today"`
	ByRegion []RegionCount `json:"byRegion"`
	ByStatus StatusCounts  `json:"byStatus"`
	Recent   []DayCount    `json:"recent"`
}

// ExportHeaders is the header row of the CSV export
var ExportHeaders = []string{
	"ID", "First Name", "Last Name", "Email", "Phone", "City", "Region",
	"Business Name", "Categories", "Phase", "Amount Paid", "Transaction Reference",
	"Bank Name", "Payment Date", "Created At", "Reviewed", "Review Status", "Reviewed At",
}

// AdminService backs the review endpoints
type AdminService struct {
	DB    *gorm.DB
	Store storage.Store
	Stats cache.Stats
	Log   logger.Logger
	Now   func() time.Time
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AdminService) filtered(ctx context.Context, q ListQuery) *gorm.DB {
	tx := s.DB.WithContext(ctx).Model(&models.Application{})

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(business_name) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if q.Region != "" {
		tx = tx.Where("region = ?", q.Region)
	}

	switch status := models.ReviewStatus(q.Status); {
	case q.Status == "reviewed":
		tx = tx.Where("reviewed = ?", true)
	case status == models.ReviewPending:
		tx = tx.Where("reviewed = ?", false)
	case status.Valid():
		tx = tx.Where("reviewed = ? AND review_status = ?", true, status)
	}

	return tx
}

// List returns one filtered, sorted page of applications
func (s *AdminService) List(ctx context.Context, q ListQuery) (*ApplicationList, error) {
	q.Normalize()

	var total int64
	if err := s.filtered(ctx, q).Clauses(hints.CommentBefore("select", "admin_list_count")).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	applications := []models.Application{}
	err := s.filtered(ctx, q).
		Clauses(hints.CommentBefore("select", "admin_list")).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.SortOrder == "desc"}).
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &ApplicationList{
		Applications: applications,
		Pagination: Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(q.Limit))),
		},
	}, nil
}

// Get loads one application
func (s *AdminService) Get(ctx context.Context, id uint64) (*models.Application, error) {
	return Get(ctx, s.DB, id)
}

// UpdateReview writes the review metadata of one application. No other
// column is ever touched.
func (s *AdminService) UpdateReview(ctx context.Context, id uint64, review *ReviewUpdate) (*models.Application, error) {
	updates := review.Changes(s.now().UTC())
	if len(updates) == 0 {
		return nil, ErrNoUpdates
	}

	var app models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&app).Select(models.ReviewColumns).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&app, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	metrics.ReviewsTotal.WithLabelValues(string(app.ReviewStatus)).Inc()
	s.Log.Info("application reviewed", logger.Fields{
		"application_id": app.ID,
		"reviewed":       app.Reviewed,
		"review_status":  app.ReviewStatus,
	})
	s.invalidate(ctx)

	return &app, nil
}

// Delete removes an application and, best effort, its uploaded files
func (s *AdminService) Delete(ctx context.Context, id uint64) error {
	app, err := Get(ctx, s.DB, id)
	if err != nil {
		return err
	}

	result := s.DB.WithContext(ctx).Delete(&models.Application{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	for _, url := range []string{app.ProductImage, app.PaymentReceipt} {
		key, ok := s.Store.KeyFromURL(url)
		if !ok {
			continue
		}
		if err := s.Store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			s.Log.Warn("failed to delete application file", logger.Fields{
				"application_id": id,
				"key":            key,
				"error":          err,
			})
		}
	}

	s.Log.Info("application deleted", logger.Fields{"application_id": id})
	s.invalidate(ctx)
	return nil
}

func (s *AdminService) invalidate(ctx context.Context) {
	if err := s.Stats.Invalidate(ctx); err != nil {
		s.Log.Warn("failed to invalidate statistics cache", logger.Fields{"error": err})
	}
}

// Statistics returns the dashboard summary, from the cache when it is fresh
func (s *AdminService) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	found, err := s.Stats.Get(ctx, &stats)
	if err != nil {
		s.Log.Warn("statistics cache unavailable", logger.Fields{"error": err})
	}
	if found {
		return &stats, nil
	}

	computed, err := s.computeStatistics(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Stats.Set(ctx, computed); err != nil {
		s.Log.Warn("failed to cache statistics", logger.Fields{"error": err})
	}
	return computed, nil
}

func (s *AdminService) computeStatistics(ctx context.Context) (*Statistics, error) {
	db := s.DB.WithContext(ctx).Model(&models.Application{}).Clauses(hints.CommentBefore("select", "admin_statistics"))
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats := &Statistics{ByRegion: []RegionCount{}, Recent: []DayCount{}}

	if err := db.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ? AND created_at < ?", today, today.AddDate(0, 0, 1)).
		Count(&stats.Today).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's applications: %w", err)
	}

	if err := db.Session(&gorm.Session{}).
		Select("region, COUNT(*) AS count").
		Group("region").
		Order("count DESC").Order("region").
		Scan(&stats.ByRegion).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications by region: %w", err)
	}

	statusCounts := []struct {
		dest   *int64
		status models.ReviewStatus
	}{
		{&stats.ByStatus.Approved, models.ReviewApproved},
		{&stats.ByStatus.Rejected, models.ReviewRejected},
		{&stats.ByStatus.Shortlisted, models.ReviewShortlisted},
	}
	if err := db.Session(&gorm.Session{}).Where("reviewed = ?", false).Count(&stats.ByStatus.Pending).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending applications: %w", err)
	}
	for _, sc := range statusCounts {
		if err := db.Session(&gorm.Session{}).
			Where("reviewed = ? AND review_status = ?", true, sc.status).
			Count(sc.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s applications: %w", sc.status, err)
		}
	}

	var created []time.Time
	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", today.AddDate(0, 0, -7)).
		Pluck("created_at", &created).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent applications: %w", err)
	}
	stats.Recent = bucketByDay(created)

	return stats, nil
}

// bucketByDay counts timestamps per UTC date, newest date first
func bucketByDay(times []time.Time) []DayCount {
	counts := map[string]int64{}
	for _, t := range times {
		counts[t.UTC().Format(time.DateOnly)]++
	}

	days := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DayCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days
}

// Export writes every application as CSV, newest first
func (s *AdminService) Export(ctx context.Context, w io.Writer) error {
	var applications []models.Application
	if err := s.DB.WithContext(ctx).
		Clauses(hints.CommentBefore("select", "admin_export")).
		Order("created_at DESC").Order("id DESC").
		Find(&applications).Error; err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeaders); err != nil {
		return err
	}
	for i := range applications {
		if err := cw.Write(exportRow(&applications[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(app *models.Application) []string {
	reviewedAt := ""
	if app.ReviewedAt != nil {
		reviewedAt = app.ReviewedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		strconv.FormatUint(app.ID, 10),
		app.FirstName,
		app.LastName,
		app.Email,
		app.Phone,
		app.City,
		app.Region,
		app.BusinessName,
		strings.Join(app.Categories, ", "),
		deref(app.Phase),
		strconv.FormatFloat(app.AmountPaid, 'f', 2, 64),
		app.TransactionReference,
		app.BankName,
		time.Time(app.PaymentDate).Format(time.DateOnly),
		app.CreatedAt.UTC().Format(time.RFC3339),
		strconv.FormatBool(app.Reviewed),
		string(app.ReviewStatus),
		reviewedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
