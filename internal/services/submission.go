// submission.go
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
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pitch2angels/portal/internal/cache"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/metrics"
	"github.com/pitch2angels/portal/internal/models"
	"github.com/pitch2angels/portal/internal/notify"
	"github.com/pitch2angels/portal/internal/storage"
	"github.com/pitch2angels/portal/internal/wizard"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequiredFields must be non-empty on every submission
var RequiredFields = []string{
	"firstName", "lastName", "email", "phone",
	"city", "region", "businessName", "description",
	"amountPaid", "transactionReference", "bankName",
	"accountHolderName", "paymentDate", "signature",
}

var allowedTypes = regexp.MustCompile(`jpeg|jpg|png|gif|pdf`)

// nonPrintable matches everything outside printable ASCII, tab, LF and CR
var nonPrintable = regexp.MustCompile(`[^\x20-\x7E\t\n\r]`)

// SubmissionService turns a multipart application into a stored row
type SubmissionService struct {
	DB          *gorm.DB
	Store       storage.Store
	Stats       cache.Stats
	Notifier    notify.Notifier
	Log         logger.Logger
	Prefix      string
	MaxFileSize int64
	Now         func() time.Time
}

func (s *SubmissionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SubmissionService) maxFileSize() int64 {
	if s.MaxFileSize > 0 {
		return s.MaxFileSize
	}
	return wizard.MaxFileSize
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func formFile(form *multipart.Form, key string) *multipart.FileHeader {
	if files := form.File[key]; len(files) > 0 {
		return files[0]
	}
	return nil
}

// CleanText strips characters outside printable ASCII (keeping tab, LF, CR) and trims
func CleanText(text string) string {
	return strings.TrimSpace(nonPrintable.ReplaceAllString(text, ""))
}

func optional(text string) *string {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// ParseCategories decodes the JSON array sent for categories. Anything else yields an empty list.
func ParseCategories(raw string) []string {
	categories := []string{}
	if raw == "" {
		return categories
	}
	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil || decoded == nil {
		return categories
	}
	for _, c := range decoded {
		if c = CleanText(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

// Validate runs the request level checks, failing on the first rule broken
func (s *SubmissionService) Validate(form *multipart.Form) error {
	var missing []string
	for _, field := range RequiredFields {
		if strings.TrimSpace(formValue(form, field)) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !wizard.EmailPattern.MatchString(formValue(form, "email")) {
		return ErrInvalidEmail
	}

	product, receipt := formFile(form, "productImage"), formFile(form, "paymentReceipt")
	if product == nil || receipt == nil {
		return ErrMissingFiles
	}
	for _, fh := range []*multipart.FileHeader{product, receipt} {
		if err := s.checkFile(fh); err != nil {
			return err
		}
	}

	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(formValue(form, "paymentDate"))); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, formValue(form, "paymentDate"))
	}

	return nil
}

func (s *SubmissionService) checkFile(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedTypes.MatchString(ext) || !allowedTypes.MatchString(fh.Header.Get("Content-Type")) {
		return fmt.Errorf("%w: %s", ErrInvalidFile, fh.Filename)
	}
	if fh.Size > s.maxFileSize() {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
	}
	return nil
}

// Build maps the cleaned form values onto a new Application
func Build(form *multipart.Form) models.Application {
	amount, err := strconv.ParseFloat(strings.TrimSpace(formValue(form, "amountPaid")), 64)
	if err != nil {
		amount = 0
	}
	paymentDate, _ := time.Parse(time.DateOnly, strings.TrimSpace(formValue(form, "paymentDate")))

	hasCollaborators := CleanText(formValue(form, "hasCollaborators"))
	if hasCollaborators == "" {
		hasCollaborators = wizard.CollaboratorsNo
	}

	return models.Application{
		FirstName:            CleanText(formValue(form, "firstName")),
		LastName:             CleanText(formValue(form, "lastName")),
		GuardianName:         optional(formValue(form, "guardianName")),
		Phone:                CleanText(formValue(form, "phone")),
		Email:                CleanText(strings.ToLower(formValue(form, "email"))),
		City:                 CleanText(formValue(form, "city")),
		Region:               CleanText(formValue(form, "region")),
		Pronouns:             optional(formValue(form, "pronouns")),
		Occupation:           optional(formValue(form, "occupation")),
		BusinessName:         CleanText(formValue(form, "businessName")),
		Website:              optional(formValue(form, "website")),
		Categories:           models.StringList(ParseCategories(formValue(form, "categories"))),
		Phase:                optional(formValue(form, "phase")),
		HasCollaborators:     hasCollaborators,
		CollaboratorNames:    optional(formValue(form, "collaboratorNames")),
		Description:          CleanText(formValue(form, "description")),
		BankName:             CleanText(formValue(form, "bankName")),
		AccountHolderName:    CleanText(formValue(form, "accountHolderName")),
		TransactionReference: CleanText(formValue(form, "transactionReference")),
		AmountPaid:           amount,
		PaymentDate:          datatypes.Date(paymentDate),
		AgreedToTerms:        formValue(form, "agreedToTerms") == "true",
		Signature:            CleanText(formValue(form, "signature")),
		ReviewStatus:         models.ReviewPending,
	}
}

func (s *SubmissionService) upload(ctx context.Context, fh *multipart.FileHeader, folder, stem string) (string, string, error) {
	key := storage.Key(s.Prefix, folder, stem, fh.Filename, s.now())

	file, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer file.Close()

	url, err := s.Store.Put(ctx, key, file, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	metrics.UploadBytes.WithLabelValues(stem).Observe(float64(fh.Size))

	return key, url, nil
}

// removeBlobs deletes uploaded objects after a failed submission
func (s *SubmissionService) removeBlobs(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.Store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			s.Log.Warn("failed to remove uploaded file", logger.Fields{"key": key, "error": err})
		}
	}
}

// Submit validates form, uploads both attachments and inserts the application.
// Uploaded files are removed again when the insert fails.
func (s *SubmissionService) Submit(ctx context.Context, form *multipart.Form) (*models.Application, error) {
	start := s.now()
	defer func() {
		metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	}()

	if err := s.Validate(form); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	app := Build(form)

	productKey, productURL, err := s.upload(ctx, formFile(form, "productImage"), "products", "product")
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, err
	}
	receiptKey, receiptURL, err := s.upload(ctx, formFile(form, "paymentReceipt"), "receipts", "receipt")
	if err != nil {
		s.removeBlobs(ctx, productKey)
		metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, err
	}
	app.ProductImage = productURL
	app.PaymentReceipt = receiptURL

	if err := s.DB.WithContext(ctx).Create(&app).Error; err != nil {
		s.removeBlobs(ctx, productKey, receiptKey)
		err = translateWriteError(err)
		if errors.Is(err, ErrDuplicate) {
			metrics.SubmissionsTotal.WithLabelValues(metrics.ResultDuplicate).Inc()
		} else {
			metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		}
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.ResultCreated).Inc()
	s.Log.Info("application submitted", logger.Fields{
		"application_id": app.ID,
		"duration_ms":    time.Since(start).Milliseconds(),
	})

	if err := s.Stats.Invalidate(ctx); err != nil {
		s.Log.Warn("failed to invalidate statistics cache", logger.Fields{"error": err})
	}
	if err := s.Notifier.ApplicationReceived(ctx, &app); err != nil {
		s.Log.Warn("failed to send confirmation email", logger.Fields{
			"application_id": app.ID,
			"error":          err,
		})
	}

	return &app, nil
}

// Get loads one application by id
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Application, error) {
	var app models.Application
	if err := db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}
