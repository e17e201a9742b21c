// review.go
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
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pitch2angels/portal/data"
	"github.com/pitch2angels/portal/internal/models"
	"github.com/pitch2angels/portal/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

// DefaultReviewer is recorded when a review does not name its reviewer
const DefaultReviewer = "admin"

// ReviewUpdate is a parsed admin review request. Absent fields are left unchanged.
type ReviewUpdate struct {
	Reviewed     types.FlexBool
	ReviewStatus *models.ReviewStatus
	NotesSet     bool
	ReviewNotes  *string
	ReviewedBy   string
}

var (
	reviewSchemaOnce sync.Once
	reviewSchema     *gojsonschema.Schema
	reviewSchemaErr  error
)

func loadReviewSchema() (*gojsonschema.Schema, error) {
	reviewSchemaOnce.Do(func() {
		reviewSchema, reviewSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(data.ReviewSchema))
	})
	return reviewSchema, reviewSchemaErr
}

// ParseReview validates body against the review schema and decodes it
func ParseReview(body []byte) (*ReviewUpdate, error) {
	schema, err := loadReviewSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to load review schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &SchemaError{Violations: []string{err.Error()}}
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			violations = append(violations, e.String())
		}
		return nil, &SchemaError{Violations: violations}
	}

	var raw struct {
		Reviewed     types.FlexBool  `json:"reviewed"`
		ReviewStatus string          `json:"review_status"`
		ReviewNotes  json.RawMessage `json:"review_notes"`
		ReviewedBy   string          `json:"reviewed_by"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &SchemaError{Violations: []string{err.Error()}}
	}

	update := &ReviewUpdate{Reviewed: raw.Reviewed, ReviewedBy: CleanText(raw.ReviewedBy)}
	if update.ReviewedBy == "" {
		update.ReviewedBy = DefaultReviewer
	}

	if raw.ReviewStatus != "" {
		status := models.ReviewStatus(raw.ReviewStatus)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, raw.ReviewStatus)
		}
		update.ReviewStatus = &status
	}

	if len(raw.ReviewNotes) > 0 {
		update.NotesSet = true
		if string(raw.ReviewNotes) != "null" {
			var notes string
			if err := json.Unmarshal(raw.ReviewNotes, &notes); err != nil {
				return nil, &SchemaError{Violations: []string{err.Error()}}
			}
			update.ReviewNotes = &notes
		}
	}

	return update, nil
}

// Changes returns the column updates for this review. Marking an application
// reviewed also stamps the reviewer and the review time.
func (r *ReviewUpdate) Changes(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{}

	if r.Reviewed.Set {
		updates["reviewed"] = r.Reviewed.Value
		if r.Reviewed.Value {
			updates["reviewed_at"] = now
			updates["reviewed_by"] = r.ReviewedBy
		}
	}
	if r.ReviewStatus != nil {
		updates["review_status"] = string(*r.ReviewStatus)
	}
	if r.NotesSet {
		updates["review_notes"] = r.ReviewNotes
	}

	return updates
}
