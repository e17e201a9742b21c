// application.go
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

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReviewStatus is the outcome recorded by an admin reviewer
type ReviewStatus string

// Review statuses
const (
	ReviewPending     ReviewStatus = "pending"
	ReviewApproved    ReviewStatus = "approved"
	ReviewRejected    ReviewStatus = "rejected"
	ReviewShortlisted ReviewStatus = "shortlisted"
)

// ReviewStatuses lists every valid status in display order
var ReviewStatuses = []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected, ReviewShortlisted}

// Valid reports whether s is a known review status
func (s ReviewStatus) Valid() bool {
	for _, known := range ReviewStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application is one submitted pitch application. Everything except the
// review metadata is written once, at creation.
type Application struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// Applicant
	FirstName    string  `gorm:"size:255;not null" json:"first_name"`
	LastName     string  `gorm:"size:255;not null" json:"last_name"`
	GuardianName *string `gorm:"size:255" json:"guardian_name"`
	Phone        string  `gorm:"size:64;not null" json:"phone"`
	Email        string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	City         string  `gorm:"size:255;not null" json:"city"`
	Region       string  `gorm:"size:128;not null;index" json:"region"`
	Pronouns     *string `gorm:"size:64" json:"pronouns"`
	Occupation   *string `gorm:"size:255" json:"occupation"`

	// Business
	BusinessName      string     `gorm:"size:255;not null" json:"business_name"`
	Website           *string    `gorm:"size:512" json:"website"`
	Categories        StringList `json:"categories"`
	Phase             *string    `gorm:"size:64" json:"phase"`
	HasCollaborators  string     `gorm:"size:8;not null;default:no" json:"has_collaborators"`
	CollaboratorNames *string    `gorm:"type:text" json:"collaborator_names"`
	Description       string     `gorm:"type:text;not null" json:"description"`

	// Files
	ProductImage   string `gorm:"size:1024;not null" json:"product_image"`
	PaymentReceipt string `gorm:"size:1024;not null" json:"payment_receipt"`

	// Payment attestation
	BankName             string         `gorm:"size:255;not null" json:"bank_name"`
	AccountHolderName    string         `gorm:"size:255;not null" json:"account_holder_name"`
	TransactionReference string         `gorm:"size:255;not null" json:"transaction_reference"`
	AmountPaid           float64        `gorm:"type:decimal(12,2);not null;default:0" json:"amount_paid"`
	PaymentDate          datatypes.Date `gorm:"not null" json:"payment_date"`

	// Consent
	AgreedToTerms bool   `gorm:"not null;default:false" json:"agreed_to_terms"`
	Signature     string `gorm:"size:255;not null" json:"signature"`

	// Review metadata
	Reviewed     bool         `gorm:"not null;default:false;index" json:"reviewed"`
	ReviewStatus ReviewStatus `gorm:"size:32;not null;default:pending;index" json:"review_status"`
	ReviewNotes  *string      `gorm:"type:text" json:"review_notes"`
	ReviewedBy   *string      `gorm:"size:255" json:"reviewed_by"`
	ReviewedAt   *time.Time   `json:"reviewed_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the table name for Application
func (Application) TableName() string {
	return "applications"
}

// BeforeSave stores timestamps in UTC so range queries compare consistently
func (a *Application) BeforeSave(tx *gorm.DB) error {
	if !a.CreatedAt.IsZero() {
		a.CreatedAt = a.CreatedAt.UTC()
	}
	if a.ReviewedAt != nil {
		reviewedAt := a.ReviewedAt.UTC()
		a.ReviewedAt = &reviewedAt
	}
	return nil
}

// ReviewColumns are the only columns an update may touch
var ReviewColumns = []string{"reviewed", "review_status", "review_notes", "reviewed_by", "reviewed_at"}
