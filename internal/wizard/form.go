// form.go
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

// Package wizard holds the three-step application form: the form state,
// per step validation and the multipart encoding used to submit it.
package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pitch2angels/portal/internal/types"
)

// MaxFileSize is the largest attachment the form accepts
const MaxFileSize int64 = 10 * 1024 * 1024

// Collaborator answers
const (
	CollaboratorsNo  = "no"
	CollaboratorsYes = "yes"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnknownField     = errors.New("unknown form field")
	ErrNotFinalStep     = errors.New("submit is only allowed from the final step")
	ErrStepInvalid      = errors.New("step has validation errors")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// File is an attachment picked in the form. Content may be empty when only
// the metadata is validated.
type File struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
}

// Form is the in-memory state of one application
type Form struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	GuardianName string `json:"guardianName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Pronouns     string `json:"pronouns"`
	Occupation   string `json:"occupation"`

	BusinessName      string                 `json:"businessName"`
	Website           string                 `json:"website"`
	Categories        types.FlexList[string] `json:"categories"`
	Phase             string                 `json:"phase"`
	HasCollaborators  string                 `json:"hasCollaborators"`
	CollaboratorNames string                 `json:"collaboratorNames"`

	Description          string `json:"description"`
	ProductImage         *File  `json:"productImage,omitempty"`
	BankName             string `json:"bankName"`
	AccountHolderName    string `json:"accountHolderName"`
	TransactionReference string `json:"transactionReference"`
	AmountPaid           string `json:"amountPaid"`
	PaymentDate          string `json:"paymentDate"`
	PaymentReceipt       *File  `json:"paymentReceipt,omitempty"`
	AgreedToTerms        bool   `json:"agreedToTerms"`
	Signature            string `json:"signature"`
}

// NewForm returns a blank form with its defaults applied
func NewForm() Form {
	return Form{HasCollaborators: CollaboratorsNo, Categories: types.FlexList[string]{}}
}

// textFields lists the plain text fields in submission order
var textFields = []string{
	"firstName", "lastName", "guardianName", "phone", "email", "city", "region",
	"pronouns", "occupation", "businessName", "website", "phase", "hasCollaborators",
	"collaboratorNames", "description", "bankName", "accountHolderName",
	"transactionReference", "amountPaid", "paymentDate", "signature",
}

func (f *Form) text(field string) *string {
	switch field {
	case "firstName":
		return &f.FirstName
	case "lastName":
		return &f.LastName
	case "guardianName":
		return &f.GuardianName
	case "phone":
		return &f.Phone
	case "email":
		return &f.Email
	case "city":
		return &f.City
	case "region":
		return &f.Region
	case "pronouns":
		return &f.Pronouns
	case "occupation":
		return &f.Occupation
	case "businessName":
		return &f.BusinessName
	case "website":
		return &f.Website
	case "phase":
		return &f.Phase
	case "hasCollaborators":
		return &f.HasCollaborators
	case "collaboratorNames":
		return &f.CollaboratorNames
	case "description":
		return &f.Description
	case "bankName":
		return &f.BankName
	case "accountHolderName":
		return &f.AccountHolderName
	case "transactionReference":
		return &f.TransactionReference
	case "amountPaid":
		return &f.AmountPaid
	case "paymentDate":
		return &f.PaymentDate
	case "signature":
		return &f.Signature
	}
	return nil
}

// Set assigns a text field or agreedToTerms by its form name
func (f *Form) Set(field, value string) error {
	if field == "agreedToTerms" {
		agreed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("agreedToTerms: %w", err)
		}
		f.AgreedToTerms = agreed
		return nil
	}

	ptr := f.text(field)
	if ptr == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	*ptr = value
	return nil
}

// Get returns a text field by its form name
func (f *Form) Get(field string) (string, bool) {
	if field == "agreedToTerms" {
		return strconv.FormatBool(f.AgreedToTerms), true
	}
	ptr := f.text(field)
	if ptr == nil {
		return "", false
	}
	return *ptr, true
}

// HasCategory reports whether category is selected
func (f *Form) HasCategory(category string) bool {
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}
