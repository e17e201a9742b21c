// validate.go
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

package wizard

import (
	"regexp"
	"strconv"
	"strings"
)

// EmailPattern is the accepted email shape
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a form field name to its validation message
type Errors map[string]string

// Valid reports whether there are no errors
func (e Errors) Valid() bool {
	return len(e) == 0
}

func required(errs Errors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}

func checkFile(errs Errors, field string, file *File, missing, tooLarge string) {
	if file == nil {
		errs[field] = missing
	} else if file.Size > MaxFileSize {
		errs[field] = tooLarge
	}
}

// Validate checks the fields that belong to step
func Validate(f *Form, step Step) Errors {
	errs := Errors{}

	switch step {
	case StepPersonal:
		required(errs, "firstName", f.FirstName, "First name is required")
		required(errs, "lastName", f.LastName, "Last name is required")
		required(errs, "phone", f.Phone, "Phone number is required")
		if strings.TrimSpace(f.Email) == "" {
			errs["email"] = "Email is required"
		} else if !EmailPattern.MatchString(f.Email) {
			errs["email"] = "Invalid email format"
		}
		required(errs, "city", f.City, "City is required")
		required(errs, "region", f.Region, "Region is required")
		required(errs, "pronouns", f.Pronouns, "Pronouns are required")
		required(errs, "occupation", f.Occupation, "Occupation is required")

	case StepBusiness:
		required(errs, "businessName", f.BusinessName, "Business name is required")
		if len(f.Categories) == 0 {
			errs["categories"] = "Select at least one category"
		}
		required(errs, "phase", f.Phase, "Business phase is required")
		required(errs, "hasCollaborators", f.HasCollaborators, "This field is required")
		if f.HasCollaborators == CollaboratorsYes && strings.TrimSpace(f.CollaboratorNames) == "" {
			errs["collaboratorNames"] = "Collaborator names are required"
		}

	case StepPayment:
		if strings.TrimSpace(f.Description) == "" {
			errs["description"] = "Description is required"
		} else if len(strings.Fields(f.Description)) < 10 {
			errs["description"] = "Description should be at least 10 words"
		}
		checkFile(errs, "productImage", f.ProductImage, "Product image is required", "Image size should not exceed 10MB")
		required(errs, "bankName", f.BankName, "Bank name is required")
		required(errs, "accountHolderName", f.AccountHolderName, "Account holder name is required")
		required(errs, "transactionReference", f.TransactionReference, "Transaction reference is required")
		if f.AmountPaid == "" {
			errs["amountPaid"] = "Amount paid is required"
		} else if amount, err := strconv.ParseFloat(strings.TrimSpace(f.AmountPaid), 64); err != nil || amount <= 0 {
			errs["amountPaid"] = "Amount must be greater than 0"
		}
		required(errs, "paymentDate", f.PaymentDate, "Payment date is required")
		checkFile(errs, "paymentReceipt", f.PaymentReceipt, "Payment receipt is required", "File size should not exceed 10MB")
		if !f.AgreedToTerms {
			errs["agreedToTerms"] = "You must agree to the terms"
		}
		required(errs, "signature", f.Signature, "Digital signature is required")
	}

	return errs
}
