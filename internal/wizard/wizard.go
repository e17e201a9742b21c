// wizard.go
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
	"fmt"
	"slices"
)

// Step is one page of the form
type Step int

// Form steps
const (
	StepPersonal Step = iota + 1
	StepBusiness
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "Personal Information"
	case StepBusiness:
		return "Business Details"
	case StepPayment:
		return "Description & Payment"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Valid reports whether s is one of the three steps
func (s Step) Valid() bool {
	return s >= StepPersonal && s <= StepPayment
}

// Wizard drives a Form through its steps. Errors shown to the user are
// those of the last validation and are cleared on every step change.
type Wizard struct {
	step      Step
	form      Form
	errors    Errors
	submitted bool
}

// New returns a wizard on the first step with a blank form
func New() *Wizard {
	return &Wizard{step: StepPersonal, form: NewForm(), errors: Errors{}}
}

// Step returns the current step
func (w *Wizard) Step() Step { return w.step }

// Form returns a copy of the form state
func (w *Wizard) Form() Form {
	f := w.form
	f.Categories = slices.Clone(w.form.Categories)
	return f
}

// Errors returns the current validation errors
func (w *Wizard) Errors() Errors {
	out := make(Errors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Submitted reports whether Submit succeeded
func (w *Wizard) Submitted() bool { return w.submitted }

// Update sets a field value and clears that field's error
func (w *Wizard) Update(field, value string) error {
	if err := w.form.Set(field, value); err != nil {
		return err
	}
	delete(w.errors, field)
	return nil
}

// ToggleCategory selects category, or deselects it when already selected
func (w *Wizard) ToggleCategory(category string) {
	if idx := slices.Index(w.form.Categories, category); idx >= 0 {
		w.form.Categories = slices.Delete(w.form.Categories, idx, idx+1)
	} else {
		w.form.Categories = append(w.form.Categories, category)
	}
	delete(w.errors, "categories")
}

// SetFile attaches file to productImage or paymentReceipt. An oversized file
// is rejected and the form is left untouched.
func (w *Wizard) SetFile(field string, file *File) error {
	if file != nil && file.Size > MaxFileSize {
		return fmt.Errorf("%w: %s exceeds 10MB", ErrFileTooLarge, file.Name)
	}

	switch field {
	case "productImage":
		w.form.ProductImage = file
	case "paymentReceipt":
		w.form.PaymentReceipt = file
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	delete(w.errors, field)
	return nil
}

// ValidateStep validates step and records the result as the current errors
func (w *Wizard) ValidateStep(step Step) Errors {
	w.errors = Validate(&w.form, step)
	return w.Errors()
}

// Next validates the current step and advances when it is valid
func (w *Wizard) Next() bool {
	if w.step >= StepPayment {
		return false
	}
	if !w.ValidateStep(w.step).Valid() {
		return false
	}
	w.setStep(w.step + 1)
	return true
}

// Prev moves back one step
func (w *Wizard) Prev() bool {
	if w.step <= StepPersonal {
		return false
	}
	w.setStep(w.step - 1)
	return true
}

func (w *Wizard) setStep(step Step) {
	w.step = step
	w.errors = Errors{}
}

// Submit validates the final step and marks the form submitted
func (w *Wizard) Submit() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if w.step != StepPayment {
		return ErrNotFinalStep
	}
	if errs := w.ValidateStep(StepPayment); !errs.Valid() {
		return fmt.Errorf("%w: %d field(s)", ErrStepInvalid, len(errs))
	}
	w.submitted = true
	return nil
}

// Reset returns to the first step with a blank form
func (w *Wizard) Reset() {
	w.form = NewForm()
	w.submitted = false
	w.setStep(StepPersonal)
}
