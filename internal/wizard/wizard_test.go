// wizard_test.go
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
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() Form {
	f := NewForm()
	f.FirstName = "Ama"
	f.LastName = "Mensah"
	f.Phone = "+233200000000"
	f.Email = "ama@example.com"
	f.City = "Kumasi"
	f.Region = "Ashanti"
	f.Pronouns = "she/her"
	f.Occupation = "Founder"
	f.BusinessName = "Cocoa Labs"
	f.Categories = []string{"Food & Beverage"}
	f.Phase = "prototype"
	f.Description = "We turn cocoa husks into affordable packaging for local food vendors across Ghana"
	f.ProductImage = &File{Name: "product.png", Size: 4, ContentType: "image/png", Content: []byte("png!")}
	f.BankName = "GCB"
	f.AccountHolderName = "Ama Mensah"
	f.TransactionReference = "TX-1"
	f.AmountPaid = "150.00"
	f.PaymentDate = "2026-01-15"
	f.PaymentReceipt = &File{Name: "receipt.pdf", Size: 3, ContentType: "application/pdf", Content: []byte("pdf")}
	f.AgreedToTerms = true
	f.Signature = "Ama Mensah"
	return f
}

func TestNew(t *testing.T) {
	w := New()
	assert.Equal(t, StepPersonal, w.Step())
	assert.Equal(t, CollaboratorsNo, w.Form().HasCollaborators)
	assert.Empty(t, w.Errors())
	assert.False(t, w.Submitted())
}

func TestValidate_StepPersonal(t *testing.T) {
	f := NewForm()
	errs := Validate(&f, StepPersonal)
	assert.Len(t, errs, 8)
	assert.Equal(t, "Email is required", errs["email"])

	f = completeForm()
	f.Email = "not-an-email"
	errs = Validate(&f, StepPersonal)
	assert.Equal(t, Errors{"email": "Invalid email format"}, errs)

	f.Email = "ama@example.com"
	assert.True(t, Validate(&f, StepPersonal).Valid())
}

func TestValidate_StepBusiness(t *testing.T) {
	f := completeForm()
	f.Categories = nil
	f.HasCollaborators = CollaboratorsYes
	errs := Validate(&f, StepBusiness)
	assert.Equal(t, "Select at least one category", errs["categories"])
	assert.Equal(t, "Collaborator names are required", errs["collaboratorNames"])

	f.Categories = []string{"Other"}
	f.CollaboratorNames = "Kofi"
	assert.True(t, Validate(&f, StepBusiness).Valid())
}

func TestValidate_StepPayment(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Form)
		field   string
		message string
	}{
		{"short description", func(f *Form) { f.Description = "too short" }, "description", "Description should be at least 10 words"},
		{"missing image", func(f *Form) { f.ProductImage = nil }, "productImage", "Product image is required"},
		{"large image", func(f *Form) { f.ProductImage.Size = MaxFileSize + 1 }, "productImage", "Image size should not exceed 10MB"},
		{"zero amount", func(f *Form) { f.AmountPaid = "0" }, "amountPaid", "Amount must be greater than 0"},
		{"bad amount", func(f *Form) { f.AmountPaid = "abc" }, "amountPaid", "Amount must be greater than 0"},
		{"missing receipt", func(f *Form) { f.PaymentReceipt = nil }, "paymentReceipt", "Payment receipt is required"},
		{"terms", func(f *Form) { f.AgreedToTerms = false }, "agreedToTerms", "You must agree to the terms"},
		{"signature", func(f *Form) { f.Signature = "  " }, "signature", "Digital signature is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeForm()
			tt.mutate(&f)
			errs := Validate(&f, StepPayment)
			assert.Equal(t, Errors{tt.field: tt.message}, errs)
		})
	}
}

func TestWizard_Navigation(t *testing.T) {
	w := New()
	assert.False(t, w.Next())
	assert.Equal(t, StepPersonal, w.Step())
	assert.NotEmpty(t, w.Errors())

	full := completeForm()
	for _, field := range []string{"firstName", "lastName", "phone", "email", "city", "region", "pronouns", "occupation"} {
		value, _ := full.Get(field)
		require.NoError(t, w.Update(field, value))
	}
	assert.Empty(t, w.Errors())
	assert.True(t, w.Next())
	assert.Equal(t, StepBusiness, w.Step())

	assert.True(t, w.Prev())
	assert.Equal(t, StepPersonal, w.Step())
	assert.False(t, w.Prev())

	assert.True(t, w.Next())
	require.NoError(t, w.Update("businessName", "Cocoa Labs"))
	require.NoError(t, w.Update("phase", "idea"))
	assert.False(t, w.Next())
	assert.Contains(t, w.Errors(), "categories")

	w.ToggleCategory("Technology")
	assert.NotContains(t, w.Errors(), "categories")
	assert.True(t, w.Next())
	assert.Equal(t, StepPayment, w.Step())
	assert.False(t, w.Next())
	assert.Equal(t, StepPayment, w.Step())
}

func TestWizard_ToggleCategory(t *testing.T) {
	w := New()
	w.ToggleCategory("Beauty")
	w.ToggleCategory("Fitness")
	w.ToggleCategory("Beauty")
	assert.Equal(t, []string{"Fitness"}, w.Form().Categories.Slice())

	f := w.Form()
	assert.True(t, f.HasCategory("Fitness"))
	assert.False(t, f.HasCategory("Beauty"))
}

func TestWizard_SetFile(t *testing.T) {
	w := New()
	err := w.SetFile("productImage", &File{Name: "huge.png", Size: MaxFileSize + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Nil(t, w.Form().ProductImage)

	require.NoError(t, w.SetFile("productImage", &File{Name: "ok.png", Size: 10}))
	assert.Equal(t, "ok.png", w.Form().ProductImage.Name)

	assert.ErrorIs(t, w.SetFile("avatar", &File{Name: "a.png"}), ErrUnknownField)
	assert.ErrorIs(t, w.Update("nickname", "x"), ErrUnknownField)
}

func TestWizard_SubmitAndReset(t *testing.T) {
	w := New()
	assert.ErrorIs(t, w.Submit(), ErrNotFinalStep)

	w.form = completeForm()
	require.True(t, w.Next())
	require.True(t, w.Next())

	require.NoError(t, w.Update("signature", ""))
	assert.ErrorIs(t, w.Submit(), ErrStepInvalid)
	assert.Contains(t, w.Errors(), "signature")

	require.NoError(t, w.Update("signature", "Ama Mensah"))
	require.NoError(t, w.Submit())
	assert.True(t, w.Submitted())
	assert.ErrorIs(t, w.Submit(), ErrAlreadySubmitted)

	w.Reset()
	assert.Equal(t, StepPersonal, w.Step())
	assert.False(t, w.Submitted())
	assert.Equal(t, NewForm(), w.Form())
}

func TestForm_WriteMultipart(t *testing.T) {
	f := completeForm()
	f.Categories = []string{"Technology", "Beauty"}

	var buf bytes.Buffer
	contentType, err := f.WriteMultipart(&buf)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(&buf, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	assert.Equal(t, []string{"Ama"}, form.Value["firstName"])
	assert.Equal(t, []string{`["Technology","Beauty"]`}, form.Value["categories"])
	assert.Equal(t, []string{"true"}, form.Value["agreedToTerms"])
	assert.NotContains(t, form.Value, "guardianName")
	assert.NotContains(t, form.Value, "website")

	require.Len(t, form.File["productImage"], 1)
	header := form.File["productImage"][0]
	assert.Equal(t, "product.png", header.Filename)
	assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

	file, err := header.Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "png!", string(content))

	require.Len(t, form.File["paymentReceipt"], 1)
	assert.Equal(t, "receipt.pdf", form.File["paymentReceipt"][0].Filename)
}

func TestForm_WriteMultipart_NoCategories(t *testing.T) {
	f := NewForm()
	f.FirstName = "Ama"

	var buf bytes.Buffer
	contentType, err := f.WriteMultipart(&buf)
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	form, err := multipart.NewReader(&buf, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	assert.Equal(t, []string{"[]"}, form.Value["categories"])
	assert.Equal(t, []string{"false"}, form.Value["agreedToTerms"])
	assert.Empty(t, form.File)
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions()
	require.NoError(t, err)
	assert.Len(t, opts.Categories, 15)
	assert.Len(t, opts.Regions, 16)
	assert.Equal(t, "idea", opts.Phases[0].Value)
	assert.Equal(t, "no", opts.Collaborators[0].Value)
	assert.True(t, strings.HasPrefix(opts.Pronouns[0].Label, "He"))
}
