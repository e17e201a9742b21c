// multipart.go
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
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// WriteMultipart encodes the form as a submission request body and returns
// the Content-Type to send with it. Empty values are skipped, categories are
// always sent as a JSON array string and files as parts named after their field.
func (f *Form) WriteMultipart(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	for _, field := range textFields {
		value, _ := f.Get(field)
		if value == "" {
			continue
		}
		if err := mw.WriteField(field, value); err != nil {
			return "", fmt.Errorf("write %s: %w", field, err)
		}
	}

	categories := []string(f.Categories)
	if categories == nil {
		categories = []string{}
	}
	encoded, err := json.Marshal(categories)
	if err != nil {
		return "", fmt.Errorf("encode categories: %w", err)
	}
	if err := mw.WriteField("categories", string(encoded)); err != nil {
		return "", fmt.Errorf("write categories: %w", err)
	}

	if err := mw.WriteField("agreedToTerms", strconv.FormatBool(f.AgreedToTerms)); err != nil {
		return "", fmt.Errorf("write agreedToTerms: %w", err)
	}

	files := []struct {
		field string
		file  *File
	}{
		{"productImage", f.ProductImage},
		{"paymentReceipt", f.PaymentReceipt},
	}
	for _, part := range files {
		if part.file == nil {
			continue
		}
		if err := writeFile(mw, part.field, part.file); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

func writeFile(mw *multipart.Writer, field string, file *File) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("write %s: %w", field, err)
	}
	return nil
}
