// message.go
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

package notify

import (
	"fmt"
	"html"

	"github.com/pitch2angels/portal/internal/models"
)

func confirmation(app *models.Application) (subject, text, body string) {
	subject = fmt.Sprintf("Pitch 2 Angels: application #%d received", app.ID)

	text = fmt.Sprintf(`Hi %s,

Thank you for applying to Pitch 2 Angels with %s. Your application ID is %d.

Our team will review your submission and contact you within 7-10 business days.

Pitch 2 Angels`, app.FirstName, app.BusinessName, app.ID)

	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>Thank you for applying to Pitch 2 Angels with <strong>%s</strong>. Your application ID is <strong>%d</strong>.</p>
<p>Our team will review your submission and contact you within 7-10 business days.</p>
<p>Pitch 2 Angels</p>`, html.EscapeString(app.FirstName), html.EscapeString(app.BusinessName), app.ID)

	return subject, text, body
}
