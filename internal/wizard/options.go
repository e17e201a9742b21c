// options.go
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
	"sync"

	"github.com/pitch2angels/portal/data"
)

// Option is a select value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options are the choices offered by the form
type Options struct {
	Categories    []string `json:"categories"`
	Phases        []Option `json:"phases"`
	Regions       []string `json:"regions"`
	Pronouns      []Option `json:"pronouns"`
	Collaborators []Option `json:"collaborators"`
}

var (
	optionsOnce sync.Once
	options     *Options
	optionsErr  error
)

// LoadOptions parses the embedded option lists
func LoadOptions() (*Options, error) {
	optionsOnce.Do(func() {
		var o Options
		if err := json.Unmarshal(data.FormOptions, &o); err != nil {
			optionsErr = fmt.Errorf("failed to parse form options: %w", err)
			return
		}
		options = &o
	})
	return options, optionsErr
}
