// types_test.go
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

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool(t *testing.T) {
	var body struct {
		Reviewed FlexBool `json:"reviewed"`
		Other    FlexBool `json:"other"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"reviewed":"true"}`), &body))
	assert.True(t, body.Reviewed.Set)
	assert.True(t, body.Reviewed.Value)
	assert.False(t, body.Other.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"reviewed":false}`), &body))
	assert.True(t, body.Reviewed.Set)
	assert.False(t, body.Reviewed.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"reviewed":"maybe"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"reviewed":12}`), &body))
}

func TestFlexList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"array", `["Technology","Beauty"]`, []string{"Technology", "Beauty"}},
		{"single", `"Technology"`, []string{"Technology"}},
		{"encoded array", `"[\"Fitness\",\"Other\"]"`, []string{"Fitness", "Other"}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list FlexList[string]
			require.NoError(t, json.Unmarshal([]byte(tt.input), &list))
			assert.Equal(t, tt.expected, list.Slice())
		})
	}
}

func TestCustomError(t *testing.T) {
	err := NewError(400, "submission.validation", "Missing required fields").WithDetails([]string{"email"})
	assert.Equal(t, "400: Missing required fields [type: submission.validation]", err.Error())
	assert.Equal(t, []string{"email"}, err.Details)
}
