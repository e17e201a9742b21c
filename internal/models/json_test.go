// json_test.go
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
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"Technology", "Beauty"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Technology","Beauty"]`, v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["Agriculture"]`)))
	assert.Equal(t, StringList{"Agriculture"}, l)

	require.NoError(t, l.Scan(`["Fashion","Education"]`))
	assert.Equal(t, StringList{"Fashion", "Education"}, l)
}

func TestApplication_RoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Application{}))

	app := Application{
		FirstName:            "Ama",
		LastName:             "Owusu",
		Phone:                "0241234567",
		Email:                "ama@example.com",
		City:                 "Kumasi",
		Region:               "Ashanti",
		BusinessName:         "Shea Works",
		Categories:           StringList{"Beauty", "Manufacturing"},
		Description:          "Handmade shea butter products for export markets",
		ProductImage:         "https://cdn.example.com/p.png",
		PaymentReceipt:       "https://cdn.example.com/r.pdf",
		BankName:             "GCB",
		AccountHolderName:    "Ama Owusu",
		TransactionReference: "TX-1",
		Signature:            "Ama Owusu",
	}
	require.NoError(t, db.Create(&app).Error)

	var got Application
	require.NoError(t, db.First(&got, app.ID).Error)
	assert.Equal(t, StringList{"Beauty", "Manufacturing"}, got.Categories)
	assert.Equal(t, ReviewPending, got.ReviewStatus)
	assert.False(t, got.Reviewed)
	assert.Equal(t, "no", got.HasCollaborators)
}

func TestReviewStatus_Valid(t *testing.T) {
	for _, s := range ReviewStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ReviewStatus("archived").Valid())
	assert.False(t, ReviewStatus("").Valid())
}
