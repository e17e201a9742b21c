// response.go
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

package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *fiber.Ctx, status int, errorText, message string) error {
	return c.Status(status).JSON(ErrorBody(c, status, errorText, message))
}

// ErrorBody builds the standard error envelope so callers can add fields
func ErrorBody(c *fiber.Ctx, status int, errorText, message string) fiber.Map {
	body := fiber.Map{
		"success":   false,
		"status":    status,
		"error":     errorText,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	}
	if message != "" {
		body["message"] = message
	}
	return body
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, errorText string) error {
	return ErrorResponse(c, fiber.StatusNotFound, errorText, "")
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Success       bool     `json:"success"`
	Status        int      `json:"status"`
	Error         string   `json:"error"`
	Message       string   `json:"message,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
	Details       string   `json:"details,omitempty"`
	Timestamp     string   `json:"timestamp"`
	URL           string   `json:"url"`
}

// MessageResponseStruct defines the schema for responses carrying only a message
type MessageResponseStruct struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
