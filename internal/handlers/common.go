// common.go
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

package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/services"
	"github.com/pitch2angels/portal/internal/types"
	"github.com/pitch2angels/portal/internal/utils"
)

// errorMapping is the response for one service error
type errorMapping struct {
	err    error
	status int
	text   string
}

// serviceErrors is checked in order, so more specific errors come first
var serviceErrors = []errorMapping{
	{services.ErrNotFound, fiber.StatusNotFound, "Application not found"},
	{services.ErrInvalidEmail, fiber.StatusBadRequest, "Invalid email format"},
	{services.ErrMissingFiles, fiber.StatusBadRequest, "Both product image and payment receipt are required"},
	{services.ErrInvalidFile, fiber.StatusBadRequest, "Only image and PDF files are allowed"},
	{services.ErrFileTooLarge, fiber.StatusBadRequest, "File too large"},
	{services.ErrInvalidDate, fiber.StatusBadRequest, "Invalid payment date"},
	{services.ErrDuplicate, fiber.StatusConflict, "Duplicate entry"},
	{services.ErrMissingData, fiber.StatusBadRequest, "Missing required data"},
	{services.ErrInvalidStatus, fiber.StatusBadRequest, "Invalid review status"},
	{services.ErrNoUpdates, fiber.StatusBadRequest, "No updates provided"},
	{services.ErrUpload, fiber.StatusInternalServerError, "File upload failed"},
}

// parseID reads the positive numeric :id route parameter
func parseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "Application id must be a positive integer",
			Type:    "Invalid application id",
		}
	}
	return id, nil
}

// respondError renders a service error into the error envelope. Internal
// details are only exposed in development.
func respondError(c *fiber.Ctx, log logger.Logger, dev bool, op string, err error) error {
	var missing *services.MissingFieldsError
	if errors.As(err, &missing) {
		body := utils.ErrorBody(c, fiber.StatusBadRequest, "Missing required fields", "")
		body["missingFields"] = missing.Fields
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	var schemaErr *services.SchemaError
	if errors.As(err, &schemaErr) {
		body := utils.ErrorBody(c, fiber.StatusBadRequest, "Invalid review payload", strings.Join(schemaErr.Violations, "; "))
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	for _, m := range serviceErrors {
		if !errors.Is(err, m.err) {
			continue
		}
		if m.status >= fiber.StatusInternalServerError {
			log.Error(op+" failed", logger.Fields{"error": err})
		}
		body := utils.ErrorBody(c, m.status, m.text, m.err.Error())
		if dev && m.status >= fiber.StatusInternalServerError {
			body["details"] = err.Error()
		}
		return c.Status(m.status).JSON(body)
	}

	log.Error(op+" failed", logger.Fields{"error": err})
	body := utils.ErrorBody(c, fiber.StatusInternalServerError, "Internal server error", "")
	if dev {
		body["details"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
