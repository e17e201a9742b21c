// errors.go
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

	"github.com/gofiber/fiber/v2"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/types"
	"github.com/pitch2angels/portal/internal/utils"
)

// ErrorHandler renders errors returned from handlers and middleware into the
// standard error envelope
func ErrorHandler(log logger.Logger, dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var customErr *types.CustomError
		if errors.As(err, &customErr) {
			body := utils.ErrorBody(c, customErr.Code, customErr.Type, customErr.Message)
			if customErr.Details != nil {
				body["details"] = customErr.Details
			}
			return c.Status(customErr.Code).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			// Oversized multipart bodies are a client error on the upload itself
			if fiberErr.Code == fiber.StatusRequestEntityTooLarge {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "File too large", "Maximum file size is 10MB")
			}
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message, "")
		}

		log.Error("unhandled request error", logger.Fields{
			"path":  c.Path(),
			"error": err,
		})
		body := utils.ErrorBody(c, fiber.StatusInternalServerError, "Internal server error", "")
		if dev {
			body["details"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// NotFound answers every request that matched no route
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "Endpoint not found")
}
