// admin.go
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
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/services"
)

// AdminHandler handles the review routes under /api/admin
type AdminHandler struct {
	Admin *services.AdminService
	Log   logger.Logger
	Dev   bool
}

// ListApplications handles GET /api/admin/applications
// @Summary List applications
// @Description Filtered, sorted and paginated application listing
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 100" default(20)
// @Param search query string false "Substring of name, email or business name"
// @Param region query string false "Exact region"
// @Param status query string false "reviewed, pending, approved, rejected or shortlisted"
// @Param sortBy query string false "Column to sort by" default(created_at)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	q := services.ListQuery{
		Page:      c.QueryInt("page", services.DefaultPage),
		Limit:     c.QueryInt("limit", services.DefaultLimit),
		Search:    c.Query("search"),
		Region:    c.Query("region"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	list, err := h.Admin.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "list applications", err)
	}

	return c.JSON(fiber.Map{"success": true, "data": list})
}

// UpdateApplication handles PATCH /api/admin/applications/:id
// @Summary Review an application
// @Description Update the review metadata of an application
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body object true "reviewed, review_status, review_notes, reviewed_by"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/applications/{id} [patch]
func (h *AdminHandler) UpdateApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}
	review, err := services.ParseReview(body)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "parse review", err)
	}

	app, err := h.Admin.UpdateReview(c.UserContext(), id, review)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "update application", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    app,
		"message": "Application updated successfully",
	})
}

// DeleteApplication handles DELETE /api/admin/applications/:id
// @Summary Delete an application
// @Description Delete an application and its uploaded files
// @Tags Admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/applications/{id} [delete]
func (h *AdminHandler) DeleteApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Admin.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.Log, h.Dev, "delete application", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Application deleted successfully"})
}

// Statistics handles GET /api/admin/statistics
// @Summary Application statistics
// @Description Totals, today's count, counts by region and status, and daily counts for the last week
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/statistics [get]
func (h *AdminHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.Admin.Statistics(c.UserContext())
	if err != nil {
		return respondError(c, h.Log, h.Dev, "statistics", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Export handles GET /api/admin/export
// @Summary Export applications
// @Description Download every application as CSV, newest first
// @Tags Admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.Admin.Export(c.UserContext(), &buf); err != nil {
		return respondError(c, h.Log, h.Dev, "export", err)
	}

	c.Attachment("applications.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
