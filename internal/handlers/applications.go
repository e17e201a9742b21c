// applications.go
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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/services"
	"github.com/pitch2angels/portal/internal/types"
	"github.com/pitch2angels/portal/internal/utils"
	"github.com/pitch2angels/portal/internal/wizard"
)

// ApplicationHandler handles the public application routes
type ApplicationHandler struct {
	Submissions *services.SubmissionService
	Log         logger.Logger
	Dev         bool
}

// SubmitResponse is returned after an application was stored
type SubmitResponse struct {
	Success           bool   `json:"success"`
	ID                uint64 `json:"id"`
	ProductImageURL   string `json:"productImageUrl"`
	PaymentReceiptURL string `json:"paymentReceiptUrl"`
	CreatedAt         string `json:"createdAt"`
	Message           string `json:"message"`
}

// ValidateRequest asks for server side validation of one wizard step
type ValidateRequest struct {
	Step wizard.Step `json:"step"`
	Form wizard.Form `json:"form"`
}

// ValidateResponse carries the field errors of a validated step
type ValidateResponse struct {
	Success bool          `json:"success"`
	Valid   bool          `json:"valid"`
	Step    wizard.Step   `json:"step"`
	Errors  wizard.Errors `json:"errors"`
}

// Submit handles POST /api/applications
// @Summary Submit an application
// @Description Accept a multipart application with a product image and a payment receipt
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email address"
// @Param categories formData string false "JSON encoded list of categories"
// @Param productImage formData file true "Product image"
// @Param paymentReceipt formData file true "Payment receipt"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
			Type:    "Invalid form data",
		}
	}
	defer c.Context().Request.RemoveMultipartFormFiles()

	app, err := h.Submissions.Submit(c.UserContext(), form)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "submit", err)
	}

	return utils.SuccessResponse(c, SubmitResponse{
		Success:           true,
		ID:                app.ID,
		ProductImageURL:   app.ProductImage,
		PaymentReceiptURL: app.PaymentReceipt,
		CreatedAt:         app.CreatedAt.UTC().Format(time.RFC3339),
		Message:           "Application submitted successfully",
	}, fiber.StatusCreated)
}

// Get handles GET /api/applications/:id
// @Summary Get an application
// @Description Get one application by id
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	app, err := services.Get(c.UserContext(), h.Submissions.DB, id)
	if err != nil {
		return respondError(c, h.Log, h.Dev, "get application", err)
	}

	return c.JSON(fiber.Map{"success": true, "data": app})
}

// Validate handles POST /api/applications/validate
// @Summary Validate a form step
// @Description Run the wizard validation rules for one step, or every step when step is 0
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body ValidateRequest true "Step and form values"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /applications/validate [post]
func (h *ApplicationHandler) Validate(c *fiber.Ctx) error {
	req := ValidateRequest{Form: wizard.NewForm()}
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err.Error())
	}
	if req.Step != 0 && !req.Step.Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "step must be 1, 2 or 3")
	}

	errs := wizard.Errors{}
	steps := []wizard.Step{req.Step}
	if req.Step == 0 {
		steps = []wizard.Step{wizard.StepPersonal, wizard.StepBusiness, wizard.StepPayment}
	}
	for _, step := range steps {
		for field, message := range wizard.Validate(&req.Form, step) {
			errs[field] = message
		}
	}

	return c.JSON(ValidateResponse{Success: true, Valid: errs.Valid(), Step: req.Step, Errors: errs})
}

// Options handles GET /api/applications/options
// @Summary Form options
// @Description Categories, phases, regions, pronouns and collaborator answers offered by the form
// @Tags Applications
// @Produce json
// @Success 200 {object} wizard.Options
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /applications/options [get]
func (h *ApplicationHandler) Options(c *fiber.Ctx) error {
	options, err := wizard.LoadOptions()
	if err != nil {
		return respondError(c, h.Log, h.Dev, "load options", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": options})
}
