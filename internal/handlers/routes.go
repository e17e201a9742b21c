// routes.go
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

import "github.com/gofiber/fiber/v2"

// Routes mounts every API route on api, which is expected to be the /api group
func Routes(api fiber.Router, apps *ApplicationHandler, admin *AdminHandler, health *HealthHandler) {
	api.Get("/health", health.Health)

	// Public application routes, fixed paths before :id
	api.Post("/applications/validate", apps.Validate)
	api.Get("/applications/options", apps.Options)
	api.Post("/applications", apps.Submit)
	api.Get("/applications/:id", apps.Get)

	// Admin review routes
	adm := api.Group("/admin")
	adm.Get("/applications", admin.ListApplications)
	adm.Patch("/applications/:id", admin.UpdateApplication)
	adm.Delete("/applications/:id", admin.DeleteApplication)
	adm.Get("/statistics", admin.Statistics)
	adm.Get("/export", admin.Export)
}
