package institutes

import (
	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupInstitutesRoutes sets up the institute routes
func SetupInstitutesRoutes(app *fiber.App) {
	api := app.Group("/api/institutes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetInstitutesAPI(c, config.GetDB())
	})

	api.Post("/", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return CreateInstituteAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetInstituteByIDAPI(c, config.GetDB())
	})

	api.Put("/:id", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return UpdateInstituteAPI(c, config.GetDB())
	})
}
