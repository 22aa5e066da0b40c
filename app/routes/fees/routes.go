package fees

import (
	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fees routes
func SetupFeesRoutes(app *fiber.App) {
	// Group for fees routes with authentication middleware
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	// API routes for fees
	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	// Web routes
	fees.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fees Management - Gurukul ERP",
			"CurrentPage": "fees",
		})
	})

	// API routes
	feesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeesAPI(c, config.GetDB())
	})

	feesAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetFeeStatsAPI(c, config.GetDB())
	})

	feesAPI.Post("/publish", func(c *fiber.Ctx) error {
		return PublishMonthlyFeesAPI(c, config.GetDB())
	})

	feesAPI.Post("/occasional", func(c *fiber.Ctx) error {
		return CreateOccasionalBatchAPI(c, config.GetDB())
	})

	feesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeByIDAPI(c, config.GetDB())
	})

	feesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, config.GetDB())
	})

	feesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeAPI(c, config.GetDB())
	})

	feesAPI.Post("/:id/pay", func(c *fiber.Ctx) error {
		return MarkFeeAsPaidAPI(c, config.GetDB())
	})

	// Fee structure routes
	structuresAPI := app.Group("/api/fee-structures")
	structuresAPI.Use(auth.AuthMiddleware)

	structuresAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeStructuresAPI(c, config.GetDB())
	})

	structuresAPI.Post("/", func(c *fiber.Ctx) error {
		return UpsertFeeStructureAPI(c, config.GetDB())
	})
}
