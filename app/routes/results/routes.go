package results

import (
	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupResultsRoutes sets up the exam blueprint and result routes
func SetupResultsRoutes(app *fiber.App) {
	web := app.Group("/blueprints")
	web.Use(auth.AuthMiddleware)

	web.Get("/:id/results", func(c *fiber.Ctx) error {
		return c.Render("results/entry", fiber.Map{
			"Title":       "Result Entry - Gurukul ERP",
			"CurrentPage": "results",
			"BlueprintID": c.Params("id"),
		})
	})

	blueprintsAPI := app.Group("/api/blueprints")
	blueprintsAPI.Use(auth.AuthMiddleware)

	blueprintsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetBlueprintsAPI(c, config.GetDB())
	})

	blueprintsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateBlueprintAPI(c, config.GetDB())
	})

	blueprintsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetBlueprintByIDAPI(c, config.GetDB())
	})

	blueprintsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateBlueprintAPI(c, config.GetDB())
	})

	blueprintsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteBlueprintAPI(c, config.GetDB())
	})

	blueprintsAPI.Get("/:id/results", func(c *fiber.Ctx) error {
		return GetResultsByBlueprintAPI(c, config.GetDB())
	})

	resultsAPI := app.Group("/api/results")
	resultsAPI.Use(auth.AuthMiddleware)

	resultsAPI.Post("/batch", func(c *fiber.Ctx) error {
		return SaveResultsAPI(c, config.GetDB())
	})

	resultsAPI.Get("/student/:id", func(c *fiber.Ctx) error {
		return GetStudentResultsAPI(c, config.GetDB())
	})

	resultsAPI.Get("/:id/report-card", func(c *fiber.Ctx) error {
		return GetReportCardAPI(c, config.GetDB())
	})
}
