package receipts

import (
	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/routes/auth"
	"github.com/apra1107-crypto/erp-sub002/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupReceiptsRoutes sets up the receipt routes. A single generator
// instance backs the share endpoint so concurrent share requests are
// serialized process-wide.
func SetupReceiptsRoutes(app *fiber.App) {
	generator := services.NewReceiptGenerator(&services.FileShareDispatcher{
		Dir: config.AppConfig.ShareDir,
	})

	web := app.Group("/fees")
	web.Use(auth.AuthMiddleware)

	web.Get("/:id/receipt/preview", func(c *fiber.Ctx) error {
		return PreviewPage(c, config.GetDB())
	})

	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/:id/receipt", func(c *fiber.Ctx) error {
		return GetReceiptAPI(c, config.GetDB())
	})

	api.Post("/:id/share", func(c *fiber.Ctx) error {
		return ShareReceiptAPI(c, config.GetDB(), generator)
	})
}
