package payments

import (
	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentsRoutes sets up the payment routes. The notify webhook is
// unauthenticated because the gateway calls it server-to-server.
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")

	api.Post("/notify", func(c *fiber.Ctx) error {
		return NotifyAPI(c, config.GetDB())
	})

	api.Post("/order", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return CreateOrderAPI(c, config.GetDB())
	})
}
