package payments

import (
	"database/sql"
	"log"
	"strings"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"
	"github.com/apra1107-crypto/erp-sub002/app/services"

	"github.com/gofiber/fiber/v2"
)

// CreateOrderAPI opens a gateway transaction for an unpaid fee and returns
// the Snap token plus redirect URL for the client to open.
func CreateOrderAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		FeeID string `json:"fee_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.FeeID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "fee_id is required"})
	}

	fee, student, institute, err := database.GetFeeContext(db, req.FeeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}
	if fee.IsPaid() {
		return c.Status(409).JSON(fiber.Map{"error": "Fee is already paid"})
	}

	token, redirectURL, err := services.CreateFeeOrder(fee, student, institute)
	if err != nil {
		log.Printf("Failed to create payment order for fee %s: %v", fee.ID, err)
		return c.Status(502).JSON(fiber.Map{"error": "Failed to create payment order"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"token":        token,
		"redirect_url": redirectURL,
	})
}

// NotifyAPI is the gateway webhook. The order id is the fee id, so a
// settlement notification flips that fee to paid with the gateway
// transaction as the payment reference. Unknown orders return 404 so the
// gateway retries are visible in its dashboard.
func NotifyAPI(c *fiber.Ctx, db *sql.DB) error {
	var notification struct {
		OrderID           string `json:"order_id"`
		TransactionID     string `json:"transaction_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
	if err := c.BodyParser(&notification); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid notification payload"})
	}
	if notification.OrderID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "order_id is required"})
	}

	status := services.MapGatewayStatus(notification.TransactionStatus, notification.FraudStatus)
	log.Printf("Payment notification for order %s: %s -> %s",
		notification.OrderID, notification.TransactionStatus, status)

	if status != models.PaymentCompleted {
		// Pending and failed notifications are acknowledged without
		// touching the fee; the record only changes on settlement.
		return c.JSON(fiber.Map{"success": true, "status": string(status)})
	}

	paymentID := notification.TransactionID
	if paymentID == "" {
		paymentID = notification.OrderID
	}

	if _, err := database.MarkFeePaid(db, notification.OrderID, paymentID, nil); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		if strings.Contains(err.Error(), "already paid") {
			// Gateways resend notifications; a repeat settlement is fine.
			return c.JSON(fiber.Map{"success": true, "status": string(status)})
		}
		log.Printf("Failed to settle fee %s: %v", notification.OrderID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.JSON(fiber.Map{"success": true, "status": string(status)})
}
