package receipts

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/document"
	"github.com/apra1107-crypto/erp-sub002/app/services"

	"github.com/gofiber/fiber/v2"
)

func buildReceipt(db *sql.DB, feeID string) (*document.ReceiptDocument, error) {
	fee, student, institute, err := database.GetFeeContext(db, feeID)
	if err != nil {
		return nil, err
	}
	return document.BuildReceipt(fee, institute, student)
}

// GetReceiptAPI returns the printable receipt artifact. The response is a
// complete HTML document; the caller (or the print engine behind it)
// converts it to PDF.
func GetReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	doc, err := buildReceipt(db, c.Params("id"))
	if err != nil {
		return receiptError(c, err)
	}

	html, err := document.RenderReceiptHTML(doc)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render receipt"})
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

// ShareReceiptAPI runs the serialized generation flow: render, write the
// artifact, hand it to the share surface. A second call while one is in
// flight is skipped, which is how a double-tap produces a single dialog.
func ShareReceiptAPI(c *fiber.Ctx, db *sql.DB, generator *services.ReceiptGenerator) error {
	doc, err := buildReceipt(db, c.Params("id"))
	if err != nil {
		return receiptError(c, err)
	}

	dispatched, err := generator.Share(doc)
	if err != nil {
		// Share surface failure is not fatal; the client shows a toast
		// and the user retries.
		return c.Status(502).JSON(fiber.Map{"error": "Failed to share receipt: " + err.Error()})
	}
	if !dispatched {
		return c.JSON(fiber.Map{
			"success": true,
			"skipped": true,
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// PreviewPage renders the on-screen receipt view. Same document model as
// the artifact, different medium.
func PreviewPage(c *fiber.Ctx, db *sql.DB) error {
	doc, err := buildReceipt(db, c.Params("id"))
	if err != nil {
		return receiptError(c, err)
	}

	return c.Render("receipts/preview", fiber.Map{
		"Title":       "Fee Receipt - Gurukul ERP",
		"CurrentPage": "fees",
		"Doc":         doc,
		"FeeID":       c.Params("id"),
	})
}

func receiptError(c *fiber.Ctx, err error) error {
	switch err {
	case sql.ErrNoRows:
		return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
	case document.ErrFeeNotPaid:
		return c.Status(409).JSON(fiber.Map{"error": "Receipt is only available for paid fees"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build receipt"})
	}
}
