package fees

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/document"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// CreateFeeRequest covers both fee shapes: a monthly fee carries a
// breakdown object, an occasional fee carries the delimited item strings.
type CreateFeeRequest struct {
	StudentID       string          `json:"student_id" validate:"required,uuid"`
	InstituteID     string          `json:"institute_id" validate:"required,uuid"`
	FeeType         string          `json:"fee_type" validate:"required,oneof=monthly occasional"`
	MonthYear       string          `json:"month_year"`
	Breakdown       json.RawMessage `json:"breakdown"`
	Items           *string         `json:"items"`
	AmountBreakdown *string         `json:"amount_breakdown"`
	TotalAmount     float64         `json:"total_amount" validate:"gt=0"`
}

// GetFeesAPI returns all fees with optional filtering
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.FeeFilters{
		StudentID:   c.Query("student_id"),
		InstituteID: c.Query("institute_id"),
		Status:      c.Query("status"), // "paid", "unpaid", "all"
		FeeType:     c.Query("fee_type"),
		Limit:       c.QueryInt("limit"),
		Offset:      c.QueryInt("offset"),
	}

	fees, err := database.GetFees(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fees,
	})
}

// GetFeeByIDAPI returns a specific fee with its normalized line items, so
// clients never re-implement the breakdown parsing.
func GetFeeByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"fee":        fee,
			"line_items": document.NormalizeLineItems(fee),
		},
	})
}

// CreateFeeAPI creates a single unpaid fee record
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	fee := &models.Fee{
		StudentID:       req.StudentID,
		InstituteID:     req.InstituteID,
		FeeType:         models.FeeType(req.FeeType),
		MonthYear:       req.MonthYear,
		Breakdown:       req.Breakdown,
		Items:           req.Items,
		AmountBreakdown: req.AmountBreakdown,
		TotalAmount:     req.TotalAmount,
	}

	if err := database.CreateFee(db, fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

// MarkFeeAsPaidAPI records a manual counter collection. Online payments go
// through the gateway webhook instead.
func MarkFeeAsPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		CollectedBy string `json:"collected_by" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "collected_by is required for counter payments"})
	}

	paymentID := models.CounterPaymentPrefix + uuid.New().String()
	fee, err := database.MarkFeePaid(db, c.Params("id"), paymentID, &req.CollectedBy)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		if strings.Contains(err.Error(), "already paid") {
			return c.Status(409).JSON(fiber.Map{"error": "Fee is already paid"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark fee as paid"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

// DeleteFeeAPI soft-deletes an unpaid fee
func DeleteFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFee(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found or already paid"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetFeeStatsAPI returns aggregate collection statistics
func GetFeeStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetFeeStats(db, c.Query("institute_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee statistics"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
