package fees

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/gofiber/fiber/v2"
)

// PublishMonthlyFeesAPI creates the month's unpaid fees from the active
// fee structures. Safe to call twice: students already billed for the
// month label are skipped.
func PublishMonthlyFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		MonthYear string `json:"month_year"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.MonthYear == "" {
		req.MonthYear = time.Now().Format("January 2006")
	}

	created, err := database.PublishMonthlyFees(db, req.MonthYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to publish monthly fees"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"month_year": req.MonthYear,
		"created":    created,
	})
}

// CreateOccasionalBatchAPI creates a one-off charge (picnic, uniform...)
// for a batch of students. Items and amounts arrive as parallel lists and
// are stored in the "+"-joined delimited form the receipts understand.
func CreateOccasionalBatchAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		InstituteID string   `json:"institute_id" validate:"required,uuid"`
		StudentIDs  []string `json:"student_ids" validate:"required,min=1"`
		Items       string   `json:"items" validate:"required"`
		Amounts     string   `json:"amount_breakdown" validate:"required"`
		TotalAmount float64  `json:"total_amount" validate:"gt=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := database.CreateOccasionalBatch(db, req.InstituteID, req.StudentIDs,
		req.Items, req.Amounts, req.TotalAmount)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create occasional fees"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"created": created,
	})
}

// GetFeeStructuresAPI lists the monthly fee structures of an institute
func GetFeeStructuresAPI(c *fiber.Ctx, db *sql.DB) error {
	instituteID := c.Query("institute_id")
	if instituteID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "institute_id is required"})
	}

	structures, err := database.GetFeeStructures(db, instituteID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee structures"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    structures,
	})
}

// UpsertFeeStructureAPI creates or replaces the monthly structure of a class
func UpsertFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		InstituteID string          `json:"institute_id" validate:"required,uuid"`
		Class       string          `json:"class" validate:"required"`
		Breakdown   json.RawMessage `json:"breakdown" validate:"required"`
		TotalAmount float64         `json:"total_amount" validate:"gt=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	structure := &models.FeeStructure{
		InstituteID: req.InstituteID,
		Class:       req.Class,
		Breakdown:   req.Breakdown,
		TotalAmount: req.TotalAmount,
	}
	if err := database.UpsertFeeStructure(db, structure); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save fee structure"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    structure,
	})
}
