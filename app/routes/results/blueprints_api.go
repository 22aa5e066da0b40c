package results

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/gofiber/fiber/v2"
)

// BlueprintRequest is shared by create and update.
type BlueprintRequest struct {
	InstituteID  string                      `json:"institute_id" validate:"required,uuid"`
	Name         string                      `json:"name" validate:"required"`
	Class        string                      `json:"class" validate:"required"`
	Section      string                      `json:"section"`
	Subjects     models.SubjectBlueprintList `json:"subjects" validate:"required,min=1"`
	GradingRules models.GradingRuleList      `json:"grading_rules"`
	Stats        models.ManualStats          `json:"manual_stats"`
}

// GetBlueprintsAPI lists exam blueprints, optionally for one institute
func GetBlueprintsAPI(c *fiber.Ctx, db *sql.DB) error {
	blueprints, err := database.GetBlueprints(db, c.Query("institute_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam blueprints"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    blueprints,
	})
}

// GetBlueprintByIDAPI returns one blueprint with subjects and grading rules
func GetBlueprintByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	blueprint, err := database.GetBlueprintByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam blueprint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam blueprint"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    blueprint,
	})
}

// CreateBlueprintAPI creates a new exam blueprint
func CreateBlueprintAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BlueprintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	blueprint := &models.ExamBlueprint{
		InstituteID:  req.InstituteID,
		Name:         req.Name,
		Class:        req.Class,
		Section:      req.Section,
		Subjects:     req.Subjects,
		GradingRules: req.GradingRules,
		Stats:        req.Stats,
	}
	if err := database.CreateBlueprint(db, blueprint); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam blueprint"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    blueprint,
	})
}

// UpdateBlueprintAPI replaces the mutable parts of a blueprint
func UpdateBlueprintAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BlueprintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	blueprint := &models.ExamBlueprint{
		ID:           c.Params("id"),
		InstituteID:  req.InstituteID,
		Name:         req.Name,
		Class:        req.Class,
		Section:      req.Section,
		Subjects:     req.Subjects,
		GradingRules: req.GradingRules,
		Stats:        req.Stats,
	}
	if err := database.UpdateBlueprint(db, blueprint); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam blueprint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam blueprint"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    blueprint,
	})
}

// DeleteBlueprintAPI soft-deletes a blueprint
func DeleteBlueprintAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteBlueprint(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam blueprint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exam blueprint"})
	}
	return c.JSON(fiber.Map{"success": true})
}
