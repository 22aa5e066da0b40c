package results

import (
	"database/sql"
	"log"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/grading"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SaveResultsRequest carries the whole entry grid for one blueprint.
type SaveResultsRequest struct {
	BlueprintID string        `json:"blueprint_id" validate:"required,uuid"`
	Results     []ResultInput `json:"results" validate:"required,min=1,dive"`
}

type ResultInput struct {
	StudentID string           `json:"student_id" validate:"required,uuid"`
	Marks     models.MarksList `json:"marks" validate:"required"`
}

// SaveResultsAPI saves a batch of results for a blueprint. Grades and
// totals are derived here, on the server, from the blueprint's grading
// rules and stored alongside the raw marks so views never recompute.
func SaveResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SaveResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	blueprint, err := database.GetBlueprintByID(db, req.BlueprintID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam blueprint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam blueprint"})
	}

	// Sort once; every resolution below walks the same ordered table.
	blueprint.GradingRules = grading.SortRules(blueprint.GradingRules)

	subjectsByName := make(map[string]models.SubjectBlueprint, len(blueprint.Subjects))
	for _, subject := range blueprint.Subjects {
		subjectsByName[subject.Name] = subject
	}

	toSave := make([]*models.StudentResult, 0, len(req.Results))
	for _, input := range req.Results {
		marks := make(models.MarksList, 0, len(input.Marks))
		for _, entry := range input.Marks {
			subject, ok := subjectsByName[entry.Subject]
			if !ok {
				// Stale row from a renamed subject; drop it.
				continue
			}
			if grade, ok := grading.SubjectGrade(entry, subject, blueprint.GradingRules); ok {
				entry.Grade = grade
			} else {
				entry.Grade = ""
			}
			marks = append(marks, entry)
		}

		toSave = append(toSave, &models.StudentResult{
			BlueprintID: blueprint.ID,
			StudentID:   input.StudentID,
			Marks:       marks,
			Stats:       grading.ComputeStats(blueprint, marks),
		})
	}

	if err := database.UpsertResults(db, toSave); err != nil {
		log.Printf("Failed to save results for blueprint %s: %v", blueprint.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save results"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"saved":   len(toSave),
	})
}

// GetResultsByBlueprintAPI returns every saved result of one exam
func GetResultsByBlueprintAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetResultsByBlueprint(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}

// GetStudentResultsAPI returns a student's results across exams
func GetStudentResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetResultsByStudent(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}
