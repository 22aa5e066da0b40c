package results

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/document"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetReportCardAPI returns the printable report card of one saved result
// as a complete HTML document.
func GetReportCardAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := database.GetResultByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Result not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch result"})
	}

	blueprint, err := database.GetBlueprintByID(db, result.BlueprintID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam blueprint"})
	}

	student, err := database.GetStudentByID(db, result.StudentID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	institute := blueprintInstitute(db, blueprint.InstituteID)

	doc, err := document.BuildReportCard(blueprint, result, institute, student)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report card"})
	}

	html, err := document.RenderReportCardHTML(doc)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render report card"})
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

func blueprintInstitute(db *sql.DB, instituteID string) *models.Institute {
	institute, err := database.GetInstituteByID(db, instituteID)
	if err != nil {
		return nil
	}
	return institute
}
