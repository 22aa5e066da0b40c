package institutes

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// InstituteRequest is shared by create and update.
type InstituteRequest struct {
	Name        string `json:"name" validate:"required"`
	LogoURL     string `json:"logo_url"`
	Affiliation string `json:"affiliation"`
	Address     string `json:"address"`
	Landmark    string `json:"landmark"`
	District    string `json:"district"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (r *InstituteRequest) toModel() *models.Institute {
	return &models.Institute{
		Name:        r.Name,
		LogoURL:     r.LogoURL,
		Affiliation: r.Affiliation,
		Address:     r.Address,
		Landmark:    r.Landmark,
		District:    r.District,
		State:       r.State,
		Pincode:     r.Pincode,
		Mobile:      r.Mobile,
		Email:       r.Email,
	}
}

// GetInstitutesAPI lists active institutes
func GetInstitutesAPI(c *fiber.Ctx, db *sql.DB) error {
	institutes, err := database.GetInstitutes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch institutes"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    institutes,
	})
}

// GetInstituteByIDAPI returns a specific institute
func GetInstituteByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	institute, err := database.GetInstituteByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Institute not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch institute"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    institute,
	})
}

// CreateInstituteAPI registers a new institute
func CreateInstituteAPI(c *fiber.Ctx, db *sql.DB) error {
	var req InstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	institute := req.toModel()
	if err := database.CreateInstitute(db, institute); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create institute"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    institute,
	})
}

// UpdateInstituteAPI updates an institute's profile
func UpdateInstituteAPI(c *fiber.Ctx, db *sql.DB) error {
	var req InstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	institute := req.toModel()
	institute.ID = c.Params("id")
	if err := database.UpdateInstitute(db, institute); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Institute not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update institute"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    institute,
	})
}
