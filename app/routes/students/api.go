package students

import (
	"database/sql"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// StudentRequest is shared by create and update.
type StudentRequest struct {
	InstituteID string `json:"institute_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Section     string `json:"section"`
	RollNo      string `json:"roll_no"`
	FatherName  string `json:"father_name"`
	MotherName  string `json:"mother_name"`
	DOB         string `json:"dob"` // YYYY-MM-DD
	PhotoURL    string `json:"photo_url"`
}

func (r *StudentRequest) toModel() (*models.Student, error) {
	student := &models.Student{
		InstituteID: r.InstituteID,
		Name:        r.Name,
		Class:       r.Class,
		Section:     r.Section,
		RollNo:      r.RollNo,
		FatherName:  r.FatherName,
		MotherName:  r.MotherName,
		PhotoURL:    r.PhotoURL,
	}
	if r.DOB != "" {
		dob, err := time.Parse("2006-01-02", r.DOB)
		if err != nil {
			return nil, err
		}
		student.DOB = &dob
	}
	return student, nil
}

// GetStudentsAPI returns students with optional filtering
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		InstituteID: c.Query("institute_id"),
		Class:       c.Query("class"),
		Section:     c.Query("section"),
		Search:      c.Query("search"),
		Limit:       c.QueryInt("limit"),
		Offset:      c.QueryInt("offset"),
	}

	students, err := database.GetStudents(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
	})
}

// GetStudentByIDAPI returns a specific student
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// CreateStudentAPI enrolls a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD"})
	}
	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// UpdateStudentAPI updates a student's profile
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD"})
	}
	student.ID = c.Params("id")
	if err := database.UpdateStudent(db, student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// DeleteStudentAPI deactivates a student
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"success": true})
}
