package database

import (
	"database/sql"
	"fmt"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// StudentFilters represents filtering options for student listings
type StudentFilters struct {
	InstituteID string
	Class       string
	Section     string
	Search      string
	Limit       int
	Offset      int
}

const studentColumns = `s.id, s.institute_id, s.name, s.class, s.section, s.roll_no,
			  s.father_name, s.mother_name, s.dob, s.photo_url, s.is_active, s.created_at, s.updated_at`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	student := &models.Student{}
	err := scanner.Scan(
		&student.ID, &student.InstituteID, &student.Name, &student.Class, &student.Section,
		&student.RollNo, &student.FatherName, &student.MotherName, &student.DOB,
		&student.PhotoURL, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1 AND s.deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, studentID))
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.is_active = true AND s.deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if filters.InstituteID != "" {
		query += fmt.Sprintf(" AND s.institute_id = $%d", argIndex)
		args = append(args, filters.InstituteID)
		argIndex++
	}
	if filters.Class != "" {
		query += fmt.Sprintf(" AND s.class = $%d", argIndex)
		args = append(args, filters.Class)
		argIndex++
	}
	if filters.Section != "" {
		query += fmt.Sprintf(" AND s.section = $%d", argIndex)
		args = append(args, filters.Section)
		argIndex++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.roll_no ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	query += " ORDER BY s.class, s.section, s.roll_no, s.name"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
		argIndex++
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, student)
	}
	return students, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (institute_id, name, class, section, roll_no,
			  father_name, mother_name, dob, photo_url, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		student.InstituteID, student.Name, student.Class, student.Section, student.RollNo,
		student.FatherName, student.MotherName, student.DOB, student.PhotoURL,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET name = $2, class = $3, section = $4, roll_no = $5,
			  father_name = $6, mother_name = $7, dob = $8, photo_url = $9, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query,
		student.ID, student.Name, student.Class, student.Section, student.RollNo,
		student.FatherName, student.MotherName, student.DOB, student.PhotoURL,
	).Scan(&student.UpdatedAt)
}

func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, deleted_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`, studentID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
