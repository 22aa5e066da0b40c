package database

import (
	"database/sql"
	"fmt"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

const blueprintColumns = `b.id, b.institute_id, b.name, b.class, b.section,
			  b.subjects, b.grading_rules, b.manual_stats, b.created_at, b.updated_at`

func scanBlueprint(scanner interface{ Scan(...interface{}) error }) (*models.ExamBlueprint, error) {
	bp := &models.ExamBlueprint{}
	err := scanner.Scan(
		&bp.ID, &bp.InstituteID, &bp.Name, &bp.Class, &bp.Section,
		&bp.Subjects, &bp.GradingRules, &bp.Stats, &bp.CreatedAt, &bp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func GetBlueprintByID(db *sql.DB, blueprintID string) (*models.ExamBlueprint, error) {
	query := `SELECT ` + blueprintColumns + ` FROM exam_blueprints b WHERE b.id = $1 AND b.deleted_at IS NULL`
	return scanBlueprint(db.QueryRow(query, blueprintID))
}

func GetBlueprints(db *sql.DB, instituteID string) ([]*models.ExamBlueprint, error) {
	query := `SELECT ` + blueprintColumns + ` FROM exam_blueprints b WHERE b.deleted_at IS NULL`

	var args []interface{}
	if instituteID != "" {
		query += " AND b.institute_id = $1"
		args = append(args, instituteID)
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blueprints []*models.ExamBlueprint
	for rows.Next() {
		bp, err := scanBlueprint(rows)
		if err != nil {
			continue
		}
		blueprints = append(blueprints, bp)
	}
	return blueprints, nil
}

func CreateBlueprint(db *sql.DB, bp *models.ExamBlueprint) error {
	query := `INSERT INTO exam_blueprints (institute_id, name, class, section, subjects, grading_rules, manual_stats)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		bp.InstituteID, bp.Name, bp.Class, bp.Section, bp.Subjects, bp.GradingRules, bp.Stats,
	).Scan(&bp.ID, &bp.CreatedAt, &bp.UpdatedAt)
}

func UpdateBlueprint(db *sql.DB, bp *models.ExamBlueprint) error {
	query := `UPDATE exam_blueprints SET name = $2, class = $3, section = $4,
			  subjects = $5, grading_rules = $6, manual_stats = $7, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query,
		bp.ID, bp.Name, bp.Class, bp.Section, bp.Subjects, bp.GradingRules, bp.Stats,
	).Scan(&bp.UpdatedAt)
}

func DeleteBlueprint(db *sql.DB, blueprintID string) error {
	result, err := db.Exec(`UPDATE exam_blueprints SET deleted_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`, blueprintID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const resultColumns = `r.id, r.blueprint_id, r.student_id, r.marks, r.stats, r.created_at, r.updated_at`

func scanResult(scanner interface{ Scan(...interface{}) error }) (*models.StudentResult, error) {
	result := &models.StudentResult{}
	err := scanner.Scan(
		&result.ID, &result.BlueprintID, &result.StudentID,
		&result.Marks, &result.Stats, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetResultByID(db *sql.DB, resultID string) (*models.StudentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM student_results r WHERE r.id = $1 AND r.deleted_at IS NULL`
	return scanResult(db.QueryRow(query, resultID))
}

// GetResult returns the result of one student for one blueprint.
func GetResult(db *sql.DB, blueprintID, studentID string) (*models.StudentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM student_results r
			  WHERE r.blueprint_id = $1 AND r.student_id = $2 AND r.deleted_at IS NULL`
	return scanResult(db.QueryRow(query, blueprintID, studentID))
}

// GetResultsByStudent returns all results of a student, newest exam first.
func GetResultsByStudent(db *sql.DB, studentID string) ([]*models.StudentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM student_results r
			  WHERE r.student_id = $1 AND r.deleted_at IS NULL
			  ORDER BY r.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.StudentResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// GetResultsByBlueprint returns all saved results for one exam blueprint.
func GetResultsByBlueprint(db *sql.DB, blueprintID string) ([]*models.StudentResult, error) {
	query := `SELECT ` + resultColumns + ` FROM student_results r
			  WHERE r.blueprint_id = $1 AND r.deleted_at IS NULL
			  ORDER BY r.created_at`

	rows, err := db.Query(query, blueprintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.StudentResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// UpsertResults saves a batch of student results for a blueprint in one
// transaction, replacing existing rows for the same blueprint + student.
func UpsertResults(db *sql.DB, results []*models.StudentResult) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO student_results (blueprint_id, student_id, marks, stats)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (blueprint_id, student_id) DO UPDATE SET
				marks = EXCLUDED.marks,
				stats = EXCLUDED.stats,
				updated_at = NOW(),
				deleted_at = NULL
			  RETURNING id`

	for _, result := range results {
		err := tx.QueryRow(query, result.BlueprintID, result.StudentID, result.Marks, result.Stats).
			Scan(&result.ID)
		if err != nil {
			return fmt.Errorf("failed to save result for student %s: %v", result.StudentID, err)
		}
	}

	return tx.Commit()
}
