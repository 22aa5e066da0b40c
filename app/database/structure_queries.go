package database

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

const structureColumns = `fs.id, fs.institute_id, fs.class, fs.breakdown, fs.total_amount,
			  fs.is_active, fs.created_at, fs.updated_at`

func scanStructure(scanner interface{ Scan(...interface{}) error }) (*models.FeeStructure, error) {
	structure := &models.FeeStructure{}
	var breakdown []byte
	err := scanner.Scan(
		&structure.ID, &structure.InstituteID, &structure.Class, &breakdown,
		&structure.TotalAmount, &structure.IsActive, &structure.CreatedAt, &structure.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	structure.Breakdown = breakdown
	return structure, nil
}

// GetFeeStructure returns the active monthly structure for a class, or
// sql.ErrNoRows when the class has none (an empty-state for callers, not an
// error condition).
func GetFeeStructure(db *sql.DB, instituteID, class string) (*models.FeeStructure, error) {
	query := `SELECT ` + structureColumns + ` FROM fee_structures fs
			  WHERE fs.institute_id = $1 AND fs.class = $2 AND fs.is_active = true AND fs.deleted_at IS NULL`
	return scanStructure(db.QueryRow(query, instituteID, class))
}

func GetFeeStructures(db *sql.DB, instituteID string) ([]*models.FeeStructure, error) {
	query := `SELECT ` + structureColumns + ` FROM fee_structures fs
			  WHERE fs.institute_id = $1 AND fs.deleted_at IS NULL ORDER BY fs.class`

	rows, err := db.Query(query, instituteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		structure, err := scanStructure(rows)
		if err != nil {
			continue
		}
		structures = append(structures, structure)
	}
	return structures, nil
}

// UpsertFeeStructure creates or replaces the monthly structure for a class.
func UpsertFeeStructure(db *sql.DB, structure *models.FeeStructure) error {
	query := `INSERT INTO fee_structures (institute_id, class, breakdown, total_amount, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  ON CONFLICT (institute_id, class) DO UPDATE SET
				breakdown = EXCLUDED.breakdown,
				total_amount = EXCLUDED.total_amount,
				is_active = true,
				updated_at = NOW(),
				deleted_at = NULL
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		structure.InstituteID, structure.Class, []byte(structure.Breakdown), structure.TotalAmount,
	).Scan(&structure.ID, &structure.CreatedAt, &structure.UpdatedAt)
}
