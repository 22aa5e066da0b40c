package database

import (
	"database/sql"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

const instituteColumns = `i.id, i.name, i.logo_url, i.affiliation, i.address, i.landmark,
			  i.district, i.state, i.pincode, i.mobile, i.email, i.is_active, i.created_at, i.updated_at`

func scanInstitute(scanner interface{ Scan(...interface{}) error }) (*models.Institute, error) {
	inst := &models.Institute{}
	err := scanner.Scan(
		&inst.ID, &inst.Name, &inst.LogoURL, &inst.Affiliation, &inst.Address, &inst.Landmark,
		&inst.District, &inst.State, &inst.Pincode, &inst.Mobile, &inst.Email,
		&inst.IsActive, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func GetInstituteByID(db *sql.DB, instituteID string) (*models.Institute, error) {
	query := `SELECT ` + instituteColumns + ` FROM institutes i WHERE i.id = $1 AND i.deleted_at IS NULL`
	return scanInstitute(db.QueryRow(query, instituteID))
}

func GetInstitutes(db *sql.DB) ([]*models.Institute, error) {
	query := `SELECT ` + instituteColumns + ` FROM institutes i
			  WHERE i.is_active = true AND i.deleted_at IS NULL ORDER BY i.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var institutes []*models.Institute
	for rows.Next() {
		inst, err := scanInstitute(rows)
		if err != nil {
			continue
		}
		institutes = append(institutes, inst)
	}
	return institutes, nil
}

func CreateInstitute(db *sql.DB, inst *models.Institute) error {
	query := `INSERT INTO institutes (name, logo_url, affiliation, address, landmark,
			  district, state, pincode, mobile, email, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		inst.Name, inst.LogoURL, inst.Affiliation, inst.Address, inst.Landmark,
		inst.District, inst.State, inst.Pincode, inst.Mobile, inst.Email,
	).Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
}

func UpdateInstitute(db *sql.DB, inst *models.Institute) error {
	query := `UPDATE institutes SET name = $2, logo_url = $3, affiliation = $4, address = $5,
			  landmark = $6, district = $7, state = $8, pincode = $9, mobile = $10, email = $11,
			  updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query,
		inst.ID, inst.Name, inst.LogoURL, inst.Affiliation, inst.Address,
		inst.Landmark, inst.District, inst.State, inst.Pincode, inst.Mobile, inst.Email,
	).Scan(&inst.UpdatedAt)
}
