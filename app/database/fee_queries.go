package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// FeeFilters represents filtering options for fee listings
type FeeFilters struct {
	StudentID   string
	InstituteID string
	Status      string // "paid", "unpaid", "all"
	FeeType     string
	Limit       int
	Offset      int
}

const feeColumns = `f.id, f.student_id, f.institute_id, f.fee_type, f.month_year,
			  f.breakdown, f.items, f.amount_breakdown, f.total_amount, f.status,
			  f.payment_id, f.receipt_no, f.paid_at, f.collected_by, f.created_at, f.updated_at`

func scanFee(scanner interface{ Scan(...interface{}) error }) (*models.Fee, error) {
	fee := &models.Fee{}
	var breakdown []byte
	err := scanner.Scan(
		&fee.ID, &fee.StudentID, &fee.InstituteID, &fee.FeeType, &fee.MonthYear,
		&breakdown, &fee.Items, &fee.AmountBreakdown, &fee.TotalAmount, &fee.Status,
		&fee.PaymentID, &fee.ReceiptNo, &fee.PaidAt, &fee.CollectedBy, &fee.CreatedAt, &fee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	fee.Breakdown = breakdown
	return fee, nil
}

// CreateFee inserts a new unpaid fee record.
func CreateFee(db *sql.DB, fee *models.Fee) error {
	query := `INSERT INTO fees (student_id, institute_id, fee_type, month_year, breakdown,
			  items, amount_breakdown, total_amount, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'unpaid')
			  RETURNING id, status, created_at, updated_at`

	var breakdown interface{}
	if len(fee.Breakdown) > 0 {
		breakdown = []byte(fee.Breakdown)
	}
	return db.QueryRow(query,
		fee.StudentID, fee.InstituteID, fee.FeeType, fee.MonthYear, breakdown,
		fee.Items, fee.AmountBreakdown, fee.TotalAmount,
	).Scan(&fee.ID, &fee.Status, &fee.CreatedAt, &fee.UpdatedAt)
}

// GetFeeByID returns a fee record.
func GetFeeByID(db *sql.DB, feeID string) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees f WHERE f.id = $1 AND f.deleted_at IS NULL`
	return scanFee(db.QueryRow(query, feeID))
}

// GetFeeContext loads a fee together with its student and institute, the
// full rendering context for a receipt.
func GetFeeContext(db *sql.DB, feeID string) (*models.Fee, *models.Student, *models.Institute, error) {
	fee, err := GetFeeByID(db, feeID)
	if err != nil {
		return nil, nil, nil, err
	}
	student, err := GetStudentByID(db, fee.StudentID)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, nil, err
	}
	institute, err := GetInstituteByID(db, fee.InstituteID)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, nil, err
	}
	return fee, student, institute, nil
}

// GetFees returns fees matching the filters, newest first.
func GetFees(db *sql.DB, filters FeeFilters) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees f
			  JOIN students s ON f.student_id = s.id
			  WHERE s.is_active = true AND f.deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if filters.StudentID != "" {
		query += fmt.Sprintf(" AND f.student_id = $%d", argIndex)
		args = append(args, filters.StudentID)
		argIndex++
	}
	if filters.InstituteID != "" {
		query += fmt.Sprintf(" AND f.institute_id = $%d", argIndex)
		args = append(args, filters.InstituteID)
		argIndex++
	}
	if filters.Status == "paid" || filters.Status == "unpaid" {
		query += fmt.Sprintf(" AND f.status = $%d", argIndex)
		args = append(args, filters.Status)
		argIndex++
	}
	if filters.FeeType != "" {
		query += fmt.Sprintf(" AND f.fee_type = $%d", argIndex)
		args = append(args, filters.FeeType)
		argIndex++
	}

	query += " ORDER BY f.created_at DESC"
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

	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			continue
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

// MarkFeePaid performs the one-time unpaid -> paid transition and allocates
// a receipt number from the institute's sequence in the same transaction.
// It fails if the fee is already paid.
func MarkFeePaid(db *sql.DB, feeID, paymentID string, collectedBy *string) (*models.Fee, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var instituteID string
	var status models.FeeStatus
	err = tx.QueryRow(`SELECT institute_id, status FROM fees WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		feeID).Scan(&instituteID, &status)
	if err != nil {
		return nil, err
	}
	if status == models.FeePaid {
		return nil, fmt.Errorf("fee %s is already paid", feeID)
	}

	receiptNo, err := nextReceiptNumber(tx, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate receipt number: %v", err)
	}

	_, err = tx.Exec(`UPDATE fees SET status = 'paid', payment_id = $2, receipt_no = $3,
			  collected_by = $4, paid_at = NOW(), updated_at = NOW() WHERE id = $1`,
		feeID, paymentID, receiptNo, collectedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to mark fee paid: %v", err)
	}

	fee, err := scanFee(tx.QueryRow(`SELECT `+feeColumns+` FROM fees f WHERE f.id = $1`, feeID))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return fee, nil
}

// nextReceiptNumber allocates the next number from the institute's
// sequence and formats it, e.g. "RCPT-2026-000042". last_number stores the
// most recently allocated number; the sequence restarts each year.
func nextReceiptNumber(tx *sql.Tx, instituteID string) (string, error) {
	year := time.Now().Year()

	var n int
	err := tx.QueryRow(`
		INSERT INTO receipt_sequences (institute_id, year, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (institute_id) DO UPDATE SET
			last_number = CASE WHEN receipt_sequences.year = EXCLUDED.year
							   THEN receipt_sequences.last_number + 1 ELSE 1 END,
			year = EXCLUDED.year
		RETURNING last_number`,
		instituteID, year).Scan(&n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RCPT-%d-%06d", year, n), nil
}

// PublishMonthlyFees creates an unpaid monthly fee for every active student
// of every class that has an active fee structure, skipping students who
// already have a fee for the month label. Returns the number created.
func PublishMonthlyFees(db *sql.DB, monthYear string) (int, error) {
	query := `
		INSERT INTO fees (student_id, institute_id, fee_type, month_year, breakdown, total_amount, status)
		SELECT s.id, s.institute_id, 'monthly', $1, fs.breakdown, fs.total_amount, 'unpaid'
		FROM students s
		JOIN fee_structures fs ON fs.institute_id = s.institute_id AND fs.class = s.class
		WHERE s.is_active = true AND s.deleted_at IS NULL
		  AND fs.is_active = true AND fs.deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM fees f
			WHERE f.student_id = s.id AND f.fee_type = 'monthly'
			  AND f.month_year = $1 AND f.deleted_at IS NULL
		  )`

	result, err := db.Exec(query, monthYear)
	if err != nil {
		return 0, fmt.Errorf("failed to publish monthly fees: %v", err)
	}
	count, _ := result.RowsAffected()
	return int(count), nil
}

// CreateOccasionalBatch creates one occasional fee per student in a single
// transaction. All fees share the delimited items/amounts strings and total.
func CreateOccasionalBatch(db *sql.DB, instituteID string, studentIDs []string, items, amounts string, total float64) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `INSERT INTO fees (student_id, institute_id, fee_type, items, amount_breakdown, total_amount, status)
			  VALUES ($1, $2, 'occasional', $3, $4, $5, 'unpaid')`

	created := 0
	for _, studentID := range studentIDs {
		if _, err := tx.Exec(query, studentID, instituteID, items, amounts, total); err != nil {
			return 0, fmt.Errorf("failed to create occasional fee for student %s: %v", studentID, err)
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

// FeeStats aggregates collection totals for dashboards.
type FeeStats struct {
	TotalFees        int     `json:"total_fees"`
	PaidFees         int     `json:"paid_fees"`
	UnpaidFees       int     `json:"unpaid_fees"`
	TotalPaid        float64 `json:"total_paid"`
	TotalUnpaid      float64 `json:"total_unpaid"`
	StudentsWithFees int     `json:"students_with_fees"`
}

// GetFeeStats returns aggregate fee statistics, optionally scoped to one
// institute.
func GetFeeStats(db *sql.DB, instituteID string) (*FeeStats, error) {
	query := `SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE status = 'paid'),
				COUNT(*) FILTER (WHERE status = 'unpaid'),
				COALESCE(SUM(total_amount) FILTER (WHERE status = 'paid'), 0),
				COALESCE(SUM(total_amount) FILTER (WHERE status = 'unpaid'), 0),
				COUNT(DISTINCT student_id)
			  FROM fees WHERE deleted_at IS NULL`

	var args []interface{}
	if instituteID != "" {
		query += " AND institute_id = $1"
		args = append(args, instituteID)
	}

	stats := &FeeStats{}
	err := db.QueryRow(query, args...).Scan(
		&stats.TotalFees, &stats.PaidFees, &stats.UnpaidFees,
		&stats.TotalPaid, &stats.TotalUnpaid, &stats.StudentsWithFees,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// DeleteFee soft-deletes an unpaid fee. Paid fees are immutable.
func DeleteFee(db *sql.DB, feeID string) error {
	result, err := db.Exec(`UPDATE fees SET deleted_at = NOW()
			  WHERE id = $1 AND status = 'unpaid' AND deleted_at IS NULL`, feeID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
