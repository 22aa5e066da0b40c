package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ DEFAULT now(),
			UNIQUE(user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS institutes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			logo_url TEXT DEFAULT '',
			affiliation TEXT DEFAULT '',
			address TEXT DEFAULT '',
			landmark TEXT DEFAULT '',
			district TEXT DEFAULT '',
			state TEXT DEFAULT '',
			pincode TEXT DEFAULT '',
			mobile TEXT DEFAULT '',
			email TEXT DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			institute_id UUID NOT NULL REFERENCES institutes(id),
			name TEXT NOT NULL,
			class TEXT NOT NULL,
			section TEXT DEFAULT '',
			roll_no TEXT DEFAULT '',
			father_name TEXT DEFAULT '',
			mother_name TEXT DEFAULT '',
			dob DATE,
			photo_url TEXT DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			institute_id UUID NOT NULL REFERENCES institutes(id),
			class TEXT NOT NULL,
			breakdown JSONB NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (institute_id, class)
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			institute_id UUID NOT NULL REFERENCES institutes(id),
			fee_type VARCHAR(20) NOT NULL,
			month_year TEXT DEFAULT '',
			breakdown JSONB,
			items TEXT,
			amount_breakdown TEXT,
			total_amount NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
			payment_id TEXT,
			receipt_no TEXT UNIQUE,
			paid_at TIMESTAMPTZ,
			collected_by TEXT,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student ON fees (student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_status ON fees (status)`,
		`CREATE TABLE IF NOT EXISTS exam_blueprints (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			institute_id UUID NOT NULL REFERENCES institutes(id),
			name TEXT NOT NULL,
			class TEXT NOT NULL,
			section TEXT DEFAULT '',
			subjects JSONB NOT NULL,
			grading_rules JSONB NOT NULL DEFAULT '[]',
			manual_stats JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS student_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			blueprint_id UUID NOT NULL REFERENCES exam_blueprints(id),
			student_id UUID NOT NULL REFERENCES students(id),
			marks JSONB NOT NULL DEFAULT '[]',
			stats JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (blueprint_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS receipt_sequences (
			institute_id UUID PRIMARY KEY REFERENCES institutes(id),
			year INT NOT NULL,
			last_number INT NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := addCollectedByColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addCollectedByColumn covers databases created before counter collection
// recorded the collector's name.
func addCollectedByColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'fees'
				AND column_name = 'collected_by'
			) THEN
				ALTER TABLE fees ADD COLUMN collected_by TEXT;
				RAISE NOTICE 'Added collected_by column to fees';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for collected_by column: %v", err)
		return err
	}
	return nil
}
