package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS patient (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		name       TEXT NOT NULL DEFAULT '',
		age        INTEGER NOT NULL CHECK(age >= 0),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS patient_diagnoses (
		patient_id TEXT NOT NULL REFERENCES patient(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('malnourishment','dehydration')),
		severity   TEXT NOT NULL CHECK(severity IN ('mild','moderate','severe')),
		PRIMARY KEY (patient_id, kind, severity)
	)`,

	`CREATE TABLE IF NOT EXISTS dose_intakes (
		id                 TEXT PRIMARY KEY,
		medication         TEXT NOT NULL DEFAULT 'paracetamol',
		amount             REAL NOT NULL CHECK(amount >= 0),
		unit               TEXT NOT NULL DEFAULT 'mg',
		application_method TEXT NOT NULL DEFAULT 'oral',
		time_of_intake     TEXT NOT NULL,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dose_intakes_time ON dose_intakes(time_of_intake)`,

	`CREATE TABLE IF NOT EXISTS virtual_clock (
		id  TEXT PRIMARY KEY DEFAULT 'default',
		now TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS check_in_log (
		id               TEXT PRIMARY KEY,
		checked_at       TEXT NOT NULL,
		temperature      REAL NOT NULL,
		temperature_unit TEXT NOT NULL DEFAULT 'celsius',
		feeling_better   INTEGER NOT NULL DEFAULT 0,
		advice           TEXT NOT NULL
		                 CHECK(advice IN ('no_treatment_needed','stop_treatment','seek_medical_attention',
		                                  'max_limit_reached','too_early_check_in','take_dose')),
		minimum_mg       REAL,
		maximum_mg       REAL,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_check_in_log_checked ON check_in_log(checked_at)`,
}
