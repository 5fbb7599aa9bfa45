package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
)

const defaultPatientID = "default"

// SQLitePatientRepo stores the single session patient.
type SQLitePatientRepo struct {
	db db.DBTX
}

func NewSQLitePatientRepo(conn db.DBTX) *SQLitePatientRepo {
	return &SQLitePatientRepo{db: conn}
}

func (r *SQLitePatientRepo) Get(ctx context.Context) (*domain.Patient, error) {
	var p domain.Patient
	err := r.db.QueryRowContext(ctx, `SELECT name, age FROM patient WHERE id = ?`, defaultPatientID).
		Scan(&p.Name, &p.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("patient: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning patient: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, severity FROM patient_diagnoses WHERE patient_id = ?`, defaultPatientID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnoses: %w", err)
	}
	defer rows.Close()

	p.Diagnoses = domain.NewDiagnosisSet()
	for rows.Next() {
		var kind, severity string
		if err := rows.Scan(&kind, &severity); err != nil {
			return nil, fmt.Errorf("scanning diagnosis: %w", err)
		}
		p.Diagnoses[domain.Diagnosis{Kind: domain.DiagnosisKind(kind), Severity: domain.SeverityLevel(severity)}] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diagnoses: %w", err)
	}
	return &p, nil
}

func (r *SQLitePatientRepo) Save(ctx context.Context, p domain.Patient) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO patient (id, name, age, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, age = excluded.age, updated_at = excluded.updated_at`,
		defaultPatientID, p.Name, p.Age, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting patient: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM patient_diagnoses WHERE patient_id = ?`, defaultPatientID); err != nil {
		return fmt.Errorf("clearing diagnoses: %w", err)
	}
	for _, d := range p.Diagnoses.Sorted() {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO patient_diagnoses (patient_id, kind, severity) VALUES (?, ?, ?)`,
			defaultPatientID, string(d.Kind), string(d.Severity),
		)
		if err != nil {
			return fmt.Errorf("inserting diagnosis %s: %w", d, err)
		}
	}
	return nil
}
