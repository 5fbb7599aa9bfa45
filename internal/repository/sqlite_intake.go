package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
)

// SQLiteIntakeRepo implements IntakeRepo using a SQLite database.
type SQLiteIntakeRepo struct {
	db db.DBTX
}

func NewSQLiteIntakeRepo(conn db.DBTX) *SQLiteIntakeRepo {
	return &SQLiteIntakeRepo{db: conn}
}

const intakeColumns = `id, medication, amount, unit, application_method, time_of_intake`

func (r *SQLiteIntakeRepo) Create(ctx context.Context, in *domain.DoseIntake) error {
	query := `INSERT INTO dose_intakes (` + intakeColumns + `, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		in.ID,
		string(in.Administration.Medication),
		in.Administration.Dosage.Amount,
		string(in.Administration.Dosage.Unit),
		string(in.Administration.ApplicationMethod),
		formatTime(in.TimeOfIntake),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting dose intake: %w", err)
	}
	return nil
}

func (r *SQLiteIntakeRepo) List(ctx context.Context) ([]domain.DoseIntake, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+intakeColumns+` FROM dose_intakes ORDER BY time_of_intake, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing dose intakes: %w", err)
	}
	defer rows.Close()
	return scanIntakes(rows)
}

// ListSince returns intakes at or after since, ordered by time of intake.
func (r *SQLiteIntakeRepo) ListSince(ctx context.Context, since time.Time) ([]domain.DoseIntake, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+intakeColumns+` FROM dose_intakes WHERE time_of_intake >= ? ORDER BY time_of_intake, created_at`,
		formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing dose intakes since: %w", err)
	}
	defer rows.Close()
	return scanIntakes(rows)
}

func (r *SQLiteIntakeRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dose_intakes`); err != nil {
		return fmt.Errorf("deleting dose intakes: %w", err)
	}
	return nil
}

func scanIntakes(rows *sql.Rows) ([]domain.DoseIntake, error) {
	var out []domain.DoseIntake
	for rows.Next() {
		var in domain.DoseIntake
		var medication, unit, method, at string
		if err := rows.Scan(&in.ID, &medication, &in.Administration.Dosage.Amount, &unit, &method, &at); err != nil {
			return nil, fmt.Errorf("scanning dose intake row: %w", err)
		}
		in.Administration.Medication = domain.Medication(medication)
		in.Administration.Dosage.Unit = domain.DosageUnit(unit)
		in.Administration.ApplicationMethod = domain.ApplicationMethod(method)

		t, err := parseTime("time_of_intake", at)
		if err != nil {
			return nil, err
		}
		in.TimeOfIntake = t
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dose intakes: %w", err)
	}
	return out, nil
}
