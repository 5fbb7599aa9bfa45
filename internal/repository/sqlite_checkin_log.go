package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
)

// SQLiteCheckInLogRepo implements CheckInLogRepo using a SQLite database.
type SQLiteCheckInLogRepo struct {
	db db.DBTX
}

func NewSQLiteCheckInLogRepo(conn db.DBTX) *SQLiteCheckInLogRepo {
	return &SQLiteCheckInLogRepo{db: conn}
}

func (r *SQLiteCheckInLogRepo) Create(ctx context.Context, rec *domain.CheckInRecord) error {
	query := `INSERT INTO check_in_log (id, checked_at, temperature, temperature_unit, feeling_better,
		advice, minimum_mg, maximum_mg, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		formatTime(rec.CheckedAt),
		rec.Temperature.Value,
		string(rec.Temperature.Unit),
		boolToInt(rec.FeelingBetter),
		string(rec.Advice),
		nullableFloat(rec.MinimumMg),
		nullableFloat(rec.MaximumMg),
		formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting check-in record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *SQLiteCheckInLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CheckInRecord, error) {
	query := `SELECT id, checked_at, temperature, temperature_unit, feeling_better, advice,
		minimum_mg, maximum_mg, created_at
		FROM check_in_log ORDER BY checked_at DESC, created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing check-in records: %w", err)
	}
	defer rows.Close()

	var out []*domain.CheckInRecord
	for rows.Next() {
		var rec domain.CheckInRecord
		var checkedAt, unit, advice, createdAt string
		var better int
		var lo, hi sql.NullFloat64
		if err := rows.Scan(&rec.ID, &checkedAt, &rec.Temperature.Value, &unit, &better, &advice,
			&lo, &hi, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		rec.Temperature.Unit = domain.TemperatureUnit(unit)
		rec.FeelingBetter = intToBool(better)
		rec.Advice = domain.AdviceKind(advice)
		rec.MinimumMg = floatPtr(lo)
		rec.MaximumMg = floatPtr(hi)

		if rec.CheckedAt, err = parseTime("checked_at", checkedAt); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-in records: %w", err)
	}
	return out, nil
}

func (r *SQLiteCheckInLogRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM check_in_log`); err != nil {
		return fmt.Errorf("deleting check-in records: %w", err)
	}
	return nil
}
