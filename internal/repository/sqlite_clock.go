package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/db"
)

// SQLiteClockRepo stores the virtual clock used as "now" by the session.
type SQLiteClockRepo struct {
	db db.DBTX
}

func NewSQLiteClockRepo(conn db.DBTX) *SQLiteClockRepo {
	return &SQLiteClockRepo{db: conn}
}

func (r *SQLiteClockRepo) Get(ctx context.Context) (time.Time, error) {
	var s string
	err := r.db.QueryRowContext(ctx, `SELECT now FROM virtual_clock WHERE id = 'default'`).Scan(&s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, fmt.Errorf("virtual clock: %w", ErrNotFound)
		}
		return time.Time{}, fmt.Errorf("scanning virtual clock: %w", err)
	}
	return parseTime("virtual clock", s)
}

func (r *SQLiteClockRepo) Set(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO virtual_clock (id, now) VALUES ('default', ?)`, formatTime(now))
	if err != nil {
		return fmt.Errorf("setting virtual clock: %w", err)
	}
	return nil
}
