package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed width and always UTC so stored times sort as strings
// and keep the virtual clock's sub-second precision.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// nullableFloat converts a *float64 to a value suitable for SQLite storage.
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatPtr returns nil for a NULL column.
func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTime(time.Now())
}
