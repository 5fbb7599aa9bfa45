package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/dosing"
)

// InstantLayout renders instants as "14:00:00 23/07/2023".
const InstantLayout = "15:04:05 02/01/2006"

// TimeFormatter renders instants in a fixed zone and durations as HH:MM.
type TimeFormatter struct {
	loc *time.Location
}

var _ dosing.TimeFormatter = TimeFormatter{}

// NewTimeFormatter formats in loc; nil means the local zone.
func NewTimeFormatter(loc *time.Location) TimeFormatter {
	if loc == nil {
		loc = time.Local
	}
	return TimeFormatter{loc: loc}
}

func (f TimeFormatter) FormatInstant(t time.Time) string {
	loc := f.loc
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(InstantLayout)
}

// FormatDuration renders whole hours and minutes, zero padded. Seconds are
// truncated toward zero, so only a duration of at least a minute below zero
// gets a leading "-".
func (TimeFormatter) FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Minute)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
