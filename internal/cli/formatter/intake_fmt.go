package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

// FormatIntakes renders the intake history newest first. Rows outside the
// dose window ending at now are dimmed.
func FormatIntakes(intakes []domain.DoseIntake, now time.Time, tf dosing.TimeFormatter) string {
	if len(intakes) == 0 {
		return Dim("No intakes recorded.") + "\n"
	}

	windowStart := now.Add(-dosing.DoseWindow)
	rows := make([][]string, 0, len(intakes))
	for i := len(intakes) - 1; i >= 0; i-- {
		in := intakes[i]
		row := []string{
			TruncID(in.ID),
			FormatMg(in.Administration.Dosage.Amount),
			string(in.Administration.Medication),
			tf.FormatInstant(in.TimeOfIntake),
			RelativeTimeFrom(in.TimeOfIntake, now),
		}
		if in.TimeOfIntake.Before(windowStart) {
			for j := 1; j < len(row); j++ {
				row[j] = Dim(row[j])
			}
		}
		rows = append(rows, row)
	}
	return RenderTable([]string{"ID", "DOSE", "MEDICATION", "TAKEN AT", "WHEN"}, rows)
}

// FormatHistoryLines renders one "500mg at 14:00:00 23/07/2023" line per
// intake, oldest first.
func FormatHistoryLines(intakes []domain.DoseIntake, tf dosing.TimeFormatter) string {
	lines := make([]string, 0, len(intakes))
	for _, in := range intakes {
		lines = append(lines, FormatMg(in.Administration.Dosage.Amount)+" at "+tf.FormatInstant(in.TimeOfIntake))
	}
	return strings.Join(lines, "\n")
}
