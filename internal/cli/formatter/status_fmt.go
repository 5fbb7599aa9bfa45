package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

const statusBudgetBarWidth = 20

// FormatStatus renders the session overview: clock, budget, next intake and
// recent check-ins.
func FormatStatus(resp *contract.StatusResponse, tf dosing.TimeFormatter) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n", Dim("Patient:"), Bold(resp.Patient.Name), Dim(fmt.Sprintf("age %d", resp.Patient.Age))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Clock:"), tf.FormatInstant(resp.Now)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Last 24h:"), RenderBudget(resp.TotalLast24hMg, dosing.MaxDailyDoseMg, statusBudgetBarWidth)))

	switch {
	case resp.NextAllowedIntake == nil:
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Next intake:"), StyleGreen.Render("any time")))
	case resp.NextAllowedIntake.Duration <= 0:
		b.WriteString(fmt.Sprintf("%s %s %s\n", Dim("Next intake:"), StyleGreen.Render("allowed now"),
			Dim("(since "+resp.NextAllowedIntake.Until+")")))
	default:
		b.WriteString(fmt.Sprintf("%s in %s, at %s\n", Dim("Next intake:"),
			StyleYellow.Render(resp.NextAllowedIntake.Remaining), resp.NextAllowedIntake.Until))
	}

	if len(resp.RecentCheckIns) > 0 {
		b.WriteString("\n" + Header("Recent check-ins") + "\n")
		rows := make([][]string, 0, len(resp.RecentCheckIns))
		for _, rec := range resp.RecentCheckIns {
			dose := Dim("--")
			if rec.MinimumMg != nil && rec.MaximumMg != nil {
				dose = FormatMg(*rec.MinimumMg)
				if *rec.MaximumMg != *rec.MinimumMg {
					dose += " - " + FormatMg(*rec.MaximumMg)
				}
			}
			rows = append(rows, []string{
				tf.FormatInstant(rec.CheckedAt),
				FormatTemperature(rec.Temperature),
				AdviceIndicator(rec.Advice),
				dose,
			})
		}
		b.WriteString(RenderTable([]string{"AT", "TEMP", "ADVICE", "DOSE"}, rows))
	}

	return RenderBox("Status", b.String())
}
