package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

// FormatPatient renders the patient card.
func FormatPatient(p domain.Patient) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name:"), Bold(p.Name)))
	age := fmt.Sprintf("%d", p.Age)
	if !dosing.IsAgeEligible(p.Age) {
		age += StyleRed.Render(fmt.Sprintf("  (under %d, no self-dosing)", dosing.MinimumEligibleAge))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Age:"), age))

	b.WriteString(Dim("Diagnoses:"))
	if len(p.Diagnoses) == 0 {
		b.WriteString(" " + Dim("none") + "\n")
	} else {
		b.WriteString("\n")
		for _, d := range p.Diagnoses.Sorted() {
			b.WriteString("  " + DiagnosisPill(d) + "\n")
		}
	}

	return RenderBox("Patient", b.String())
}
