package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

// FormatSuggestion renders "500mg" for an exact dose and "500mg - 1000mg"
// for a range.
func FormatSuggestion(s domain.DoseSuggestion) string {
	switch v := s.(type) {
	case domain.ExactDose:
		return FormatMg(v.Dosage.Amount)
	case domain.DoseRange:
		return FormatMg(v.Minimum.Amount) + " - " + FormatMg(v.Maximum.Amount)
	default:
		lo, hi := s.Bounds()
		if lo == hi {
			return FormatMg(lo.Amount)
		}
		return FormatMg(lo.Amount) + " - " + FormatMg(hi.Amount)
	}
}

// AdviceMessage is the sentence shown to the patient for a piece of advice.
// rt is only used for a too-early check-in and may be nil.
func AdviceMessage(a domain.Advice, rt *dosing.FormattedRemainingTime) string {
	switch v := a.(type) {
	case domain.NoTreatmentNeeded:
		return "Your temperature is fine. No treatment is needed."
	case domain.StopTreatment:
		return "Glad you feel better. You can stop the treatment."
	case domain.SeekMedicalAttention:
		return "Please seek medical attention."
	case domain.MaxLimitReached:
		return "You have reached the daily paracetamol limit. Do not take more for now."
	case domain.TooEarlyCheckIn:
		if rt == nil {
			return "It is too early to check in again."
		}
		return fmt.Sprintf("It is too early to check in again. Wait %s, until %s.", rt.Remaining, rt.Until)
	case domain.TakeDose:
		return fmt.Sprintf("Take %s of paracetamol.", FormatSuggestion(v.Suggestion))
	default:
		return string(a.Kind())
	}
}

// FormatCheckIn renders the outcome of a check-in.
func FormatCheckIn(resp *contract.CheckInResponse, tf dosing.TimeFormatter) string {
	var b strings.Builder
	kind := resp.Advice.Kind()

	b.WriteString(AdviceIndicator(kind) + "\n\n")
	b.WriteString(AdviceColor(kind).Render(AdviceMessage(resp.Advice, resp.RemainingTime)) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Checked at:"), tf.FormatInstant(resp.CheckedAt)))
	b.WriteString(fmt.Sprintf("%s %s left today\n", Dim("Budget:"), FormatMg(resp.RemainingBudgetMg)))

	return RenderBox("Check-in", b.String())
}

// FormatDosageRecorded confirms an intake and when the next one is allowed.
func FormatDosageRecorded(resp *contract.RecordDosageResponse, tf dosing.TimeFormatter) string {
	var b strings.Builder
	in := resp.Intake

	b.WriteString(StyleGreen.Render(fmt.Sprintf("✔ Recorded %s %s", FormatMg(in.Administration.Dosage.Amount), in.Administration.Medication)))
	b.WriteString(Dim(fmt.Sprintf(" at %s", tf.FormatInstant(in.TimeOfIntake))) + "\n")
	b.WriteString(fmt.Sprintf("  Next check-in in %s, at %s\n",
		Bold(resp.RemainingTime.Remaining), resp.RemainingTime.Until))
	return b.String()
}
