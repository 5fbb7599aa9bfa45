package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AdviceColor maps an advice kind to its urgency color.
func AdviceColor(kind domain.AdviceKind) lipgloss.Style {
	switch kind {
	case domain.AdviceSeekMedicalAttention, domain.AdviceMaxLimitReached:
		return StyleRed
	case domain.AdviceTooEarlyCheckIn:
		return StyleYellow
	case domain.AdviceTakeDose:
		return StyleBlue
	case domain.AdviceNoTreatmentNeeded, domain.AdviceStopTreatment:
		return StyleGreen
	default:
		return StyleDim
	}
}

// AdviceIndicator returns a short colored label such as "● TAKE DOSE".
func AdviceIndicator(kind domain.AdviceKind) string {
	var label string
	switch kind {
	case domain.AdviceSeekMedicalAttention:
		label = "▲ SEEK MEDICAL ATTENTION"
	case domain.AdviceMaxLimitReached:
		label = "■ DAILY LIMIT REACHED"
	case domain.AdviceTooEarlyCheckIn:
		label = "◔ TOO EARLY"
	case domain.AdviceTakeDose:
		label = "● TAKE DOSE"
	case domain.AdviceStopTreatment:
		label = "✔ STOP TREATMENT"
	case domain.AdviceNoTreatmentNeeded:
		label = "✔ NO TREATMENT NEEDED"
	default:
		label = "● " + strings.ToUpper(string(kind))
	}
	return AdviceColor(kind).Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
