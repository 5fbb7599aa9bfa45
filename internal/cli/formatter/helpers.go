package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatMg renders an amount like "500mg" or "562.5mg".
func FormatMg(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + "mg"
}

// FormatTemperature renders a temperature like "38.5°C".
func FormatTemperature(t domain.Temperature) string {
	return strconv.FormatFloat(t.Value, 'f', 1, 64) + "°C"
}

// RelativeTimeFrom describes t against the virtual now, e.g. "2h 15m ago"
// or "in 45m".
func RelativeTimeFrom(t, now time.Time) string {
	diff := t.Sub(now)
	if diff > -time.Minute && diff < time.Minute {
		return "now"
	}
	if diff < 0 {
		return compactDuration(-diff) + " ago"
	}
	return "in " + compactDuration(diff)
}

func compactDuration(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := int(d / (24 * time.Hour))
	h := int(d%(24*time.Hour)) / int(time.Hour)
	m := int(d%time.Hour) / int(time.Minute)

	switch {
	case days > 0 && h > 0:
		return fmt.Sprintf("%dd %dh", days, h)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// DiagnosisPill renders a diagnosis colored by severity.
func DiagnosisPill(d domain.Diagnosis) string {
	label := fmt.Sprintf("%s:%s", d.Kind, d.Severity)
	switch d.Severity {
	case domain.SeveritySevere:
		return StyleRed.Render("● " + label)
	case domain.SeverityModerate:
		return StyleYellow.Render("● " + label)
	default:
		return StyleGreen.Render("● " + label)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
