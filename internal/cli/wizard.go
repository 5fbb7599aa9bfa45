package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dosewiseHuhTheme returns a huh theme matching the formatter palette.
func dosewiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// checkInForm asks for a temperature and whether the patient feels better.
func checkInForm(temperature *string, feelingBetter *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Temperature (°C)").
				Placeholder("38.5").
				Value(temperature).
				Validate(validateTemperatureInput),
			huh.NewConfirm().
				Title("Feeling better than at the last check-in?").
				Affirmative("Yes").
				Negative("No").
				Value(feelingBetter),
		),
	).WithTheme(dosewiseHuhTheme()).WithShowHelp(false)
}

// dosageForm asks for the amount of paracetamol taken.
func dosageForm(amount *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Paracetamol taken (mg)").
				Placeholder("500").
				Value(amount).
				Validate(validatePositiveFloat),
		),
	).WithTheme(dosewiseHuhTheme()).WithShowHelp(false)
}

// parseDecimal accepts "38.5" and "38,5".
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func validateTemperatureInput(s string) error {
	if _, err := parseDecimal(s); err != nil {
		return fmt.Errorf("enter a temperature such as 38.5")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := parseDecimal(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
