package cli

import (
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and presentation helpers used by CLI commands.
type App struct {
	CheckIns service.CheckInService
	Intakes  service.IntakeService
	Patient  service.PatientService
	Clock    service.ClockService
	Status   service.StatusService

	// Times renders instants and durations in output.
	Times dosing.TimeFormatter

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "dosewise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dosewise",
		Short:         "Paracetamol dosing advisor for fever check-ins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCheckInCmd(app),
		newDoseCmd(app),
		newPatientCmd(app),
		newClockCmd(app),
		newStatusCmd(app),
		newDashboardCmd(app),
	)

	return root
}
