package cli

import (
	"fmt"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	var temperature float64
	var feelingBetter bool

	cmd := &cobra.Command{
		Use:   "check-in",
		Short: "Report a temperature and get dosing advice",
		Example: `  dosewise check-in --temp 38.7
  dosewise check-in --temp 38.1 --better`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("temp") {
				if !app.interactive() {
					return fmt.Errorf("--temp is required")
				}
				var input string
				if err := checkInForm(&input, &feelingBetter).Run(); err != nil {
					return err
				}
				v, err := parseDecimal(input)
				if err != nil {
					return err
				}
				temperature = v
			}

			req := contract.NewCheckInRequest(temperature)
			req.FeelingBetter = feelingBetter
			resp, err := app.CheckIns.CheckIn(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCheckIn(resp, app.Times))
			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temp", 0, "Body temperature in °C")
	cmd.Flags().BoolVar(&feelingBetter, "better", false, "Patient feels better than at the last check-in")

	return cmd
}
