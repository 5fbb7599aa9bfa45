package cli

import (
	"fmt"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/spf13/cobra"
)

func newDoseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dose",
		Short: "Record and list paracetamol intakes",
	}

	cmd.AddCommand(
		newDoseRecordCmd(app),
		newDoseListCmd(app),
	)

	return cmd
}

func newDoseRecordCmd(app *App) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an oral paracetamol intake at the current session time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("amount") {
				if !app.interactive() {
					return fmt.Errorf("--amount is required")
				}
				var input string
				if err := dosageForm(&input).Run(); err != nil {
					return err
				}
				v, err := parseDecimal(input)
				if err != nil {
					return err
				}
				amount = v
			}

			resp, err := app.Intakes.RecordDosage(cmd.Context(), contract.RecordDosageRequest{AmountMg: amount})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDosageRecorded(resp, app.Times))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount taken in mg")

	return cmd
}

func newDoseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List intakes in the last 24 hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var intakes []domain.DoseIntake
			var err error
			if all {
				intakes, err = app.Intakes.List(ctx)
			} else {
				intakes, err = app.Intakes.ListWindow(ctx)
			}
			if err != nil {
				return err
			}

			now, err := app.Clock.Now(ctx)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIntakes(intakes, now, app.Times))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include intakes older than 24 hours")

	return cmd
}
