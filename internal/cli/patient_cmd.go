package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPatientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Show and edit the patient",
	}

	cmd.AddCommand(
		newPatientShowCmd(app),
		newPatientSetAgeCmd(app),
		newPatientDiagnosisCmd(app, "add-diagnosis", "Add a diagnosis, e.g. dehydration:severe", true),
		newPatientDiagnosisCmd(app, "remove-diagnosis", "Remove a diagnosis", false),
	)

	return cmd
}

func newPatientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Patient.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPatient(*p))
			return nil
		},
	}
}

func newPatientSetAgeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-age AGE",
		Short: "Set the patient's age in years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("age must be a whole number of years: %q", args[0])
			}
			p, err := app.Patient.SetAge(cmd.Context(), age)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Age set to %d.\n", p.Age)
			return nil
		},
	}
}

func newPatientDiagnosisCmd(app *App, use, short string, add bool) *cobra.Command {
	var diagnosis diagnosisValue

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if add {
				if _, err := app.Patient.AddDiagnosis(ctx, diagnosis.d); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", diagnosis.d)
				return nil
			}
			if _, err := app.Patient.RemoveDiagnosis(ctx, diagnosis.d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", diagnosis.d)
			return nil
		},
	}

	cmd.Flags().Var(&diagnosis, "diagnosis", "Diagnosis as kind:severity (malnourishment|dehydration : mild|moderate|severe)")
	_ = cmd.MarkFlagRequired("diagnosis")

	return cmd
}
