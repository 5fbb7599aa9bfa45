package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Inspect or move the session clock",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the session time",
			RunE: func(cmd *cobra.Command, args []string) error {
				now, err := app.Clock.Now(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), app.Times.FormatInstant(now))
				return nil
			},
		},
		newClockAdvanceCmd(app),
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default patient, clear history and resync the clock",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Clock.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Session reset.")
				return nil
			},
		},
	)

	return cmd
}

func newClockAdvanceCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move the session clock forward",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := app.Clock.AdvanceBy(cmd.Context(), time.Duration(minutes)*time.Minute)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clock is now %s.\n", app.Times.FormatInstant(now))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes to advance")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
