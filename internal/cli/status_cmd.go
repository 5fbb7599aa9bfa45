package cli

import (
	"fmt"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the session overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatStatus(resp, app.Times))
			if history && len(resp.Intakes) > 0 {
				fmt.Fprintln(out, formatter.Header("History"))
				fmt.Fprintln(out, formatter.FormatHistoryLines(resp.Intakes, app.Times))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Also print every recorded intake")

	return cmd
}
