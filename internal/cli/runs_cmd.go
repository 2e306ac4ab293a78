package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ewblake/soiree/internal/cli/formatter"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Runs == nil {
				return fmt.Errorf("run history is not available")
			}

			runs, err := app.Runs.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("No runs recorded yet."))
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.StartedAt.Local().Format("2006-01-02 15:04"),
					r.EventName,
					r.EventDate.Format("2006-01-02"),
					strconv.Itoa(r.ItemCount),
					strconv.Itoa(r.FailedCount),
					r.OutputPath,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"Started", "Event", "Event Date", "Items", "Failed", "Output"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to show")
	return cmd
}
