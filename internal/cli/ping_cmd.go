package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewblake/soiree/internal/cli/formatter"
)

func newPingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the completion service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Client.Available(cmd.Context()) {
				fmt.Fprintf(out, "%s %s is reachable\n",
					formatter.StyleGreen.Render("ok:"), app.LLMConfig.BaseURL)
				return nil
			}
			return fmt.Errorf("completion service at %s is not reachable", app.LLMConfig.BaseURL)
		},
	}
}
