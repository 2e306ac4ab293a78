package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewblake/soiree/internal/llm"
	"github.com/ewblake/soiree/internal/repository"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	LLMConfig llm.Config
	Client    llm.CompletionClient
	Runs      repository.RunRepo
	Logger    *slog.Logger

	// IsInteractive reports whether stdin is a terminal; it gates the
	// event wizard.
	IsInteractive func() bool

	// Now is the generation clock; swappable for tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewRootCmd creates the top-level "soiree" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "soiree",
		Short:         "Generate an AI-enriched event planning workbook from a template",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newPingCmd(app),
		newRunsCmd(app),
	)

	return root
}
