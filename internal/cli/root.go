package cli

import (
	"log/slog"

	"github.com/alexanderramin/merma/internal/config"
	"github.com/alexanderramin/merma/internal/service"
	"github.com/spf13/cobra"
)

// SessionFactory builds a fresh session and its export service, logging
// through logger.
type SessionFactory func(logger *slog.Logger) (service.SessionService, service.ExportService)

// App holds the services and settings used by the commands and the TUI.
type App struct {
	Session service.SessionService
	Exports service.ExportService
	Config  config.Config

	// Logger receives records for the interactive session.
	Logger *slog.Logger

	// Logo is the pre-rendered header banner; empty means plain title.
	Logo string

	// NewSession builds an independent session for one-shot commands.
	NewSession SessionFactory

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// runProgram starts the TUI; replaced in tests.
	runProgram func(app *App) error
}

// NewRootCmd creates the top-level "merma" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "merma",
		Short: "Shrinkage control for whole-chicken sales",
		Long: "merma records the initial stock weight, each sale and the returned weight,\n" +
			"then reports the shrinkage in kg and percent against the 2% threshold.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return app.startTUI()
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newCalcCmd(app),
	)

	return root
}
