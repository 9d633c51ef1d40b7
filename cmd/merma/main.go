package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/merma/internal/cli"
	"github.com/alexanderramin/merma/internal/config"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/alexanderramin/merma/internal/logging"
	"github.com/alexanderramin/merma/internal/service"
	"github.com/alexanderramin/merma/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.Setup(logOut, cfg.Log.Level, cfg.Log.Format)

	// Spreadsheet export is optional; without a writer it degrades to a notice.
	var spreadsheet export.SpreadsheetWriter
	if cfg.SpreadsheetEnabled {
		spreadsheet = export.NewXLSXWriter()
	}

	newSession := func(logger *slog.Logger) (service.SessionService, service.ExportService) {
		store := session.NewStore("")
		observer := service.NewLogUseCaseObserver(logger)
		sessions := service.NewSessionService(store, observer)
		return sessions, service.NewExportService(sessions, spreadsheet, observer)
	}

	sessions, exports := newSession(logger)
	app := &cli.App{
		Session:    sessions,
		Exports:    exports,
		Config:     cfg,
		Logger:     logger,
		Logo:       cli.LoadLogo(cfg.LogoPath),
		NewSession: newSession,
	}

	// Detect interactive terminal for the bare "merma" entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", "export_dir", cfg.ExportDir, "spreadsheet", cfg.SpreadsheetEnabled)

	return cli.NewRootCmd(app).Execute()
}
