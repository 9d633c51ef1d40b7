package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alexanderramin/merma/internal/config"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/alexanderramin/merma/internal/service"
	"github.com/alexanderramin/merma/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over an in-memory session, exporting into a
// temporary directory.
func testApp(t *testing.T) *App {
	t.Helper()
	return newTestApp(t, export.NewXLSXWriter())
}

// testAppWithoutSpreadsheet wires an App whose spreadsheet capability is off.
func testAppWithoutSpreadsheet(t *testing.T) *App {
	t.Helper()
	return newTestApp(t, nil)
}

func newTestApp(t *testing.T, spreadsheet export.SpreadsheetWriter) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()

	newSession := func(logger *slog.Logger) (service.SessionService, service.ExportService) {
		sessions := service.NewSessionService(session.NewStore("test-session"), service.NewLogUseCaseObserver(logger))
		return sessions, service.NewExportService(sessions, spreadsheet)
	}
	sessions, exports := newSession(nil)

	return &App{
		Session:    sessions,
		Exports:    exports,
		Config:     cfg,
		NewSession: newSession,
	}
}

// seedSession loads the reference example: 100 kg in, 40 + 30 sold, 25 back.
func seedSession(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	_, err := app.Session.SetInitialWeight(ctx, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = app.Session.AddRecord(ctx, "Ana", decimal.NewFromInt(40))
	require.NoError(t, err)
	_, err = app.Session.AddRecord(ctx, "Luis", decimal.NewFromInt(30))
	require.NoError(t, err)
	_, err = app.Session.SetReturnedWeight(ctx, decimal.NewFromInt(25))
	require.NoError(t, err)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "merma")
	assert.Contains(t, output, "calc")
	assert.Contains(t, output, "tui")
}

func TestRootCmd_InteractiveStartsTUI(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	started := false
	app.runProgram = func(*App) error {
		started = true
		return nil
	}

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.True(t, started)
}

func TestRootCmd_NonInteractiveDoesNotStartTUI(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.runProgram = func(*App) error {
		t.Fatal("TUI must not start without a terminal")
		return nil
	}

	_, err := executeCmd(t, app)
	require.NoError(t, err)
}

func TestTUICmd_StartsProgram(t *testing.T) {
	app := testApp(t)
	started := false
	app.runProgram = func(got *App) error {
		started = got == app
		return nil
	}

	_, err := executeCmd(t, app, "tui")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "45")
	assert.Error(t, err)
}
