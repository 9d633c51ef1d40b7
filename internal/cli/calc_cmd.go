package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/alexanderramin/merma/internal/logging"
	"github.com/alexanderramin/merma/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	initial  decimal.Decimal
	returned decimal.Decimal
	sales    []string
	from     string
	csvOut   string
	xlsxOut  string
}

func newCalcCmd(app *App) *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute shrinkage without the interactive session",
		Example: `  merma calc --initial 100 --sale "Ana=40" --sale "Luis=30" --returned 25
  merma calc --initial 100 --from ventas.csv --returned 25 --xlsx-out control_merma.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.Context(), app, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.Var(newKgValue(&opts.initial), "initial", "Initial stock weight in kg")
	f.Var(newKgValue(&opts.returned), "returned", "Returned weight in kg")
	f.StringArrayVar(&opts.sales, "sale", nil, `Sale as "Cliente=KG" (repeatable)`)
	f.StringVar(&opts.from, "from", "", "Load sales from a ventas.csv export")
	f.StringVar(&opts.csvOut, "csv-out", "", "Write the sales CSV to this path")
	f.StringVar(&opts.xlsxOut, "xlsx-out", "", "Write the spreadsheet to this path")
	_ = cmd.MarkFlagRequired("initial")

	return cmd
}

func runCalc(ctx context.Context, app *App, opts calcOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if app.NewSession == nil {
		return errors.New("calc: no session factory configured")
	}

	logger := app.Logger
	if logger == nil || app.Config.Log.File == "" {
		logger = logging.New(errOut, app.Config.Log.Level, app.Config.Log.Format)
	}
	sess, exports := app.NewSession(logger)

	if opts.from != "" {
		if err := importFile(ctx, sess, opts.from); err != nil {
			return err
		}
	}
	for _, s := range opts.sales {
		customer, w, err := parseSaleFlag(s)
		if err != nil {
			return err
		}
		if _, err := sess.AddRecord(ctx, customer, w); err != nil {
			return fmt.Errorf("sale %q: %w", s, err)
		}
	}
	if _, err := sess.SetInitialWeight(ctx, opts.initial); err != nil {
		return err
	}
	if _, err := sess.SetReturnedWeight(ctx, opts.returned); err != nil {
		return err
	}

	state := sess.State(ctx)
	fmt.Fprintln(out, formatter.Header("Ventas"))
	fmt.Fprintln(out, formatter.FormatSalesTable(state.Records, -1))
	fmt.Fprintln(out, formatter.FormatSummaryPlain(*sess.Summary(ctx)))

	if opts.csvOut != "" {
		if err := writeExport(opts.csvOut, func(w io.Writer) error { return exports.ExportText(ctx, w) }); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		fmt.Fprintln(out, formatter.NoticeLine(domain.Notice{Level: domain.NoticeSuccess, Message: "Saved " + opts.csvOut}))
	}
	if opts.xlsxOut != "" {
		fmt.Fprintln(out, formatter.NoticeLine(calcSpreadsheet(ctx, exports, opts.xlsxOut)))
	}

	return nil
}

// calcSpreadsheet writes the workbook to path. Failures are reported as an
// informational notice and leave no file behind.
func calcSpreadsheet(ctx context.Context, exports service.ExportService, path string) domain.Notice {
	err := writeExport(path, func(w io.Writer) error { return exports.ExportSpreadsheet(ctx, w) })
	switch {
	case err == nil:
		return domain.Notice{Level: domain.NoticeSuccess, Message: "Saved " + path}
	case errors.Is(err, export.ErrSpreadsheetUnavailable):
		return domain.Notice{Level: domain.NoticeInfo, Message: "Spreadsheet export is not available in this installation."}
	default:
		return domain.Notice{Level: domain.NoticeInfo, Message: fmt.Sprintf("Spreadsheet export could not be completed: %v", err)}
	}
}

// writeExport renders into a temporary file next to path and renames it on
// success.
func writeExport(path string, render func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".merma-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := render(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func importFile(ctx context.Context, sess service.SessionService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := sess.ImportRecords(ctx, f); err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	return nil
}
