package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SpreadsheetWriter renders a Workbook in a spreadsheet format.
type SpreadsheetWriter interface {
	WriteWorkbook(w io.Writer, wb Workbook) error
}

// builtin number format 2 is "0.00".
const numFmtTwoDecimals = 2

// XLSXWriter writes Office Open XML workbooks.
type XLSXWriter struct{}

// NewXLSXWriter returns a SpreadsheetWriter backed by excelize.
func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

// WriteWorkbook writes two sheets: SalesSheet with one row per record and
// SummarySheet with a single row of totals.
func (XLSXWriter) WriteWorkbook(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SalesSheet); err != nil {
		return fmt.Errorf("naming sheet %s: %w", SalesSheet, err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", SummarySheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	numStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}

	if err := writeSalesSheet(f, wb.Sales, headerStyle, numStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, wb.Summary, headerStyle, numStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSalesSheet(f *excelize.File, sales []domain.SaleRecord, headerStyle, numStyle int) error {
	if err := writeHeader(f, SalesSheet, SalesColumns, headerStyle); err != nil {
		return err
	}
	for i, r := range sales {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{r.Customer, cellNumber(r.WeightSold)}
		if err := f.SetSheetRow(SalesSheet, cell, &values); err != nil {
			return fmt.Errorf("writing %s row %d: %w", SalesSheet, row, err)
		}
	}
	if len(sales) > 0 {
		last, err := excelize.CoordinatesToCellName(2, len(sales)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SalesSheet, "B2", last, numStyle); err != nil {
			return fmt.Errorf("styling %s: %w", SalesSheet, err)
		}
	}
	if err := f.SetColWidth(SalesSheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(SalesSheet, "B", "B", 18)
}

func writeSummarySheet(f *excelize.File, s domain.ShrinkageSummary, headerStyle, numStyle int) error {
	if err := writeHeader(f, SummarySheet, SummaryColumns, headerStyle); err != nil {
		return err
	}
	values := []any{
		cellNumber(s.InitialWeight),
		cellNumber(s.TotalSold),
		cellNumber(s.ReturnedWeight),
		cellNumber(s.Shrinkage),
		cellNumber(s.ShrinkagePercent),
	}
	if err := f.SetSheetRow(SummarySheet, "A2", &values); err != nil {
		return fmt.Errorf("writing %s row: %w", SummarySheet, err)
	}
	if err := f.SetCellStyle(SummarySheet, "A2", "E2", numStyle); err != nil {
		return fmt.Errorf("styling %s: %w", SummarySheet, err)
	}
	return f.SetColWidth(SummarySheet, "A", "E", 18)
}

func writeHeader(f *excelize.File, sheet string, columns []string, style int) error {
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// cellNumber converts a weight or percentage to the float stored in a cell,
// rounded to the precision shown to the user.
func cellNumber(d decimal.Decimal) float64 {
	return d.Round(domain.WeightPrecision).InexactFloat64()
}
