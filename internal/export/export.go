// Package export serializes a session's sales and summary to flat files.
//
// The delimited text export has no dependencies and is always available.
// The spreadsheet export goes through a SpreadsheetWriter, which may be
// absent; callers degrade that case to an informational message.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/merma/internal/domain"
)

const (
	TextFilename = "ventas.csv"
	TextMIME     = "text/csv"

	SpreadsheetFilename = "control_merma.xlsx"
	SpreadsheetMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SalesSheet   = "Ventas"
	SummarySheet = "Resumen"
)

// SalesColumns are the header cells of the sales table in both formats.
var SalesColumns = []string{"Cliente", "Peso vendido (kg)"}

// SummaryColumns are the header cells of the summary sheet.
var SummaryColumns = []string{"Peso inicial (kg)", "Total vendido (kg)", "Devolución (kg)", "Merma (kg)", "% Merma"}

var (
	// ErrSpreadsheetUnavailable indicates no spreadsheet writer is configured.
	ErrSpreadsheetUnavailable = errors.New("spreadsheet export unavailable")

	// ErrSpreadsheetFailed indicates the spreadsheet writer returned an error.
	ErrSpreadsheetFailed = errors.New("spreadsheet export failed")

	// ErrBadHeader indicates an imported file does not start with SalesColumns.
	ErrBadHeader = errors.New("unexpected header")
)

// Kind selects an export format.
type Kind string

const (
	KindText        Kind = "csv"
	KindSpreadsheet Kind = "xlsx"
)

// ParseKind maps user input ("csv", "xlsx", "excel", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "text", "txt":
		return KindText, nil
	case "xlsx", "excel", "spreadsheet":
		return KindSpreadsheet, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use csv or xlsx)", s)
	}
}

// Filename returns the fixed output file name for k.
func (k Kind) Filename() string {
	if k == KindSpreadsheet {
		return SpreadsheetFilename
	}
	return TextFilename
}

// Workbook is the data written to the spreadsheet: the raw sales plus the
// one-row summary.
type Workbook struct {
	Sales   []domain.SaleRecord
	Summary domain.ShrinkageSummary
}
