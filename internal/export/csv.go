package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/merma/internal/domain"
)

const utf8BOM = "\ufeff"

// WriteSalesCSV writes records as UTF-8 CSV with a header row and weights
// fixed to two decimals.
func WriteSalesCSV(w io.Writer, records []domain.SaleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SalesColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write([]string{r.Customer, domain.FormatWeight(r.WeightSold)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSalesCSV parses a file produced by WriteSalesCSV (or edited by hand)
// back into sale records. A leading BOM is tolerated, header cells are
// compared case-insensitively, and every row is validated. Errors carry the
// 1-based line number.
func ReadSalesCSV(r io.Reader) ([]domain.SaleRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !matchesHeader(header, SalesColumns) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadHeader, header, SalesColumns)
	}

	var records []domain.SaleRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != len(SalesColumns) {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, len(SalesColumns), len(row))
		}
		weight, err := domain.ParseWeight(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := domain.NewSaleRecord(row[0], weight)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func matchesHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		cell := strings.TrimSpace(got[i])
		if i == 0 {
			cell = strings.TrimPrefix(cell, utf8BOM)
		}
		if !strings.EqualFold(cell, want[i]) {
			return false
		}
	}
	return true
}
