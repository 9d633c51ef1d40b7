package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// SaleRecord is one logged sale. Records are never edited in place; a wrong
// entry is deleted and entered again.
type SaleRecord struct {
	Customer   string
	WeightSold decimal.Decimal
}

// NewSaleRecord validates and normalizes a sale. The customer name goes
// through NormalizeCustomer and the weight is rounded to WeightPrecision
// before the checks run, so a weight that rounds to 0.00 is rejected.
func NewSaleRecord(customer string, weight decimal.Decimal) (SaleRecord, error) {
	name := NormalizeCustomer(customer)
	if name == "" {
		return SaleRecord{}, ErrEmptyCustomer
	}
	w := RoundWeight(weight)
	if !w.IsPositive() {
		return SaleRecord{}, fmt.Errorf("%w (got %s kg)", ErrNonPositiveWeight, FormatWeight(w))
	}
	return SaleRecord{Customer: name, WeightSold: w}, nil
}

// NormalizeCustomer turns control characters (line breaks, tabs) into
// spaces, collapses whitespace runs and trims the ends. Stored names are
// single-line, so they survive a CSV export unchanged.
func NormalizeCustomer(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
