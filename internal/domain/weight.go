package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WeightPrecision is the number of decimal places kept for every weight.
const WeightPrecision = 2

// ParseWeight parses a kg value typed by the user. A lone comma is accepted
// as the decimal separator ("12,5"). The value is returned unrounded so the
// validators see its sign; NewSaleRecord and ValidateScaleWeight round it.
func ParseWeight(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidWeight)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return d, nil
}

// RoundWeight rounds d half away from zero to WeightPrecision places.
func RoundWeight(d decimal.Decimal) decimal.Decimal {
	return d.Round(WeightPrecision)
}

// FormatWeight renders d with exactly WeightPrecision decimals.
func FormatWeight(d decimal.Decimal) string {
	return d.StringFixed(WeightPrecision)
}

// ValidateScaleWeight checks an initial or returned weight and returns it
// rounded. The sign is checked before rounding, so -0.004 is rejected.
func ValidateScaleWeight(v decimal.Decimal) (decimal.Decimal, error) {
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w (got %s kg)", ErrNegativeWeight, v.String())
	}
	return RoundWeight(v), nil
}
