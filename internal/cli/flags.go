package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// kgValue is a pflag.Value for non-negative scale weights in kg.
type kgValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = (*kgValue)(nil)

func newKgValue(p *decimal.Decimal) *kgValue {
	return &kgValue{d: p}
}

func (v *kgValue) String() string {
	if v.d == nil {
		return domain.FormatWeight(decimal.Zero)
	}
	return domain.FormatWeight(*v.d)
}

func (v *kgValue) Set(s string) error {
	d, err := domain.ParseWeight(s)
	if err != nil {
		return err
	}
	d, err = domain.ValidateScaleWeight(d)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *kgValue) Type() string { return "kg" }

// parseSaleFlag splits "Customer=KG". The last '=' separates the weight so
// customer names may contain '='.
func parseSaleFlag(s string) (string, decimal.Decimal, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return "", decimal.Zero, fmt.Errorf("sale %q: expected Cliente=KG", s)
	}
	w, err := domain.ParseWeight(s[i+1:])
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("sale %q: %w", s, err)
	}
	return s[:i], w, nil
}
