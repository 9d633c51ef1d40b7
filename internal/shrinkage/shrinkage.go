// Package shrinkage computes the loss between stock received and stock
// accounted for by sales and returns.
package shrinkage

import (
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalSold sums the weight of every record.
func TotalSold(records []domain.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.WeightSold)
	}
	return total
}

// Percent returns shrinkage as a percentage of initial. It is zero when
// initial is not positive.
func Percent(shrinkage, initial decimal.Decimal) decimal.Decimal {
	if !initial.IsPositive() {
		return decimal.Zero
	}
	return shrinkage.Mul(hundred).Div(initial)
}

// Classify grades pct. Without an initial weight the verdict is pending;
// otherwise exactly ShrinkageThresholdPct still passes.
func Classify(initial, pct decimal.Decimal) domain.Verdict {
	if !initial.IsPositive() {
		return domain.VerdictPending
	}
	if pct.LessThanOrEqual(domain.ShrinkageThresholdPct) {
		return domain.VerdictWithin
	}
	return domain.VerdictExceeded
}

// Compute derives the summary for state. Shrinkage may be negative when more
// weight is accounted for than was received.
func Compute(state domain.SessionState) domain.ShrinkageSummary {
	sold := TotalSold(state.Records)
	loss := state.InitialWeight.Sub(sold.Add(state.ReturnedWeight))
	pct := Percent(loss, state.InitialWeight)

	return domain.ShrinkageSummary{
		InitialWeight:    state.InitialWeight,
		TotalSold:        sold,
		ReturnedWeight:   state.ReturnedWeight,
		Shrinkage:        loss,
		ShrinkagePercent: pct,
		RecordCount:      len(state.Records),
		Verdict:          Classify(state.InitialWeight, pct),
	}
}
