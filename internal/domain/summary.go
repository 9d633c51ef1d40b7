package domain

import "github.com/shopspring/decimal"

// ShrinkageThresholdPct is the highest acceptable shrinkage, inclusive.
var ShrinkageThresholdPct = decimal.NewFromInt(2)

// ShrinkageSummary is derived from a SessionState on every read and never stored.
type ShrinkageSummary struct {
	InitialWeight    decimal.Decimal
	TotalSold        decimal.Decimal
	ReturnedWeight   decimal.Decimal
	Shrinkage        decimal.Decimal
	ShrinkagePercent decimal.Decimal
	RecordCount      int
	Verdict          Verdict
}

// WithinThreshold reports whether the verdict is a pass. A pending summary is
// neither within nor over the threshold.
func (s ShrinkageSummary) WithinThreshold() bool {
	return s.Verdict == VerdictWithin
}

// Determined reports whether an initial weight was available to judge against.
func (s ShrinkageSummary) Determined() bool {
	return s.Verdict != VerdictPending
}
