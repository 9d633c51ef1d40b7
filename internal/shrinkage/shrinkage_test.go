package shrinkage

import (
	"testing"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func kg(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sale(customer, weight string) domain.SaleRecord {
	return domain.SaleRecord{Customer: customer, WeightSold: kg(weight)}
}

func TestCompute_ExceedsThreshold(t *testing.T) {
	s := Compute(domain.SessionState{
		InitialWeight:  kg("100"),
		ReturnedWeight: kg("25"),
		Records:        []domain.SaleRecord{sale("A", "40"), sale("B", "30")},
	})

	assert.True(t, kg("70").Equal(s.TotalSold), "total sold = %s", s.TotalSold)
	assert.True(t, kg("5").Equal(s.Shrinkage), "shrinkage = %s", s.Shrinkage)
	assert.True(t, kg("5").Equal(s.ShrinkagePercent), "pct = %s", s.ShrinkagePercent)
	assert.Equal(t, domain.VerdictExceeded, s.Verdict)
	assert.False(t, s.WithinThreshold())
	assert.Equal(t, 2, s.RecordCount)
}

func TestCompute_BoundaryIsInclusive(t *testing.T) {
	s := Compute(domain.SessionState{
		InitialWeight:  kg("100"),
		ReturnedWeight: kg("24.5"),
		Records:        []domain.SaleRecord{sale("A", "50.1"), sale("B", "23.4")},
	})

	assert.True(t, kg("2").Equal(s.ShrinkagePercent), "pct = %s", s.ShrinkagePercent)
	assert.Equal(t, domain.VerdictWithin, s.Verdict)
	assert.True(t, s.WithinThreshold())
}

func TestCompute_JustOverThreshold(t *testing.T) {
	s := Compute(domain.SessionState{
		InitialWeight: kg("100"),
		Records:       []domain.SaleRecord{sale("A", "97.99")},
	})
	assert.Equal(t, domain.VerdictExceeded, s.Verdict)
}

func TestCompute_ZeroInitialIsPending(t *testing.T) {
	s := Compute(domain.SessionState{
		ReturnedWeight: kg("3"),
		Records:        []domain.SaleRecord{sale("A", "10")},
	})

	assert.True(t, s.ShrinkagePercent.IsZero())
	assert.Equal(t, domain.VerdictPending, s.Verdict)
	assert.False(t, s.Determined())
	assert.False(t, s.WithinThreshold())
	assert.True(t, kg("-13").Equal(s.Shrinkage))
}

func TestCompute_NegativeShrinkagePasses(t *testing.T) {
	s := Compute(domain.SessionState{
		InitialWeight: kg("10"),
		Records:       []domain.SaleRecord{sale("A", "11")},
	})
	assert.True(t, kg("-10").Equal(s.ShrinkagePercent))
	assert.Equal(t, domain.VerdictWithin, s.Verdict)
}

func TestCompute_EmptySession(t *testing.T) {
	s := Compute(domain.SessionState{})
	assert.True(t, s.TotalSold.IsZero())
	assert.True(t, s.Shrinkage.IsZero())
	assert.Equal(t, domain.VerdictPending, s.Verdict)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		initial, pct string
		want         domain.Verdict
	}{
		{"0", "0", domain.VerdictPending},
		{"50", "0", domain.VerdictWithin},
		{"50", "1.99", domain.VerdictWithin},
		{"50", "2", domain.VerdictWithin},
		{"50", "2.0001", domain.VerdictExceeded},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(kg(tc.initial), kg(tc.pct)), "initial=%s pct=%s", tc.initial, tc.pct)
	}
}
