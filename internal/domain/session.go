package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// SessionState is everything entered during one session.
// Insertion order of Records is display order.
type SessionState struct {
	ID             string
	InitialWeight  decimal.Decimal
	ReturnedWeight decimal.Decimal
	Records        []SaleRecord
}

// Clone returns a copy whose Records slice does not alias s.Records.
func (s SessionState) Clone() SessionState {
	out := s
	out.Records = slices.Clone(s.Records)
	return out
}
