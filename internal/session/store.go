// Package session holds the in-memory state of one data-entry session.
//
// A Store has a single owner (the interactive model or one command run) and
// is not safe for concurrent use.
package session

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the SessionState for one session.
type Store struct {
	state domain.SessionState
}

// NewStore creates an empty store. A blank id is replaced by a new UUID.
func NewStore(id string) *Store {
	if id == "" {
		id = uuid.New().String()
	}
	return &Store{state: domain.SessionState{
		ID:             id,
		InitialWeight:  decimal.Zero,
		ReturnedWeight: decimal.Zero,
	}}
}

// ID returns the session identifier.
func (s *Store) ID() string { return s.state.ID }

// State returns a copy of the current state.
func (s *Store) State() domain.SessionState { return s.state.Clone() }

// Records returns a copy of the sale records in display order.
func (s *Store) Records() []domain.SaleRecord { return slices.Clone(s.state.Records) }

// Len returns the number of sale records.
func (s *Store) Len() int { return len(s.state.Records) }

// AddRecord appends a validated sale. On error the store is unchanged.
func (s *Store) AddRecord(customer string, weight decimal.Decimal) (domain.SaleRecord, error) {
	rec, err := domain.NewSaleRecord(customer, weight)
	if err != nil {
		return domain.SaleRecord{}, err
	}
	s.state.Records = append(s.state.Records, rec)
	return rec, nil
}

// DeleteRecord removes the record at the zero-based index. Remaining records
// keep their relative order and are re-indexed from zero.
func (s *Store) DeleteRecord(index int) (domain.SaleRecord, error) {
	if index < 0 || index >= len(s.state.Records) {
		return domain.SaleRecord{}, fmt.Errorf("%w: %d (have %d)", domain.ErrRecordIndexOutOfRange, index, len(s.state.Records))
	}
	removed := s.state.Records[index]
	s.state.Records = slices.Delete(s.state.Records, index, index+1)
	return removed, nil
}

// SetInitialWeight overwrites the initial stock weight.
func (s *Store) SetInitialWeight(v decimal.Decimal) error {
	w, err := domain.ValidateScaleWeight(v)
	if err != nil {
		return fmt.Errorf("initial weight: %w", err)
	}
	s.state.InitialWeight = w
	return nil
}

// SetReturnedWeight overwrites the returned weight.
func (s *Store) SetReturnedWeight(v decimal.Decimal) error {
	w, err := domain.ValidateScaleWeight(v)
	if err != nil {
		return fmt.Errorf("returned weight: %w", err)
	}
	s.state.ReturnedWeight = w
	return nil
}

// ReplaceRecords swaps the record list for records after validating every
// entry. Nothing changes if any entry is invalid.
func (s *Store) ReplaceRecords(records []domain.SaleRecord) error {
	next := make([]domain.SaleRecord, 0, len(records))
	for i, r := range records {
		rec, err := domain.NewSaleRecord(r.Customer, r.WeightSold)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		next = append(next, rec)
	}
	s.state.Records = next
	return nil
}

// Reset empties the records and zeroes both weights. The session ID is kept.
func (s *Store) Reset() {
	s.state = domain.SessionState{
		ID:             s.state.ID,
		InitialWeight:  decimal.Zero,
		ReturnedWeight: decimal.Zero,
	}
}
