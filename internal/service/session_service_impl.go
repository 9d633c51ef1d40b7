package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/alexanderramin/merma/internal/session"
	"github.com/alexanderramin/merma/internal/shrinkage"
	"github.com/shopspring/decimal"
)

type sessionService struct {
	store    *session.Store
	observer UseCaseObserver
}

func NewSessionService(store *session.Store, observers ...UseCaseObserver) SessionService {
	return &sessionService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *sessionService) fields(extra ...any) map[string]any {
	f := map[string]any{"session_id": s.store.ID()}
	for i := 0; i+1 < len(extra); i += 2 {
		f[fmt.Sprint(extra[i])] = extra[i+1]
	}
	return f
}

func (s *sessionService) summary() *domain.ShrinkageSummary {
	sum := shrinkage.Compute(s.store.State())
	return &sum
}

func (s *sessionService) AddRecord(ctx context.Context, customer string, weight decimal.Decimal) (_ *domain.ShrinkageSummary, err error) {
	defer observe(ctx, s.observer, "add-record", time.Now().UTC(),
		s.fields("customer", customer, "weight_kg", domain.FormatWeight(weight)), &err)

	if _, err = s.store.AddRecord(customer, weight); err != nil {
		return nil, err
	}
	return s.summary(), nil
}

func (s *sessionService) DeleteRecord(ctx context.Context, index int) (_ *domain.ShrinkageSummary, err error) {
	defer observe(ctx, s.observer, "delete-record", time.Now().UTC(), s.fields("index", index), &err)

	if _, err = s.store.DeleteRecord(index); err != nil {
		return nil, err
	}
	return s.summary(), nil
}

func (s *sessionService) SetInitialWeight(ctx context.Context, v decimal.Decimal) (_ *domain.ShrinkageSummary, err error) {
	defer observe(ctx, s.observer, "set-initial-weight", time.Now().UTC(),
		s.fields("weight_kg", domain.FormatWeight(v)), &err)

	if err = s.store.SetInitialWeight(v); err != nil {
		return nil, err
	}
	return s.summary(), nil
}

func (s *sessionService) SetReturnedWeight(ctx context.Context, v decimal.Decimal) (_ *domain.ShrinkageSummary, err error) {
	defer observe(ctx, s.observer, "set-returned-weight", time.Now().UTC(),
		s.fields("weight_kg", domain.FormatWeight(v)), &err)

	if err = s.store.SetReturnedWeight(v); err != nil {
		return nil, err
	}
	return s.summary(), nil
}

func (s *sessionService) ImportRecords(ctx context.Context, r io.Reader) (_ *ImportResult, err error) {
	fields := s.fields()
	defer observe(ctx, s.observer, "import-records", time.Now().UTC(), fields, &err)

	records, err := export.ReadSalesCSV(r)
	if err != nil {
		return nil, fmt.Errorf("importing sales: %w", err)
	}
	if err = s.store.ReplaceRecords(records); err != nil {
		return nil, fmt.Errorf("importing sales: %w", err)
	}
	fields["record_count"] = len(records)
	return &ImportResult{RecordCount: len(records), Summary: s.summary()}, nil
}

func (s *sessionService) Reset(ctx context.Context) *domain.ShrinkageSummary {
	defer observe(ctx, s.observer, "reset", time.Now().UTC(), s.fields("discarded_records", s.store.Len()), nil)

	s.store.Reset()
	return s.summary()
}

func (s *sessionService) Summary(context.Context) *domain.ShrinkageSummary {
	return s.summary()
}

func (s *sessionService) State(context.Context) domain.SessionState {
	return s.store.State()
}
