package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/merma/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}

func kg(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestSession(t *testing.T) (SessionService, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	return NewSessionService(session.NewStore("sess-1"), obs), obs
}

// seedExample enters 100 kg in, sales of 40 (A) and 30 (B), 25 returned.
func seedExample(t *testing.T, svc SessionService) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.SetInitialWeight(ctx, kg("100"))
	require.NoError(t, err)
	_, err = svc.AddRecord(ctx, "A", kg("40"))
	require.NoError(t, err)
	_, err = svc.AddRecord(ctx, "B", kg("30"))
	require.NoError(t, err)
	_, err = svc.SetReturnedWeight(ctx, kg("25"))
	require.NoError(t, err)
}
