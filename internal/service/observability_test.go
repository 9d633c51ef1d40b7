package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "add-record",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"session_id": "s1"},
	})
	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=add-record")
	assert.Contains(t, out, "session_id=s1")
	assert.Contains(t, out, "level=INFO")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "delete-record", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	_, ok := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, ok)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Equal(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
