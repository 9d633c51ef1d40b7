package service

import (
	"context"
	"io"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/shopspring/decimal"
)

// SessionService exposes one handler per user action. Each mutating handler
// returns the summary recomputed after the change; on error the session is
// unchanged and the summary is nil.
type SessionService interface {
	AddRecord(ctx context.Context, customer string, weight decimal.Decimal) (*domain.ShrinkageSummary, error)
	DeleteRecord(ctx context.Context, index int) (*domain.ShrinkageSummary, error)
	SetInitialWeight(ctx context.Context, v decimal.Decimal) (*domain.ShrinkageSummary, error)
	SetReturnedWeight(ctx context.Context, v decimal.Decimal) (*domain.ShrinkageSummary, error)
	ImportRecords(ctx context.Context, r io.Reader) (*ImportResult, error)
	Reset(ctx context.Context) *domain.ShrinkageSummary
	Summary(ctx context.Context) *domain.ShrinkageSummary
	State(ctx context.Context) domain.SessionState
}

// ImportResult holds the outcome of loading sales from a CSV export.
type ImportResult struct {
	RecordCount int
	Summary     *domain.ShrinkageSummary
}

// ExportService writes the session to files. Text export always works;
// spreadsheet export is optional and its failures become notices.
type ExportService interface {
	ExportText(ctx context.Context, w io.Writer) error
	ExportSpreadsheet(ctx context.Context, w io.Writer) error
	ExportToDir(ctx context.Context, dir string, kind export.Kind) (domain.Notice, error)
}

// StateReader is the read side of a session, as needed by exports.
type StateReader interface {
	State(ctx context.Context) domain.SessionState
}
