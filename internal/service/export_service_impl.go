package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/alexanderramin/merma/internal/shrinkage"
)

type exportService struct {
	session     StateReader
	spreadsheet export.SpreadsheetWriter
	observer    UseCaseObserver
}

// NewExportService builds an ExportService over session. A nil spreadsheet
// writer leaves only the text export available.
func NewExportService(session StateReader, spreadsheet export.SpreadsheetWriter, observers ...UseCaseObserver) ExportService {
	return &exportService{
		session:     session,
		spreadsheet: spreadsheet,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) ExportText(ctx context.Context, w io.Writer) error {
	state := s.session.State(ctx)
	return export.WriteSalesCSV(w, state.Records)
}

func (s *exportService) ExportSpreadsheet(ctx context.Context, w io.Writer) error {
	if s.spreadsheet == nil {
		return export.ErrSpreadsheetUnavailable
	}
	state := s.session.State(ctx)
	wb := export.Workbook{Sales: state.Records, Summary: shrinkage.Compute(state)}
	if err := s.spreadsheet.WriteWorkbook(w, wb); err != nil {
		return fmt.Errorf("%w: %w", export.ErrSpreadsheetFailed, err)
	}
	return nil
}

// ExportToDir writes the requested file into dir. A text export failure is
// returned as an error with a warning notice. A spreadsheet failure never
// returns an error; it becomes an informational notice and no file is left
// behind.
func (s *exportService) ExportToDir(ctx context.Context, dir string, kind export.Kind) (notice domain.Notice, err error) {
	path := filepath.Join(dir, kind.Filename())
	fields := map[string]any{
		"session_id": s.session.State(ctx).ID,
		"kind":       string(kind),
		"path":       path,
	}
	defer observe(ctx, s.observer, "export", time.Now().UTC(), fields, &err)

	var buf bytes.Buffer
	switch kind {
	case export.KindText:
		if err = s.ExportText(ctx, &buf); err != nil {
			return warningNotice("Text export failed", err), err
		}
		if err = writeFile(path, buf.Bytes()); err != nil {
			return warningNotice("Text export failed", err), err
		}
	case export.KindSpreadsheet:
		if xerr := s.ExportSpreadsheet(ctx, &buf); xerr != nil {
			fields["degraded"] = xerr.Error()
			return spreadsheetNotice(xerr), nil
		}
		if xerr := writeFile(path, buf.Bytes()); xerr != nil {
			fields["degraded"] = xerr.Error()
			return spreadsheetNotice(xerr), nil
		}
	default:
		err = fmt.Errorf("unknown export kind %q", kind)
		return warningNotice("Export failed", err), err
	}

	return domain.Notice{
		Level:   domain.NoticeSuccess,
		Message: fmt.Sprintf("Saved %s (%d bytes)", path, buf.Len()),
	}, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func warningNotice(prefix string, err error) domain.Notice {
	return domain.Notice{Level: domain.NoticeWarning, Message: fmt.Sprintf("%s: %v", prefix, err)}
}

func spreadsheetNotice(err error) domain.Notice {
	msg := "Spreadsheet export is not available in this installation; the CSV export still works."
	if !errors.Is(err, export.ErrSpreadsheetUnavailable) {
		msg = fmt.Sprintf("Spreadsheet export could not be completed (%v); the CSV export still works.", err)
	}
	return domain.Notice{Level: domain.NoticeInfo, Message: msg}
}
