package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type failingSpreadsheet struct{}

func (failingSpreadsheet) WriteWorkbook(io.Writer, export.Workbook) error {
	return errors.New("disk on fire")
}

func TestExportService_TextAlwaysAvailable(t *testing.T) {
	svc, _ := newTestSession(t)
	seedExample(t, svc)
	exp := NewExportService(svc, nil)

	var buf bytes.Buffer
	require.NoError(t, exp.ExportText(context.Background(), &buf))
	assert.Equal(t, "Cliente,Peso vendido (kg)\nA,40.00\nB,30.00\n", buf.String())
}

func TestExportService_SpreadsheetUnavailable(t *testing.T) {
	svc, _ := newTestSession(t)
	exp := NewExportService(svc, nil)

	err := exp.ExportSpreadsheet(context.Background(), io.Discard)
	assert.ErrorIs(t, err, export.ErrSpreadsheetUnavailable)
}

func TestExportService_SpreadsheetFailureIsWrapped(t *testing.T) {
	svc, _ := newTestSession(t)
	exp := NewExportService(svc, failingSpreadsheet{})

	err := exp.ExportSpreadsheet(context.Background(), io.Discard)
	assert.ErrorIs(t, err, export.ErrSpreadsheetFailed)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestExportToDir_Text(t *testing.T) {
	svc, _ := newTestSession(t)
	seedExample(t, svc)
	obs := &recordingObserver{}
	exp := NewExportService(svc, nil, obs)
	dir := t.TempDir()

	notice, err := exp.ExportToDir(context.Background(), dir, export.KindText)
	require.NoError(t, err)
	assert.Equal(t, domain.NoticeSuccess, notice.Level)
	assert.Contains(t, notice.Message, "ventas.csv")

	data, err := os.ReadFile(filepath.Join(dir, "ventas.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Cliente,Peso vendido (kg)\nA,40.00\nB,30.00\n", string(data))

	ev := obs.last()
	assert.Equal(t, "export", ev.Name)
	assert.Equal(t, "csv", ev.Fields["kind"])
	assert.True(t, ev.Success)
}

func TestExportToDir_SpreadsheetDegradesToInfo(t *testing.T) {
	for name, writer := range map[string]export.SpreadsheetWriter{
		"missing": nil,
		"failing": failingSpreadsheet{},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestSession(t)
			seedExample(t, svc)
			exp := NewExportService(svc, writer)
			dir := t.TempDir()

			notice, err := exp.ExportToDir(context.Background(), dir, export.KindSpreadsheet)
			require.NoError(t, err)
			assert.Equal(t, domain.NoticeInfo, notice.Level)
			assert.Contains(t, notice.Message, "CSV export still works")
			assert.NoFileExists(t, filepath.Join(dir, "control_merma.xlsx"))

			// The text export is unaffected.
			_, err = exp.ExportToDir(context.Background(), dir, export.KindText)
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(dir, "ventas.csv"))
		})
	}
}

func TestExportToDir_SpreadsheetWritesWorkbook(t *testing.T) {
	svc, _ := newTestSession(t)
	seedExample(t, svc)
	exp := NewExportService(svc, export.NewXLSXWriter())
	dir := t.TempDir()

	notice, err := exp.ExportToDir(context.Background(), dir, export.KindSpreadsheet)
	require.NoError(t, err)
	assert.Equal(t, domain.NoticeSuccess, notice.Level)

	f, err := excelize.OpenFile(filepath.Join(dir, "control_merma.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Ventas", "Resumen"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumen", "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "5", v)
}

func TestExportToDir_TextFailureIsWarning(t *testing.T) {
	svc, _ := newTestSession(t)
	exp := NewExportService(svc, nil)

	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	notice, err := exp.ExportToDir(context.Background(), filepath.Join(blocker, "sub"), export.KindText)
	require.Error(t, err)
	assert.Equal(t, domain.NoticeWarning, notice.Level)
}
