package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// Session actions shared by the key bindings, the forms and the command bar.
// Each one returns the notice to show; validation problems become warnings
// and leave the session unchanged.

func execAddSale(ctx context.Context, app *App, customer, weightText string) domain.Notice {
	w, err := domain.ParseWeight(weightText)
	if err != nil {
		return warningNotice(err)
	}
	if _, err := app.Session.AddRecord(ctx, customer, w); err != nil {
		return warningNotice(err)
	}
	// Report the row as stored, after name normalization.
	records := app.Session.State(ctx).Records
	rec := records[len(records)-1]
	return successNotice("Added sale: %s %s", formatter.Truncate(rec.Customer, 40), formatter.FormatKg(rec.WeightSold))
}

// execDeleteSale removes the sale at the 0-based index.
func execDeleteSale(ctx context.Context, app *App, index int) domain.Notice {
	records := app.Session.State(ctx).Records
	if _, err := app.Session.DeleteRecord(ctx, index); err != nil {
		return warningNotice(err)
	}
	return successNotice("Deleted sale #%d (%s)", index+1, records[index].Customer)
}

func execSetInitial(ctx context.Context, app *App, weightText string) domain.Notice {
	w, err := domain.ParseWeight(weightText)
	if err != nil {
		return warningNotice(fmt.Errorf("initial weight: %w", err))
	}
	sum, err := app.Session.SetInitialWeight(ctx, w)
	if err != nil {
		return warningNotice(err)
	}
	return successNotice("Initial weight set to %s", formatter.FormatKg(sum.InitialWeight))
}

func execSetReturned(ctx context.Context, app *App, weightText string) domain.Notice {
	w, err := domain.ParseWeight(weightText)
	if err != nil {
		return warningNotice(fmt.Errorf("returned weight: %w", err))
	}
	sum, err := app.Session.SetReturnedWeight(ctx, w)
	if err != nil {
		return warningNotice(err)
	}
	return successNotice("Returned weight set to %s", formatter.FormatKg(sum.ReturnedWeight))
}

func execReset(ctx context.Context, app *App) domain.Notice {
	app.Session.Reset(ctx)
	return domain.Notice{Level: domain.NoticeInfo, Message: "Session cleared."}
}

func execExport(ctx context.Context, app *App, kind export.Kind) domain.Notice {
	// Text failures already come back as a warning notice.
	n, _ := app.Exports.ExportToDir(ctx, app.Config.ExportDir, kind)
	return n
}

func execImport(ctx context.Context, app *App, path string) domain.Notice {
	f, err := os.Open(path)
	if err != nil {
		return warningNotice(err)
	}
	defer f.Close()

	res, err := app.Session.ImportRecords(ctx, f)
	if err != nil {
		return warningNotice(fmt.Errorf("import %s: %w", path, err))
	}
	return successNotice("Imported %d sales from %s", res.RecordCount, path)
}

// execConfirm pushes a yes/no wizard and runs action only when confirmed.
func execConfirm(state *SharedState, title, prompt string, action func(ctx context.Context) domain.Notice) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	return pushView(newWizardView(state, title, form, func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg {
				return noticeMsg{notice: domain.Notice{Level: domain.NoticeInfo, Message: "Cancelled."}}
			}
		}
		return func() tea.Msg {
			return noticeMsg{notice: action(context.Background())}
		}
	}))
}

func successNotice(format string, args ...any) domain.Notice {
	return domain.Notice{Level: domain.NoticeSuccess, Message: fmt.Sprintf(format, args...)}
}

func warningNotice(err error) domain.Notice {
	return domain.Notice{Level: domain.NoticeWarning, Message: err.Error()}
}
