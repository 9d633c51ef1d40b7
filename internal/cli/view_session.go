package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionView is the home view: weights, the sales table with a selection
// cursor, and the results panel.
type sessionView struct {
	state  *SharedState
	cursor int
}

func newSessionView(state *SharedState) *sessionView {
	return &sessionView{state: state}
}

func (v *sessionView) ID() ViewID    { return ViewSession }
func (v *sessionView) Title() string { return "Session" }

func (v *sessionView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "initial")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add sale")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "returned")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "csv")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "xlsx")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
	}
}

func (v *sessionView) Init() tea.Cmd { return nil }

func (v *sessionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *sessionView) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	app := v.state.App

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.recordCount()-1 {
			v.cursor++
		}
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = max(v.recordCount()-1, 0)

	case "i":
		return pushView(newWeightFormView(v.state, weightInitial))
	case "d":
		return pushView(newWeightFormView(v.state, weightReturned))
	case "a":
		return pushView(newAddSaleFormView(v.state))

	case "x":
		v.clampCursor()
		records := app.Session.State(ctx).Records
		if len(records) == 0 {
			return noticeCmd(domain.Notice{Level: domain.NoticeWarning, Message: "No sale selected."})
		}
		idx := v.cursor
		r := records[idx]
		prompt := fmt.Sprintf("Delete sale #%d (%s, %s)?", idx+1, r.Customer, formatter.FormatKg(r.WeightSold))
		return execConfirm(v.state, "Delete sale", prompt, func(ctx context.Context) domain.Notice {
			return execDeleteSale(ctx, app, idx)
		})

	case "R":
		return execConfirm(v.state, "Reset", "Clear all sales and weights?", func(ctx context.Context) domain.Notice {
			return execReset(ctx, app)
		})

	case "e":
		return noticeCmd(execExport(ctx, app, export.KindText))
	case "s":
		return noticeCmd(execExport(ctx, app, export.KindSpreadsheet))
	}
	return nil
}

func (v *sessionView) recordCount() int {
	return len(v.state.App.Session.State(context.Background()).Records)
}

// clampCursor keeps the selection on an existing row after deletes, resets
// and imports.
func (v *sessionView) clampCursor() {
	n := v.recordCount()
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *sessionView) View() string {
	ctx := context.Background()
	st := v.state.App.Session.State(ctx)
	sum := v.state.App.Session.Summary(ctx)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s    %s %s\n",
		formatter.Dim("Initial weight:"), formatter.Bold(formatter.FormatKg(st.InitialWeight)),
		formatter.Dim("Returned:"), formatter.Bold(formatter.FormatKg(st.ReturnedWeight))))
	b.WriteString("\n")

	b.WriteString(formatter.Header(fmt.Sprintf("Sales (%d)", len(st.Records))))
	b.WriteString("\n")

	start, end := v.window(len(st.Records))
	b.WriteString(formatter.FormatSalesRange(st.Records[start:end], start, v.cursor-start))
	b.WriteString("\n")
	b.WriteString(formatter.FormatSummary(*sum))

	return b.String()
}

// salesWindow is the number of table rows shown before scrolling.
func (v *sessionView) salesWindow() int {
	// Room for the weights line, section header, table header and the
	// results box.
	rows := v.state.ContentHeight() - 17
	if rows < 3 {
		return 3
	}
	return rows
}

// window returns the [start, end) slice of rows to show, keeping the
// cursor visible.
func (v *sessionView) window(n int) (int, int) {
	w := v.salesWindow()
	start := 0
	if n > w && v.cursor >= w {
		start = min(v.cursor-w+1, n-w)
	}
	return start, min(start+w, n)
}
