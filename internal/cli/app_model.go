package cli

import (
	"strings"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model. The bottom of stack is always the
// session view; forms and confirmations are pushed above it.
type appModel struct {
	state    *SharedState
	stack    []View
	bar      commandBar
	out      outputPane
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state: state,
		stack: []View{newSessionView(state)},
		bar:   newCommandBar(state),
		out:   newOutputPane(),
	}
}

func (m appModel) activeView() View {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// updateActive sends msg to the top view and stores the result.
func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.stack[len(m.stack)-1] = updated.(View)
	return cmd
}

// broadcast sends msg to every view on the stack, bottom first.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.stack {
		updated, cmd := v.Update(msg)
		m.stack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// pop drops the top view; the session view is never removed.
func (m *appModel) pop() bool {
	if len(m.stack) <= 1 {
		return false
	}
	m.stack = m.stack[:len(m.stack)-1]
	return true
}

// paneHeight is the output pane height, zero until the terminal size is known.
func (m *appModel) paneHeight() int {
	if m.state.Height == 0 {
		return 0
	}
	return m.state.ContentHeight()
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.bar.SetWidth(msg.Width)
		m.out.resize(msg.Width, m.paneHeight())
		cmd := m.updateActive(msg)
		return m, cmd

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.out.active() {
			cmd := m.out.update(msg)
			return m, cmd
		}
		return m, nil

	case pushViewMsg:
		m.bar.Blur()
		m.out.clear()
		m.stack = append(m.stack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		m.pop()
		m.out.clear()
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })

	case refreshViewMsg:
		// Every view sees it, so the session view under a form picks up
		// the change the form made.
		cmd := m.broadcast(msg)
		return m, cmd

	case noticeMsg:
		m.state.Notice = msg.notice
		return m, nil

	case cmdOutputMsg:
		m.out.show(msg.output, m.state.Width, m.paneHeight())
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if m.bar.Focused() {
		cmd := m.bar.UpdateNonKey(msg)
		return m, cmd
	}
	cmd := m.updateActive(msg)
	return m, cmd
}

// handleKey routes a key press. Precedence: ctrl+c, the focused command
// bar, the output pane, a form on top, then the global keys and the
// session view.
func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	if m.bar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.out.clear()
		}
		return m.bar.Update(msg)
	}

	if m.out.active() {
		if isScrollKey(msg) {
			return m.out.update(msg)
		}
		m.out.clear()
		if msg.Type == tea.KeyEsc {
			return nil
		}
	}

	if viewCapturesInput(m.activeView()) {
		return m.updateActive(msg)
	}

	switch {
	case msg.String() == ":":
		m.bar.Focus()
		return nil
	case msg.String() == "q":
		m.quitting = true
		return tea.Quit
	case msg.Type == tea.KeyEsc:
		if !m.pop() {
			m.state.Notice = domain.Notice{}
		}
		return nil
	}
	return m.updateActive(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	content := ""
	if m.out.active() {
		content = m.out.view()
	} else if v := m.activeView(); v != nil {
		content = v.View()
	}

	screen := strings.Join([]string{
		m.header(),
		content,
		formatter.NoticeLine(m.state.Notice),
		m.statusBar(),
		m.bar.View(),
	}, "\n")

	// Fill the alt screen so shorter frames leave no stale lines behind.
	if missing := m.state.Height - lineCount(screen); missing > 0 {
		screen += strings.Repeat("\n", missing)
	}
	return screen
}

func (m *appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// header renders the optional logo, the title with the breadcrumb of
// pushed views, and a rule.
func (m *appModel) header() string {
	var lines []string
	if logo := m.state.App.Logo; logo != "" {
		lines = append(lines, logo)
	}

	title := formatter.StylePurple.Render("merma") + " " + formatter.Dim("control de merma")
	for _, v := range m.stack[1:] {
		if t := v.Title(); t != "" {
			title += formatter.Dim(" › " + t)
		}
	}
	return strings.Join(append(lines, title, m.rule()), "\n")
}

func (m *appModel) statusBar() string {
	var hints []string
	switch {
	case m.out.active():
		hints = m.out.hints()
	case m.activeView() != nil:
		for _, b := range m.activeView().ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if !m.bar.Focused() && !m.out.active() && !viewCapturesInput(m.activeView()) {
		hints = append(hints, formatter.Dim(": command"), formatter.Dim("q: quit"))
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether v takes every key, bypassing the global
// bindings.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}
