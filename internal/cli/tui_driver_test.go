package cli

import (
	"testing"

	"github.com/alexanderramin/merma/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state, command bar focus).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes the terminal and drains
// Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Command focuses the command bar with ':', types input and presses Enter.
// The bar is blurred afterwards so later keys reach the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().stack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Cursor returns the session view's selected row.
func (d *TestDriver) Cursor() int {
	return d.appModel().stack[0].(*sessionView).cursor
}

// IsQuitting reports a quit from either the model or a tea.Quit command.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CmdBarFocused returns whether the command bar currently has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.bar.Focused()
}

// CmdBarValue returns the text currently in the command bar.
func (d *TestDriver) CmdBarValue() string {
	m := d.appModel()
	return m.bar.input.Value()
}

// LastOutput returns the last command output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().out.text
}
