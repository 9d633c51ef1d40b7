// Package teatest drives a bubbletea model synchronously in tests.
//
// Update is called directly and every returned Cmd is executed and fed back
// until the model settles. Cmds that block (cursor blink timers) are given a
// short deadline and dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may produce.
const MaxDrainDepth = 100

// cmdTimeout separates instant Cmds (message factories, in-memory service
// calls) from timer-backed ones such as cursor blinks (~530ms).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is produced by a Cmd. The runtime
	// normally intercepts it, so the model alone cannot report it.
	Quitting bool

	// Sent counts the messages delivered to Update, including those
	// produced by drained Cmds.
	Sent int
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model and applies opts.
// Call DrainInit afterwards to process the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command and everything it produces.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drainCmd(d.update(msg), 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressType sends a non-rune key such as tea.KeyTab.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.PressType(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.PressType(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.PressType(tea.KeyCtrlC) }
func (d *Driver) PressUp()    { d.T.Helper(); d.PressType(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.PressType(tea.KeyDown) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── output ───────────────────────────────────────────────────────────────────

// View returns the model's rendered output, styling included.
func (d *Driver) View() string {
	return d.Model.View()
}

// Plain returns the rendered output with ANSI sequences removed and
// trailing blank lines trimmed.
func (d *Driver) Plain() string {
	return strings.TrimRight(ansi.Strip(d.Model.View()), "\n")
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) update(msg tea.Msg) tea.Cmd {
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.Sent++
	return cmd
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.update(msg)
	default:
		d.drainCmd(d.update(msg), depth+1)
	}
}

// execCmdWithTimeout runs cmd in a goroutine and returns nil if it does not
// finish within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
