package cli

import (
	"fmt"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows command output (help text) over the session view until
// a non-scroll key dismisses it.
type outputPane struct {
	text string
	vp   viewport.Model
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	// Letter keys stay free for the global bindings.
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

func (o *outputPane) active() bool { return o.text != "" }

func (o *outputPane) show(text string, width, height int) {
	o.text = text
	o.vp.SetContent(text)
	o.resize(width, height)
	o.vp.GotoTop()
}

func (o *outputPane) clear() { o.text = "" }

func (o *outputPane) resize(width, height int) {
	o.vp.Width = width
	o.vp.Height = height
}

func (o *outputPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	o.vp, cmd = o.vp.Update(msg)
	return cmd
}

// view renders the scrolled window, or the whole text before the terminal
// size is known.
func (o *outputPane) view() string {
	if o.vp.Height == 0 {
		return o.text
	}
	return o.vp.View()
}

func (o *outputPane) hints() []string {
	if o.vp.TotalLineCount() <= o.vp.Height {
		return []string{formatter.Dim("esc: dismiss")}
	}
	pos := fmt.Sprintf("[%d%%]", int(o.vp.ScrollPercent()*100))
	switch {
	case o.vp.AtTop():
		pos = "[TOP]"
	case o.vp.AtBottom():
		pos = "[END]"
	}
	return []string{formatter.Dim(pos), formatter.Dim("↑↓ pgup/pgdn: scroll"), formatter.Dim("esc: dismiss")}
}

// isScrollKey reports whether msg scrolls the pane instead of dismissing it.
func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
