package cli

import (
	"strings"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptPlain = "merma > "

// commandBar is the ":" input under the status bar. Enter runs the line
// through executeCommand; up/down walk the history of this run.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	history commandHistory
	focused bool
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.ShowSuggestions = true
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{input: ti, state: state, history: commandHistory{limit: 200}}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool { return c.focused }

func (c *commandBar) SetWidth(w int) {
	c.input.Width = max(w-len(promptPlain)-1, 10)
}

// Update handles a key while the bar has focus.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		c.Blur()
		return nil

	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.setLine("")
		if line == "" {
			return nil
		}
		c.history.add(line)
		return c.executeCommand(line)

	case tea.KeyUp:
		if line, ok := c.history.prev(); ok {
			c.setLine(line)
		}
		return nil

	case tea.KeyDown:
		line, _ := c.history.next()
		c.setLine(line)
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.input.SetSuggestions(suggestCommands(c.input.Value()))
	return cmd
}

// UpdateNonKey forwards cursor blinks and similar messages to the input.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) setLine(s string) {
	c.input.SetValue(s)
	c.input.CursorEnd()
	c.input.SetSuggestions(nil)
}

func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("merma") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("press : to type a command")
	}
	return prompt + c.input.View()
}

// commandHistory keeps the lines entered during this run, oldest first.
// A repeat of the previous line is not stored twice.
type commandHistory struct {
	lines []string
	pos   int
	limit int
}

func (h *commandHistory) add(line string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
	}
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
	h.pos = len(h.lines)
}

// prev steps back one line. It reports false at the oldest entry.
func (h *commandHistory) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps forward one line; past the newest it returns "" and false.
func (h *commandHistory) next() (string, bool) {
	if h.pos >= len(h.lines)-1 {
		h.pos = len(h.lines)
		return "", false
	}
	h.pos++
	return h.lines[h.pos], true
}

// commandVerbs are the completions for the first word.
var commandVerbs = []string{
	"add", "delete", "initial", "return", "reset",
	"export", "import", "help", "clear", "quit", "exit",
}

// commandArgs are the completions for a verb's single fixed argument.
var commandArgs = map[string][]string{
	"export": {"csv", "xlsx"},
	"import": {"ventas.csv"},
}

// suggestCommands returns full-line completions for text.
func suggestCommands(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	verb, rest, hasArg := strings.Cut(text, " ")
	if !hasArg {
		return withPrefix(commandVerbs, "", verb)
	}
	args, ok := commandArgs[strings.ToLower(verb)]
	if !ok || strings.Contains(rest, " ") {
		return nil
	}
	return withPrefix(args, verb+" ", rest)
}

// withPrefix returns lead+c for every candidate c starting with typed,
// compared case-insensitively.
func withPrefix(candidates []string, lead, typed string) []string {
	typed = strings.ToLower(typed)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), typed) {
			out = append(out, lead+c)
		}
	}
	return out
}
