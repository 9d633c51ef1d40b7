package teatest

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

type counterModel struct {
	count  int
	width  int
	typed  string
	inited bool
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case bumpMsg:
		m.count++
		m.inited = true
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			bump := func() tea.Msg { return bumpMsg{} }
			return m, tea.Batch(bump, bump)
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyRunes:
			m.typed += string(msg.Runes)
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return lipgloss.NewStyle().Bold(true).Render("count "+strconv.Itoa(m.count)) + "\n" + m.typed + "\n\n"
}

func TestDriver_DrainInitAndSize(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	m := d.Model.(counterModel)
	assert.True(t, m.inited)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 1, m.count)
}

func TestDriver_BatchIsDrained(t *testing.T) {
	d := New(t, counterModel{})
	d.PressEnter()

	assert.Equal(t, 2, d.Model.(counterModel).count)
}

func TestDriver_TypeAndPlain(t *testing.T) {
	d := New(t, counterModel{})
	d.Type("hola")

	assert.Equal(t, "count 0\nhola", d.Plain())
	assert.Equal(t, 4, d.Sent)
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, counterModel{})
	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.Type("x")
	assert.Empty(t, d.Model.(counterModel).typed)
}
