package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderAlignedTable_RightAlignsNumbers(t *testing.T) {
	out := ansi.Strip(RenderAlignedTable(
		[]string{"A", "B"},
		[][]string{{"x", "1.00"}, {"yy", "10.00"}},
		[]Align{AlignLeft, AlignRight},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "A       B", lines[0])
	assert.Equal(t, "x    1.00", lines[2])
	assert.Equal(t, "yy  10.00", lines[3])
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
}

func TestRenderAlignedTable_ShortRowsArePadded(t *testing.T) {
	out := ansi.Strip(RenderTable(
		[]string{"NAME", "KG"},
		[][]string{{"only"}},
	))
	assert.Contains(t, out, "only")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "────")
}
