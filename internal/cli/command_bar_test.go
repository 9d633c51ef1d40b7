package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"re", []string{"return", "reset"}},
		{"EX", []string{"export", "exit"}},
		{"export ", []string{"export csv", "export xlsx"}},
		{"export x", []string{"export xlsx"}},
		{"import v", []string{"import ventas.csv"}},
		{"add Ana", nil},
		{"export csv now", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, suggestCommands(tt.input), "input=%q", tt.input)
	}
}

func TestCommandHistory(t *testing.T) {
	t.Parallel()

	h := commandHistory{limit: 2}
	_, ok := h.prev()
	assert.False(t, ok)

	h.add("initial 100")
	h.add("add Ana 40")
	h.add("add Ana 40")
	assert.Equal(t, []string{"initial 100", "add Ana 40"}, h.lines)

	h.add("export csv")
	assert.Equal(t, []string{"add Ana 40", "export csv"}, h.lines)

	line, ok := h.prev()
	assert.True(t, ok)
	assert.Equal(t, "export csv", line)
	line, _ = h.prev()
	assert.Equal(t, "add Ana 40", line)
	_, ok = h.prev()
	assert.False(t, ok)

	line, ok = h.next()
	assert.True(t, ok)
	assert.Equal(t, "export csv", line)
	line, ok = h.next()
	assert.False(t, ok)
	assert.Empty(t, line)
}
