package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single word", input: "reset", want: []string{"reset"}},
		{name: "extra spaces", input: "  add   Ana   40  ", want: []string{"add", "Ana", "40"}},
		{name: "double quoted name", input: `add "Pollería Don José" 12,5`, want: []string{"add", "Pollería Don José", "12,5"}},
		{name: "single quoted name", input: "add 'Mercado Central' 3", want: []string{"add", "Mercado Central", "3"}},
		{name: "escaped space", input: `add Ana\ María 2`, want: []string{"add", "Ana María", "2"}},
		{name: "escaped quote inside double", input: `add "El \"Gallo\"" 1`, want: []string{"add", `El "Gallo"`, "1"}},
		{name: "empty quoted arg", input: `add "" 1`, want: []string{"add", "", "1"}},
		{name: "empty input", input: "", want: nil},
		{name: "unterminated quote", input: `add "Ana 1`, wantErr: true},
		{name: "trailing escape", input: `add Ana\`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
