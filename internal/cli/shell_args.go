package cli

import (
	"errors"
	"strings"
)

// splitShellArgs splits a command line on whitespace, honoring single and
// double quotes and backslash escapes, so customer names may contain spaces:
//
//	add "Pollería Don José" 12,5
func splitShellArgs(input string) ([]string, error) {
	var (
		parts   []string
		cur     strings.Builder
		quote   rune // 0, '\'' or '"'
		escaped bool
		started bool
	)

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			started = true
		case r == '\'' || r == '"':
			quote = r
			started = true
		case r == ' ' || r == '\t' || r == '\n':
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, errors.New("unterminated escape sequence")
	}
	if quote != 0 {
		return nil, errors.New("unterminated quoted string")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
