package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/merma/internal/cli/formatter"
)

// maxLogoLines caps how much of a text banner the header shows.
const maxLogoLines = 8

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LoadLogo returns the header banner for path. A text file is shown as is
// (first lines only); an image cannot be drawn in a terminal, so its file
// name is shown instead. A missing or unreadable file yields "".
func LoadLogo(path string) string {
	if path == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}

	if imageExts[strings.ToLower(filepath.Ext(path))] {
		return formatter.Dim("[" + filepath.Base(path) + "]")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n ")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > maxLogoLines {
		lines = lines[:maxLogoLines]
	}
	for i, l := range lines {
		lines[i] = formatter.StyleHeader.Render(l)
	}
	return strings.Join(lines, "\n")
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
