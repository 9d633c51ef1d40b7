package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/merma/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// VerdictColor returns the style for a verdict.
func VerdictColor(v domain.Verdict) lipgloss.Style {
	switch v {
	case domain.VerdictWithin:
		return StyleGreen
	case domain.VerdictExceeded:
		return StyleRed
	default:
		return StyleYellow
	}
}

// VerdictIndicator returns the colored verdict line shown under the results.
func VerdictIndicator(v domain.Verdict) string {
	limit := domain.ShrinkageThresholdPct.String()
	switch v {
	case domain.VerdictWithin:
		return StyleGreen.Render(fmt.Sprintf("✔ Merma dentro del rango permitido (≤ %s%%)", limit))
	case domain.VerdictExceeded:
		return StyleRed.Render(fmt.Sprintf("⚠ Atención: Merma superior al %s%%", limit))
	default:
		return StyleYellow.Render("● Ingrese el peso inicial para calcular la merma")
	}
}

// NoticeLine renders a one-line action result.
func NoticeLine(n domain.Notice) string {
	if n.Message == "" {
		return ""
	}
	switch n.Level {
	case domain.NoticeSuccess:
		return StyleGreen.Render("✔ ") + n.Message
	case domain.NoticeWarning:
		return StyleYellow.Render("⚠ " + n.Message)
	default:
		return StyleBlue.Render("ℹ ") + Dim(n.Message)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
