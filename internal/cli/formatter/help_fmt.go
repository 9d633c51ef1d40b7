package formatter

import (
	"fmt"
	"strings"
)

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatHelp renders the categorized command reference for the command bar.
func FormatHelp() string {
	categories := []helpCategory{
		{
			title: "Weights",
			commands: [][]string{
				{"initial <kg>", "Set the initial stock weight (key: i)"},
				{"return <kg>", "Set the returned weight (key: d)"},
			},
		},
		{
			title: "Sales",
			commands: [][]string{
				{"add <customer> <kg>", "Record a sale (key: a)"},
				{"delete <n>", "Delete sale number n (key: x on the selected row)"},
				{"import <file.csv>", "Replace the sales with a ventas.csv export"},
			},
		},
		{
			title: "Export",
			commands: [][]string{
				{"export csv", "Write ventas.csv (key: e)"},
				{"export xlsx", "Write control_merma.xlsx (key: s)"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"reset", "Clear sales and weights (key: R)"},
				{"help", "Show this command reference"},
				{"exit / quit", "Quit merma"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Weights accept two decimals; a comma works as the decimal separator."))

	return RenderBox("Commands", b.String())
}
