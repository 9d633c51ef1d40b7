package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/merma/internal/domain"
)

// FormatSummary renders the results panel: the four weights, the shrinkage
// percentage and the verdict.
func FormatSummary(s domain.ShrinkageSummary) string {
	var b strings.Builder

	line := func(label, value, note string) {
		b.WriteString(fmt.Sprintf("%-16s %12s", label, value))
		if note != "" {
			b.WriteString("  " + note)
		}
		b.WriteString("\n")
	}

	sales := "sales"
	if s.RecordCount == 1 {
		sales = "sale"
	}

	line("Initial weight", FormatKg(s.InitialWeight), "")
	line("Sold", FormatKg(s.TotalSold), Dim(fmt.Sprintf("(%d %s)", s.RecordCount, sales)))
	line("Returned", FormatKg(s.ReturnedWeight), "")

	pct := Dim("(n/a)")
	if s.Determined() {
		pct = VerdictColor(s.Verdict).Render("(" + FormatPercent(s.ShrinkagePercent) + ")")
	}
	line("Shrinkage", FormatKg(s.Shrinkage), pct)

	b.WriteString("\n")
	b.WriteString(VerdictIndicator(s.Verdict))

	return RenderBox("Results", b.String())
}

// FormatSummaryPlain renders the summary as label/value lines without a box,
// for non-interactive output.
func FormatSummaryPlain(s domain.ShrinkageSummary) string {
	rows := [][]string{
		{"Initial weight", FormatKg(s.InitialWeight)},
		{"Sold", FormatKg(s.TotalSold)},
		{"Returned", FormatKg(s.ReturnedWeight)},
		{"Shrinkage", FormatKg(s.Shrinkage)},
		{"Shrinkage %", FormatPercent(s.ShrinkagePercent)},
	}
	return RenderAlignedTable([]string{"MEASURE", "VALUE"}, rows, []Align{AlignLeft, AlignRight}) +
		"\n" + VerdictIndicator(s.Verdict) + "\n"
}
