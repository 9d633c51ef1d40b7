package formatter

import (
	"strconv"

	"github.com/alexanderramin/merma/internal/domain"
)

const maxCustomerWidth = 32

// FormatSalesTable renders the sales list with 1-based row numbers. The row
// at cursor is marked; pass -1 for no selection.
func FormatSalesTable(records []domain.SaleRecord, cursor int) string {
	return FormatSalesRange(records, 0, cursor)
}

// FormatSalesRange renders a window of the sales list. records[0] is row
// number offset+1; cursor indexes into records.
func FormatSalesRange(records []domain.SaleRecord, offset, cursor int) string {
	if len(records) == 0 {
		return Dim("No sales recorded yet.")
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		marker := "  "
		num := strconv.Itoa(offset + i + 1)
		name := Truncate(r.Customer, maxCustomerWidth)
		weight := domain.FormatWeight(r.WeightSold)
		if i == cursor {
			marker = StyleHeader.Render("❯ ")
			name = Bold(name)
			weight = Bold(weight)
		}
		rows = append(rows, []string{marker + num, name, weight})
	}

	return RenderAlignedTable(
		[]string{"  #", "Cliente", "Peso vendido (kg)"},
		rows,
		[]Align{AlignLeft, AlignLeft, AlignRight},
	)
}
