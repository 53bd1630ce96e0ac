package projects

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/projectinsights/internal/tui/table"
)

// Column keys.
const (
	ColumnSerial     = "sno"
	ColumnPercentage = "percentageFunded"
	ColumnPledged    = "amountPledged"
	ColumnTitle      = "title"
)

// Column widths in cells.
const (
	serialWidth     = 6
	percentageWidth = 18
	pledgedWidth    = 16
	titleWidth      = 40
)

// maxExactFloat is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactFloat = 1 << 53

// Title is the heading shown above the projects table.
const Title = "Kickstarter Projects"

// Columns returns the projects table columns in display order. wide adds
// the project title.
func Columns(wide bool) []table.Column {
	cols := []table.Column{
		{Key: ColumnSerial, Label: "S.No.", Width: serialWidth},
		{Key: ColumnPercentage, Label: "Percentage Funded", Width: percentageWidth},
		{Key: ColumnPledged, Label: "Amount Pledged", Width: pledgedWidth},
	}
	if wide {
		cols = append(cols, table.Column{Key: ColumnTitle, Label: "Title", Width: titleWidth})
	}
	return cols
}

// NewRowFunc returns the table row renderer for the given column layout.
// Amounts are grouped with thousands separators ("$15,823").
func NewRowFunc(wide bool) table.RowFunc[Row] {
	printer := message.NewPrinter(language.English)

	return func(r Row, _ int) []string {
		cells := []string{
			printer.Sprintf("%d", r.Position),
			formatNumber(printer, r.PercentageFunded) + "%",
			"$" + formatNumber(printer, r.AmountPledged),
		}
		if wide {
			cells = append(cells, r.Title)
		}
		return cells
	}
}

// formatNumber prints whole numbers without decimals and everything else
// with two.
func formatNumber(p *message.Printer, v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < maxExactFloat {
		return p.Sprintf("%d", int64(v))
	}
	return p.Sprintf("%.2f", v)
}
