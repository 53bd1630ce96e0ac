package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

const (
	plainColumnGap = "  "
	ellipsis       = "…"
)

// Render returns the current page as a static bordered table followed by
// the pagination control, for styled non-interactive output.
func (m *Model[T]) Render() string {
	labels := make([]string, len(m.columns))
	for i, col := range m.columns {
		labels[i] = col.Label
	}

	// The table draws the header rule itself when HeaderBorder is set.
	header := m.styles.Header.BorderBottom(false)
	t := ltable.New().
		Border(m.styles.BorderShape).
		BorderStyle(m.styles.Border).
		BorderHeader(m.styles.HeaderBorder).
		Headers(labels...).
		Rows(m.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			width := m.columns[col].Width
			if row == ltable.HeaderRow {
				return header.Width(width)
			}
			return m.styles.Cell.Width(width)
		})

	parts := []string{t.Render()}
	switch {
	case m.state.TotalItems() == 0:
		parts = append(parts, m.styles.Empty.Render(EmptyMessage))
	case m.PaginationVisible():
		parts = append(parts, m.Control().View(m.styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderPlain writes the current page as fixed-width text without escape
// sequences. Cells wider than their column are truncated with an ellipsis.
func (m *Model[T]) RenderPlain(w io.Writer) error {
	var b strings.Builder

	labels := make([]string, len(m.columns))
	rule := make([]string, len(m.columns))
	for i, col := range m.columns {
		labels[i] = col.Label
		rule[i] = strings.Repeat("-", col.Width)
	}
	m.writePlainLine(&b, labels)
	m.writePlainLine(&b, rule)
	for _, cells := range m.Rows() {
		m.writePlainLine(&b, cells)
	}

	switch {
	case m.state.TotalItems() == 0:
		b.WriteString(EmptyMessage + "\n")
	case m.PaginationVisible():
		b.WriteString("\n")
		b.WriteString(ansi.Strip(m.Control().View(PlainStyles())))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

func (m *Model[T]) writePlainLine(b *strings.Builder, cells []string) {
	padded := make([]string, len(m.columns))
	for i, col := range m.columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = fitCell(cell, col.Width)
	}
	b.WriteString(strings.TrimRight(strings.Join(padded, plainColumnGap), " "))
	b.WriteString("\n")
}

// fitCell truncates or right-pads s to exactly width cells.
func fitCell(s string, width int) string {
	if width <= 0 {
		return s
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, ellipsis)
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}
