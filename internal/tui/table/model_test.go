package table_test

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/projectinsights/internal/pagination"
	"github.com/rshade/projectinsights/internal/tui/table"
)

type record struct {
	ID   int
	Name string
}

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func records(n int) []record {
	out := make([]record, n)
	for i := range out {
		out[i] = record{ID: i + 1, Name: fmt.Sprintf("item-%d", i+1)}
	}
	return out
}

var testColumns = []table.Column{
	{Key: "id", Label: "ID", Width: 4},
	{Key: "name", Label: "Name", Width: 10},
}

func renderRecord(r record, _ int) []string {
	return []string{strconv.Itoa(r.ID), r.Name}
}

func newTable(t *testing.T, n int, opts ...table.Option) *table.Model[record] {
	t.Helper()
	m, err := table.New(testColumns, records(n), renderRecord, opts...)
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		columns []table.Column
		opts    []table.Option
		wantErr error
	}{
		{name: "no columns", columns: nil, wantErr: table.ErrNoColumns},
		{
			name: "duplicate key",
			columns: []table.Column{
				{Key: "a", Label: "A"},
				{Key: "a", Label: "Also A"},
			},
			wantErr: table.ErrDuplicateColumnKey,
		},
		{
			name:    "zero page size",
			columns: testColumns,
			opts:    []table.Option{table.WithPageSize(0)},
			wantErr: table.ErrInvalidOptions,
		},
		{
			name:    "bad size options",
			columns: testColumns,
			opts:    []table.Option{table.WithPageSizeOptions(pagination.PageSizeOptions{10, 5})},
			wantErr: table.ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.New(tt.columns, records(3), renderRecord, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil row func", func(t *testing.T) {
		_, err := table.New[record](testColumns, records(3), nil)
		require.ErrorIs(t, err, table.ErrNilRowFunc)
	})
}

func TestModel_PagesThroughRecords(t *testing.T) {
	m := newTable(t, 25, table.WithPageSize(10))

	assert.Equal(t, 3, m.State().TotalPages())
	assert.True(t, m.PaginationVisible())
	assert.Len(t, m.VisibleItems(), 10)

	m.GoToPage(3)
	visible := m.VisibleItems()
	require.Len(t, visible, 5)
	assert.Equal(t, 21, visible[0].ID)
	assert.Equal(t, 25, visible[4].ID)
	assert.Equal(t, "Showing 21 to 25 of 25 entries", m.Control().Info())
}

func TestModel_RowFuncIndexIsSlicePosition(t *testing.T) {
	var indexes []int
	m, err := table.New(testColumns, records(12), func(r record, i int) []string {
		indexes = append(indexes, i)
		return renderRecord(r, i)
	}, table.WithPageSize(5))
	require.NoError(t, err)

	indexes = nil
	m.GoToPage(3)
	assert.Equal(t, []int{0, 1}, indexes)
	assert.Equal(t, [][]string{{"11", "item-11"}, {"12", "item-12"}}, m.Rows())
}

func TestModel_SinglePageHidesControl(t *testing.T) {
	m := newTable(t, 5, table.WithPageSize(5))
	assert.False(t, m.PaginationVisible())
	assert.NotContains(t, m.View(), "Showing")
}

func TestModel_PaginationDisabledShowsEveryRecord(t *testing.T) {
	m := newTable(t, 30, table.WithPageSize(10), table.WithPagination(false))

	assert.False(t, m.PaginationVisible())
	assert.Len(t, m.VisibleItems(), 30)
	assert.Equal(t, 1, m.State().TotalPages())
	assert.NotContains(t, m.View(), "Next")

	m.Update(keyMsg("right"))
	assert.Equal(t, 1, m.State().CurrentPage())

	require.ErrorIs(t, m.SetPageSize(5), table.ErrPaginationHidden)
	assert.Len(t, m.VisibleItems(), 30)

	m.SetItems(records(42))
	assert.Len(t, m.VisibleItems(), 42)
	first, last := m.State().Range()
	assert.Equal(t, 1, first)
	assert.Equal(t, 42, last)
}

func TestRender_HeaderBorder(t *testing.T) {
	styles := table.PlainStyles()
	m := newTable(t, 3, table.WithStyles(styles))
	assert.Contains(t, m.Render(), "├")

	styles.HeaderBorder = false
	m = newTable(t, 3, table.WithStyles(styles))
	assert.NotContains(t, m.Render(), "├")
}

func TestModel_KeyNavigation(t *testing.T) {
	m := newTable(t, 60, table.WithPageSize(5), table.WithMaxVisiblePages(5))

	m.Update(keyMsg("right"))
	assert.Equal(t, 2, m.State().CurrentPage())

	m.Update(keyMsg("l"))
	assert.Equal(t, 3, m.State().CurrentPage())

	m.Update(keyMsg("left"))
	assert.Equal(t, 2, m.State().CurrentPage())

	// Window around page 2 of 12 is [1..5]; the fifth button is page 5.
	m.Update(keyMsg("5"))
	assert.Equal(t, 5, m.State().CurrentPage())

	// Window around page 5 is [3..7]; the first button is page 3.
	m.Update(keyMsg("1"))
	assert.Equal(t, 3, m.State().CurrentPage())

	m.Update(keyMsg("+"))
	assert.Equal(t, 10, m.State().ItemsPerPage())
	assert.Equal(t, 1, m.State().CurrentPage())

	m.Update(keyMsg("-"))
	assert.Equal(t, 5, m.State().ItemsPerPage())
}

func TestModel_BoundaryKeysAreInert(t *testing.T) {
	m := newTable(t, 12, table.WithPageSize(5))

	m.Update(keyMsg("left"))
	assert.Equal(t, 1, m.State().CurrentPage())

	m.GoToPage(3)
	m.Update(keyMsg("right"))
	assert.Equal(t, 3, m.State().CurrentPage())
}

func TestModel_SetItemsResetsToFirstPage(t *testing.T) {
	m := newTable(t, 30, table.WithPageSize(5))
	m.GoToPage(4)

	m.SetItems(records(8))
	assert.Equal(t, 1, m.State().CurrentPage())
	assert.Equal(t, 8, m.State().TotalItems())
	assert.Equal(t, 2, m.State().TotalPages())
}

func TestModel_Empty(t *testing.T) {
	m := newTable(t, 0)

	assert.Empty(t, m.VisibleItems())
	assert.False(t, m.PaginationVisible())
	assert.Contains(t, m.View(), table.EmptyMessage)
	assert.Contains(t, m.Render(), table.EmptyMessage)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_ViewHeaderAndControl(t *testing.T) {
	m := newTable(t, 25, table.WithPageSize(10))
	view := m.View()

	assert.Contains(t, view, "ID")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "item-1")
	assert.Contains(t, view, "[1]")
	assert.Contains(t, view, "Items per page:")
	assert.Contains(t, view, "Showing 1 to 10 of 25 entries")
}

func TestModel_Render(t *testing.T) {
	m := newTable(t, 12, table.WithPageSize(5))
	m.GoToPage(2)
	out := m.Render()

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "item-6")
	assert.Contains(t, out, "item-10")
	assert.NotContains(t, out, "item-11")
	assert.Contains(t, out, "Showing 6 to 10 of 12 entries")
}

func TestModel_RenderPlain(t *testing.T) {
	m, err := table.New(testColumns, []record{
		{ID: 1, Name: "short"},
		{ID: 2, Name: "a rather long name"},
	}, renderRecord, table.WithPageSize(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.RenderPlain(&buf))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "ID    Name", lines[0])
	assert.Equal(t, "----  ----------", lines[1])
	assert.Equal(t, "1     short", lines[2])
	assert.Contains(t, buf.String(), "Showing 1 to 1 of 2 entries")
	assert.NotContains(t, buf.String(), "\x1b[")

	m.GoToPage(2)
	buf.Reset()
	require.NoError(t, m.RenderPlain(&buf))
	assert.Contains(t, buf.String(), "2     a rather …")
}

func TestModel_Selected(t *testing.T) {
	m := newTable(t, 12, table.WithPageSize(5))
	m.GoToPage(2)

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 6, got.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	got, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, 7, got.ID)
}
