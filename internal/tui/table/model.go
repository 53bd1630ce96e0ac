package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/projectinsights/internal/pagination"
)

// Construction errors.
var (
	ErrNoColumns          = errors.New("table requires at least one column")
	ErrDuplicateColumnKey = errors.New("duplicate column key")
	ErrInvalidOptions     = errors.New("invalid table options")
	ErrNilRowFunc         = errors.New("table requires a row function")
	ErrPaginationHidden   = errors.New("page size is fixed while pagination is hidden")
)

// headerLines is the height of the styled header row including its rule.
const headerLines = 2

// Column describes one table column. Key identifies the column and must be
// unique within a table; Label is the header text.
type Column struct {
	Key   string
	Label string
	Width int
}

// RowFunc turns one record into its cells, one per column in column order.
// index is the record's position within the displayed page slice.
type RowFunc[T any] func(item T, index int) []string

// Model is a generic paginated table. It owns its pagination state.
type Model[T any] struct {
	columns   []Column
	items     []T
	renderRow RowFunc[T]

	state           pagination.State
	pageSizeOptions pagination.PageSizeOptions
	maxVisiblePages int
	showPagination  bool

	styles Styles
	keys   KeyMap
	body   btable.Model
	width  int
}

// New creates a table over items. Columns must be non-empty with unique keys.
func New[T any](columns []Column, items []T, renderRow RowFunc[T], opts ...Option) (*Model[T], error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumnKey, col.Key)
		}
		seen[col.Key] = struct{}{}
	}
	if renderRow == nil {
		return nil, ErrNilRowFunc
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Model[T]{
		columns:         append([]Column(nil), columns...),
		items:           items,
		renderRow:       renderRow,
		state:           pagination.NewState(cfg.pageSize, len(items)),
		pageSizeOptions: cfg.pageSizeOptions,
		maxVisiblePages: cfg.maxVisiblePages,
		showPagination:  cfg.showPagination,
		styles:          cfg.styles,
		keys:            DefaultKeyMap(),
	}
	m.fitPageToItems()

	m.body = btable.New(
		btable.WithColumns(m.bodyColumns()),
		btable.WithFocused(cfg.focused),
		btable.WithStyles(btable.Styles{
			Header:   m.styles.Header,
			Cell:     m.styles.Cell,
			Selected: m.styles.Selected,
		}),
	)
	m.refresh()
	return m, nil
}

// Columns returns the column descriptors in display order.
func (m *Model[T]) Columns() []Column {
	return append([]Column(nil), m.columns...)
}

// State returns a snapshot of the pagination state.
func (m *Model[T]) State() pagination.State {
	return m.state
}

// SetItems replaces the data set wholesale and returns to page 1.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.state.SetTotalItems(len(items))
	m.state.GoToPage(1)
	m.fitPageToItems()
	m.refresh()
}

// Items returns the full data set.
func (m *Model[T]) Items() []T {
	return m.items
}

// VisibleItems returns the records of the current page.
func (m *Model[T]) VisibleItems() []T {
	return pagination.SlicePage(m.items, m.state.CurrentPage(), m.state.ItemsPerPage())
}

// Rows returns the rendered cells of the current page.
func (m *Model[T]) Rows() [][]string {
	visible := m.VisibleItems()
	rows := make([][]string, len(visible))
	for i, item := range visible {
		rows[i] = m.renderRow(item, i)
	}
	return rows
}

// GoToPage moves to page n, clamped to the valid range.
func (m *Model[T]) GoToPage(n int) {
	if m.state.GoToPage(n) {
		m.refresh()
	}
}

// SetPageSize changes the page size and returns to page 1. It fails with
// ErrPaginationHidden when the control is hidden.
func (m *Model[T]) SetPageSize(size int) error {
	if !m.showPagination {
		return ErrPaginationHidden
	}
	if err := m.state.ChangeItemsPerPage(size); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// PaginationVisible reports whether the pagination control is rendered.
func (m *Model[T]) PaginationVisible() bool {
	return m.showPagination && m.state.TotalPages() > 1
}

// Control returns the pagination control wired to this table's state.
func (m *Model[T]) Control() Control {
	c := NewControl(m.state, m.maxVisiblePages, m.pageSizeOptions)
	c.OnPageChange = func(page int) {
		m.GoToPage(page)
	}
	c.OnItemsPerPageChange = func(size int) {
		// Sizes come from the validated options, so this cannot fail.
		_ = m.SetPageSize(size)
	}
	return c
}

// SetWidth sets the width available to the table.
func (m *Model[T]) SetWidth(w int) {
	m.width = w
	m.body.SetWidth(w)
}

// Focus gives the body keyboard focus.
func (m *Model[T]) Focus() {
	m.body.Focus()
}

// Blur removes keyboard focus from the body.
func (m *Model[T]) Blur() {
	m.body.Blur()
}

// Cursor returns the index of the highlighted row within the current page.
func (m *Model[T]) Cursor() int {
	return m.body.Cursor()
}

// Selected returns the highlighted record, if any.
func (m *Model[T]) Selected() (T, bool) {
	var zero T
	visible := m.VisibleItems()
	i := m.body.Cursor()
	if i < 0 || i >= len(visible) {
		return zero, false
	}
	return visible[i], true
}

// Styles returns the styles the table draws with.
func (m *Model[T]) Styles() Styles {
	return m.styles
}

// KeyMap returns the pagination key bindings.
func (m *Model[T]) KeyMap() KeyMap {
	return m.keys
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update maps pagination keys to control actions and hands everything else
// to the body for row navigation.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) bool {
	if !m.PaginationVisible() {
		return false
	}
	c := m.Control()

	switch {
	case key.Matches(msg, m.keys.PrevPage):
		c.Previous()
	case key.Matches(msg, m.keys.NextPage):
		c.Next()
	case key.Matches(msg, m.keys.PageButton):
		c.SelectPageAt(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.GrowPageSize):
		c.SelectPageSize(m.pageSizeOptions.Next(m.state.ItemsPerPage()))
	case key.Matches(msg, m.keys.ShrinkPage):
		c.SelectPageSize(m.pageSizeOptions.Previous(m.state.ItemsPerPage()))
	default:
		return false
	}
	return true
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	if m.state.TotalItems() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.body.View(),
			m.styles.Empty.Render(EmptyMessage),
		)
	}
	if !m.PaginationVisible() {
		return m.body.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.body.View(),
		"",
		m.Control().View(m.styles),
	)
}

// fitPageToItems makes a single page hold the whole data set while the
// control is hidden, so no record is out of reach.
func (m *Model[T]) fitPageToItems() {
	if m.showPagination {
		return
	}
	_ = m.state.ChangeItemsPerPage(max(pagination.MinPageSize, len(m.items)))
}

// refresh pushes the current page into the body and resets the cursor.
func (m *Model[T]) refresh() {
	rows := m.Rows()
	bodyRows := make([]btable.Row, len(rows))
	for i, cells := range rows {
		bodyRows[i] = btable.Row(cells)
	}
	m.body.SetRows(bodyRows)
	m.body.SetHeight(max(1, len(bodyRows)) + headerLines)
	m.body.SetCursor(0)
}

func (m *Model[T]) bodyColumns() []btable.Column {
	cols := make([]btable.Column, len(m.columns))
	for i, col := range m.columns {
		cols[i] = btable.Column{Title: col.Label, Width: col.Width}
	}
	return cols
}
