package projects

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/projectinsights/internal/pagination"
	"github.com/rshade/projectinsights/internal/tui/table"
)

// Arrange sorts list by field and numbers the result from 1. An empty field
// keeps the data set's order.
func Arrange(list []Project, field, order string) []Row {
	if field != "" {
		list = NewSorter().Sort(list, field, order)
	}
	return NewRows(list)
}

// NewTable builds the projects table over rows.
func NewTable(rows []Row, wide bool, opts ...table.Option) (*table.Model[Row], error) {
	return table.New(Columns(wide), rows, NewRowFunc(wide), opts...)
}

type viewKeys struct {
	table     table.KeyMap
	SortField key.Binding
	SortOrder key.Binding
}

func (k viewKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.SortField, k.SortOrder}, k.table.ShortHelp()...)
}

func (k viewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// TableView is the interactive projects table with sorting.
type TableView struct {
	projects  []Project
	table     *table.Model[Row]
	sortField string
	sortOrder string
	keys      viewKeys
	help      help.Model
}

// NewTableView creates the interactive view. sortField may be empty.
func NewTableView(list []Project, sortField, sortOrder string, wide bool, opts ...table.Option) (*TableView, error) {
	if sortOrder == "" {
		sortOrder = pagination.SortOrderAsc
	}
	t, err := NewTable(Arrange(list, sortField, sortOrder), wide, opts...)
	if err != nil {
		return nil, err
	}
	return &TableView{
		projects:  list,
		table:     t,
		sortField: sortField,
		sortOrder: sortOrder,
		keys: viewKeys{
			table: t.KeyMap(),
			SortField: key.NewBinding(
				key.WithKeys("s"),
				key.WithHelp("s", "sort field"),
			),
			SortOrder: key.NewBinding(
				key.WithKeys("o"),
				key.WithHelp("o", "sort order"),
			),
		},
		help: help.New(),
	}, nil
}

// Table returns the underlying table.
func (v *TableView) Table() *table.Model[Row] {
	return v.table
}

// Sort returns the active sort field and order.
func (v *TableView) Sort() (string, string) {
	return v.sortField, v.sortOrder
}

// Init implements tea.Model.
func (v *TableView) Init() tea.Cmd {
	return v.table.Init()
}

// Update implements tea.Model.
func (v *TableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.SortField):
			v.cycleSort()
			return v, nil
		case key.Matches(msg, v.keys.SortOrder):
			v.toggleOrder()
			return v, nil
		}
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
	}

	_, cmd := v.table.Update(msg)
	return v, cmd
}

func (v *TableView) cycleSort() {
	fields := CycleFields()
	next := fields[0]
	if i := slices.Index(fields, v.sortField); i >= 0 {
		next = fields[(i+1)%len(fields)]
	}
	v.sortField = next
	v.table.SetItems(Arrange(v.projects, v.sortField, v.sortOrder))
}

func (v *TableView) toggleOrder() {
	if v.sortOrder == pagination.SortOrderDesc {
		v.sortOrder = pagination.SortOrderAsc
	} else {
		v.sortOrder = pagination.SortOrderDesc
	}
	if v.sortField != "" {
		v.table.SetItems(Arrange(v.projects, v.sortField, v.sortOrder))
	}
}

// View implements tea.Model.
func (v *TableView) View() string {
	sortLine := "unsorted"
	if v.sortField != "" {
		sortLine = fmt.Sprintf("sorted by %s (%s)", v.sortField, v.sortOrder)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.table.View(),
		"",
		v.table.Styles().Help.Render(sortLine),
		v.help.View(v.keys),
	)
}
