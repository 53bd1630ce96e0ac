package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/projectinsights/internal/pagination"
)

// EmptyMessage is shown in place of the item range when there is no data.
const EmptyMessage = "No entries to show"

// Control is the pagination control: previous/next actions, one action per
// page in the visible window and a page-size selector.
//
// Control holds a snapshot of the pagination state and never mutates it.
// Each enabled action invokes exactly one callback; disabled actions invoke
// none. The owner of the state applies the change.
type Control struct {
	CurrentPage     int
	TotalItems      int
	ItemsPerPage    int
	MaxVisiblePages int

	// PageSizeOptions lists the sizes offered by the selector. The selector
	// is hidden when it is empty or OnItemsPerPageChange is nil.
	PageSizeOptions pagination.PageSizeOptions

	OnPageChange         func(page int)
	OnItemsPerPageChange func(size int)
}

// NewControl builds a Control from a pagination state.
func NewControl(state pagination.State, maxVisiblePages int, options pagination.PageSizeOptions) Control {
	return Control{
		CurrentPage:     state.CurrentPage(),
		TotalItems:      state.TotalItems(),
		ItemsPerPage:    state.ItemsPerPage(),
		MaxVisiblePages: maxVisiblePages,
		PageSizeOptions: options,
	}
}

// TotalPages returns the page count derived from the snapshot.
func (c Control) TotalPages() int {
	return pagination.TotalPages(c.TotalItems, c.ItemsPerPage)
}

// Pages returns the page numbers of the visible window.
func (c Control) Pages() []int {
	return pagination.VisibleWindow(c.CurrentPage, c.TotalPages(), c.MaxVisiblePages)
}

// PreviousDisabled reports whether the previous action is disabled.
func (c Control) PreviousDisabled() bool {
	return c.CurrentPage <= 1
}

// NextDisabled reports whether the next action is disabled.
func (c Control) NextDisabled() bool {
	return c.CurrentPage >= c.TotalPages()
}

// SizeSelectorEnabled reports whether the page-size selector is shown.
func (c Control) SizeSelectorEnabled() bool {
	return len(c.PageSizeOptions) > 0 && c.OnItemsPerPageChange != nil
}

// Previous requests the page before the current one.
func (c Control) Previous() bool {
	if c.PreviousDisabled() {
		return false
	}
	return c.emitPage(c.CurrentPage - 1)
}

// Next requests the page after the current one.
func (c Control) Next() bool {
	if c.NextDisabled() {
		return false
	}
	return c.emitPage(c.CurrentPage + 1)
}

// SelectPage requests page n. Only pages inside the visible window are
// actions; anything else is ignored.
func (c Control) SelectPage(n int) bool {
	for _, p := range c.Pages() {
		if p == n {
			return c.emitPage(n)
		}
	}
	return false
}

// SelectPageAt requests the page of the i-th (0-based) window button.
func (c Control) SelectPageAt(i int) bool {
	pages := c.Pages()
	if i < 0 || i >= len(pages) {
		return false
	}
	return c.emitPage(pages[i])
}

// SelectPageSize requests a new page size. Sizes not offered are ignored.
func (c Control) SelectPageSize(size int) bool {
	if !c.SizeSelectorEnabled() || !c.PageSizeOptions.Contains(size) {
		return false
	}
	c.OnItemsPerPageChange(size)
	return true
}

func (c Control) emitPage(page int) bool {
	if c.OnPageChange == nil {
		return false
	}
	c.OnPageChange(page)
	return true
}

// Info returns "Showing X to Y of Z entries", or EmptyMessage for no data.
func (c Control) Info() string {
	first, last := pagination.ItemRange(c.CurrentPage, c.ItemsPerPage, c.TotalItems)
	if c.TotalItems == 0 || first == 0 {
		return EmptyMessage
	}
	return fmt.Sprintf("Showing %d to %d of %d entries", first, last, c.TotalItems)
}

// View renders the control on up to three lines: navigation, size selector
// and the info line. The current page and size are bracketed so they stay
// marked without color.
func (c Control) View(styles Styles) string {
	nav := make([]string, 0, len(c.Pages())+2)

	prev := "‹ Prev"
	if c.PreviousDisabled() {
		nav = append(nav, styles.Disabled.Render(prev))
	} else {
		nav = append(nav, styles.PageButton.Render(prev))
	}

	for _, p := range c.Pages() {
		if p == c.CurrentPage {
			nav = append(nav, styles.CurrentPage.Render("["+strconv.Itoa(p)+"]"))
			continue
		}
		nav = append(nav, styles.PageButton.Render(" "+strconv.Itoa(p)+" "))
	}

	next := "Next ›"
	if c.NextDisabled() {
		nav = append(nav, styles.Disabled.Render(next))
	} else {
		nav = append(nav, styles.PageButton.Render(next))
	}

	lines := []string{strings.Join(nav, " ")}

	if c.SizeSelectorEnabled() {
		sizes := make([]string, 0, len(c.PageSizeOptions))
		for _, size := range c.PageSizeOptions {
			if size == c.ItemsPerPage {
				sizes = append(sizes, styles.CurrentPage.Render("["+strconv.Itoa(size)+"]"))
				continue
			}
			sizes = append(sizes, styles.PageButton.Render(" "+strconv.Itoa(size)+" "))
		}
		lines = append(lines, styles.Info.Render("Items per page:")+" "+strings.Join(sizes, " "))
	}

	lines = append(lines, styles.Info.Render(c.Info()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
