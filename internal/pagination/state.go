package pagination

// State is the pagination state of one table: which page is shown, how many
// items a page holds and how many items exist. The page count is always
// derived from the other two.
//
// The zero value is not usable; construct with NewState.
type State struct {
	currentPage  int
	itemsPerPage int
	totalItems   int
}

// NewState creates a State on page 1. A non-positive itemsPerPage falls back
// to DefaultPageSize and a negative totalItems is treated as empty.
func NewState(itemsPerPage, totalItems int) State {
	if itemsPerPage < MinPageSize {
		itemsPerPage = DefaultPageSize
	}
	return State{
		currentPage:  DefaultPage,
		itemsPerPage: itemsPerPage,
		totalItems:   max(0, totalItems),
	}
}

// CurrentPage returns the 1-based current page.
func (s State) CurrentPage() int {
	return s.currentPage
}

// ItemsPerPage returns the page size.
func (s State) ItemsPerPage() int {
	return s.itemsPerPage
}

// TotalItems returns the size of the data set.
func (s State) TotalItems() int {
	return s.totalItems
}

// TotalPages returns the derived page count (0 for an empty data set).
func (s State) TotalPages() int {
	return TotalPages(s.totalItems, s.itemsPerPage)
}

// lastPage is the highest page the current page may take.
func (s State) lastPage() int {
	return max(1, s.TotalPages())
}

// HasPrevious reports whether a previous page exists.
func (s State) HasPrevious() bool {
	return s.currentPage > 1
}

// HasNext reports whether a next page exists.
func (s State) HasNext() bool {
	return s.currentPage < s.TotalPages()
}

// GoToPage moves to page n, clamped into [1, max(1, TotalPages)].
// It reports whether the current page changed.
func (s *State) GoToPage(n int) bool {
	target := min(max(n, 1), s.lastPage())
	if target == s.currentPage {
		return false
	}
	s.currentPage = target
	return true
}

// Next advances one page. It is a no-op on the last page.
func (s *State) Next() bool {
	if !s.HasNext() {
		return false
	}
	return s.GoToPage(s.currentPage + 1)
}

// Previous goes back one page. It is a no-op on the first page.
func (s *State) Previous() bool {
	if !s.HasPrevious() {
		return false
	}
	return s.GoToPage(s.currentPage - 1)
}

// ChangeItemsPerPage sets the page size and always returns to page 1, even
// when the size is unchanged. Sizes below MinPageSize are rejected.
func (s *State) ChangeItemsPerPage(n int) error {
	if n < MinPageSize {
		return ErrInvalidPageSize
	}
	s.itemsPerPage = n
	s.currentPage = DefaultPage
	return nil
}

// SetTotalItems replaces the data-set size and pulls the current page back
// inside the new page range if needed.
func (s *State) SetTotalItems(n int) {
	s.totalItems = max(0, n)
	s.currentPage = min(max(s.currentPage, 1), s.lastPage())
}

// Window returns the visible page window for the current page.
func (s State) Window(maxVisiblePages int) []int {
	return VisibleWindow(s.currentPage, s.TotalPages(), maxVisiblePages)
}

// Range returns the 1-based inclusive item range of the current page.
//
//nolint:nonamedreturns // Named returns document the pair.
func (s State) Range() (first, last int) {
	return ItemRange(s.currentPage, s.itemsPerPage, s.totalItems)
}

// Meta returns the metadata describing the current page.
func (s State) Meta() Meta {
	first, last := s.Range()
	return Meta{
		CurrentPage: s.currentPage,
		PageSize:    s.itemsPerPage,
		TotalPages:  s.TotalPages(),
		TotalItems:  s.totalItems,
		HasPrevious: s.HasPrevious(),
		HasNext:     s.HasNext(),
		FirstItem:   first,
		LastItem:    last,
	}
}
