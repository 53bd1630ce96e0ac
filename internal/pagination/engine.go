package pagination

// halfWindowDivisor splits the visible window around the current page.
const halfWindowDivisor = 2

// TotalPages returns the number of pages needed to show totalItems at
// itemsPerPage per page. It returns 0 for an empty data set or a non-positive
// page size.
func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}
	pages := totalItems / itemsPerPage
	if totalItems%itemsPerPage > 0 {
		pages++
	}
	return pages
}

// VisibleWindow returns the contiguous, ascending page numbers to offer as
// direct navigation targets.
//
// The window is centered on currentPage and clamped to [1, totalPages]. When
// the end is clamped the start slides left, so the window always holds
// min(maxVisiblePages, totalPages) pages and moves one page at a time as
// currentPage changes.
func VisibleWindow(currentPage, totalPages, maxVisiblePages int) []int {
	if totalPages <= 0 || maxVisiblePages <= 0 {
		return []int{}
	}

	start := max(1, currentPage-maxVisiblePages/halfWindowDivisor)
	end := min(totalPages, start+maxVisiblePages-1)
	if end-start+1 < maxVisiblePages {
		start = max(1, end-maxVisiblePages+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ItemRange returns the 1-based, inclusive positions of the first and last
// items on currentPage, as shown in "Showing X to Y of Z".
// An empty data set, or a page past the end of the data, yields (0, 0).
//
//nolint:nonamedreturns // Named returns document the pair.
func ItemRange(currentPage, itemsPerPage, totalItems int) (first, last int) {
	if totalItems <= 0 || itemsPerPage <= 0 || currentPage < 1 {
		return 0, 0
	}

	first = (currentPage-1)*itemsPerPage + 1
	if first > totalItems {
		return 0, 0
	}
	last = min(currentPage*itemsPerPage, totalItems)
	return first, last
}

// SlicePage returns the records shown on currentPage.
// The result shares the backing array with items but has its capacity
// clipped, so appending to it never writes into items.
func SlicePage[T any](items []T, currentPage, itemsPerPage int) []T {
	if len(items) == 0 || currentPage < 1 || itemsPerPage <= 0 {
		return []T{}
	}

	start := (currentPage - 1) * itemsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+itemsPerPage, len(items))

	return items[start:end:end]
}
