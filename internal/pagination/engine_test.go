package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		itemsPerPage int
		want         int
	}{
		{name: "empty", totalItems: 0, itemsPerPage: 10, want: 0},
		{name: "exact multiple", totalItems: 30, itemsPerPage: 10, want: 3},
		{name: "partial last page", totalItems: 25, itemsPerPage: 10, want: 3},
		{name: "single item", totalItems: 1, itemsPerPage: 5, want: 1},
		{name: "zero page size", totalItems: 10, itemsPerPage: 0, want: 0},
		{name: "negative total", totalItems: -4, itemsPerPage: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.itemsPerPage))
		})
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		wantWindow []int
	}{
		{name: "all pages fit", current: 1, total: 5, maxVisible: 5, wantWindow: []int{1, 2, 3, 4, 5}},
		{name: "centered", current: 5, total: 10, maxVisible: 3, wantWindow: []int{4, 5, 6}},
		{name: "clamped at start", current: 1, total: 10, maxVisible: 3, wantWindow: []int{1, 2, 3}},
		{name: "clamped at end", current: 10, total: 10, maxVisible: 3, wantWindow: []int{8, 9, 10}},
		{name: "near end slides left", current: 9, total: 10, maxVisible: 5, wantWindow: []int{6, 7, 8, 9, 10}},
		{name: "even window", current: 5, total: 10, maxVisible: 4, wantWindow: []int{3, 4, 5, 6}},
		{name: "fewer pages than window", current: 2, total: 3, maxVisible: 5, wantWindow: []int{1, 2, 3}},
		{name: "no pages", current: 1, total: 0, maxVisible: 5, wantWindow: []int{}},
		{name: "zero window", current: 1, total: 4, maxVisible: 0, wantWindow: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWindow, VisibleWindow(tt.current, tt.total, tt.maxVisible))
		})
	}
}

func TestVisibleWindow_Properties(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for maxVisible := 1; maxVisible <= 7; maxVisible++ {
			for current := 1; current <= total; current++ {
				window := VisibleWindow(current, total, maxVisible)

				require.Len(t, window, min(maxVisible, total),
					"current=%d total=%d max=%d", current, total, maxVisible)
				assert.Contains(t, window, current)
				assert.GreaterOrEqual(t, window[0], 1)
				assert.LessOrEqual(t, window[len(window)-1], total)
				for i := 1; i < len(window); i++ {
					assert.Equal(t, window[i-1]+1, window[i], "window must be contiguous")
				}
			}
		}
	}
}

func TestItemRange(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		perPage   int
		total     int
		wantFirst int
		wantLast  int
	}{
		{name: "first page", current: 1, perPage: 10, total: 50, wantFirst: 1, wantLast: 10},
		{name: "middle page", current: 2, perPage: 10, total: 25, wantFirst: 11, wantLast: 20},
		{name: "short last page", current: 3, perPage: 10, total: 25, wantFirst: 21, wantLast: 25},
		{name: "empty data set", current: 1, perPage: 10, total: 0, wantFirst: 0, wantLast: 0},
		{name: "past the end", current: 4, perPage: 10, total: 25, wantFirst: 0, wantLast: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := ItemRange(tt.current, tt.perPage, tt.total)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestSlicePage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("full page", func(t *testing.T) {
		assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, SlicePage(items, 2, 10))
	})

	t.Run("short last page", func(t *testing.T) {
		assert.Equal(t, []int{20, 21, 22, 23, 24}, SlicePage(items, 3, 10))
	})

	t.Run("past the end", func(t *testing.T) {
		assert.Empty(t, SlicePage(items, 4, 10))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SlicePage([]string{}, 1, 10))
	})

	t.Run("does not mutate source on append", func(t *testing.T) {
		page := SlicePage(items, 1, 5)
		_ = append(page, 999)
		assert.Equal(t, 5, items[5])
	})
}
