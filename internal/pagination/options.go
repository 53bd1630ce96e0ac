package pagination

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PageSizeOptions is the ordered set of page sizes a page-size selector
// offers. It is configuration, not a constant, so each table can carry its
// own size policy.
type PageSizeOptions []int

// DefaultPageSizeOptions returns the standard choices {5, 10, 15}.
func DefaultPageSizeOptions() PageSizeOptions {
	return PageSizeOptions{5, 10, 15} //nolint:mnd // Standard page-size choices.
}

// Validate checks that the options are non-empty, positive, strictly
// ascending and within [MinPageSize, MaxPageSize].
func (o PageSizeOptions) Validate() error {
	if len(o) == 0 {
		return ErrEmptyPageSizeOptions
	}
	for i, size := range o {
		if size < MinPageSize || size > MaxPageSize {
			return fmt.Errorf("%w: %d", ErrInvalidPageSizeOption, size)
		}
		if i > 0 && size <= o[i-1] {
			return fmt.Errorf("%w: options must be strictly ascending, got %s", ErrInvalidPageSizeOption, o)
		}
	}
	return nil
}

// Contains reports whether size is one of the options.
func (o PageSizeOptions) Contains(size int) bool {
	return slices.Contains(o, size)
}

// Next returns the smallest option above current, wrapping to the first.
func (o PageSizeOptions) Next(current int) int {
	if len(o) == 0 {
		return current
	}
	for _, size := range o {
		if size > current {
			return size
		}
	}
	return o[0]
}

// Previous returns the largest option below current, wrapping to the last.
func (o PageSizeOptions) Previous(current int) int {
	if len(o) == 0 {
		return current
	}
	for i := len(o) - 1; i >= 0; i-- {
		if o[i] < current {
			return o[i]
		}
	}
	return o[len(o)-1]
}

// String renders the options as a comma-separated list.
func (o PageSizeOptions) String() string {
	parts := make([]string, len(o))
	for i, size := range o {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, ", ")
}
