package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination defaults and validation limits.
const (
	DefaultPageSize        = 5
	MinPageSize            = 1
	MaxPageSize            = 1000
	DefaultPage            = 1
	MinPage                = 1
	DefaultMaxVisiblePages = 5
	MinMaxVisiblePages     = 1
	DefaultSortField       = ""
	DefaultSortOrder       = "asc"
	SortOrderAsc           = "asc"
	SortOrderDesc          = "desc"
)

// Common validation errors.
var (
	ErrInvalidPageSize        = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage            = errors.New("page must be >= 1")
	ErrInvalidMaxVisiblePages = errors.New("max-visible-pages must be >= 1")
	ErrPageSizeNotOffered     = errors.New("page-size is not one of the configured page size options")
	ErrEmptyPageSizeOptions   = errors.New("page size options cannot be empty")
	ErrInvalidPageSizeOption  = errors.New("invalid page size option")
	ErrInvalidSortOrder       = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat      = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'pledged:desc')")
	ErrEmptySortField         = errors.New("sort field cannot be empty")
	ErrInvalidSortField       = errors.New("invalid sort field")
)

// Params holds the CLI pagination flags and provides validation.
type Params struct {
	// Page is the 1-based page number to start on.
	Page int

	// PageSize is the number of records per page.
	PageSize int

	// MaxVisiblePages bounds the page-number window of the pagination control.
	MaxVisiblePages int

	// SortField is the field name to sort by (e.g., "pledged", "percentage").
	SortField string

	// SortOrder is the sort direction: "asc" or "desc".
	SortOrder string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:            DefaultPage,
		PageSize:        DefaultPageSize,
		MaxVisiblePages: DefaultMaxVisiblePages,
		SortField:       DefaultSortField,
		SortOrder:       DefaultSortOrder,
	}
}

// Validate checks the parameters against the allowed page sizes.
// A nil or empty options set skips the membership check.
func (p Params) Validate(options PageSizeOptions) error {
	if p.Page < MinPage {
		return ErrInvalidPage
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	if len(options) > 0 && !options.Contains(p.PageSize) {
		return fmt.Errorf("%w: got %d, want one of %s", ErrPageSizeNotOffered, p.PageSize, options)
	}
	if p.MaxVisiblePages < MinMaxVisiblePages {
		return ErrInvalidMaxVisiblePages
	}
	if p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "pledged", "percentage:desc", "title:asc"
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
