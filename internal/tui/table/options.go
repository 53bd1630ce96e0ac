package table

import (
	"fmt"

	"github.com/rshade/projectinsights/internal/pagination"
)

// Option configures a Model.
type Option func(*config)

type config struct {
	showPagination  bool
	pageSize        int
	pageSizeOptions pagination.PageSizeOptions
	maxVisiblePages int
	styles          Styles
	focused         bool
}

func defaultConfig() config {
	return config{
		showPagination:  true,
		pageSize:        pagination.DefaultPageSize,
		pageSizeOptions: pagination.DefaultPageSizeOptions(),
		maxVisiblePages: pagination.DefaultMaxVisiblePages,
		styles:          DefaultStyles(),
		focused:         true,
	}
}

func (c config) validate() error {
	if c.pageSize < pagination.MinPageSize {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, pagination.ErrInvalidPageSize)
	}
	if c.maxVisiblePages < pagination.MinMaxVisiblePages {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, pagination.ErrInvalidMaxVisiblePages)
	}
	if len(c.pageSizeOptions) > 0 {
		if err := c.pageSizeOptions.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	return nil
}

// WithPagination toggles the pagination control. With the control hidden the
// table shows every record on a single page and page-size settings are ignored.
func WithPagination(show bool) Option {
	return func(c *config) {
		c.showPagination = show
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithPageSizeOptions sets the sizes offered by the page-size selector.
// An empty list hides the selector.
func WithPageSizeOptions(options pagination.PageSizeOptions) Option {
	return func(c *config) {
		c.pageSizeOptions = options
	}
}

// WithMaxVisiblePages sets how many page buttons the control shows.
func WithMaxVisiblePages(n int) Option {
	return func(c *config) {
		c.maxVisiblePages = n
	}
}

// WithStyles sets the styles of the table and its control.
func WithStyles(s Styles) Option {
	return func(c *config) {
		c.styles = s
	}
}

// WithFocused sets whether the body starts with keyboard focus.
func WithFocused(f bool) Option {
	return func(c *config) {
		c.focused = f
	}
}
