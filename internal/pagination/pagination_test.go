package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	options := DefaultPageSizeOptions()

	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(),
		},
		{
			name:    "page below one",
			params:  Params{Page: 0, PageSize: 5, MaxVisiblePages: 5, SortOrder: "asc"},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "page size out of bounds",
			params:  Params{Page: 1, PageSize: 0, MaxVisiblePages: 5, SortOrder: "asc"},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "page size not offered",
			params:  Params{Page: 1, PageSize: 7, MaxVisiblePages: 5, SortOrder: "asc"},
			wantErr: ErrPageSizeNotOffered,
		},
		{
			name:    "window too small",
			params:  Params{Page: 1, PageSize: 10, MaxVisiblePages: 0, SortOrder: "asc"},
			wantErr: ErrInvalidMaxVisiblePages,
		},
		{
			name:    "bad sort order",
			params:  Params{Page: 1, PageSize: 10, MaxVisiblePages: 3, SortOrder: "up"},
			wantErr: ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(options)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("no options skips membership check", func(t *testing.T) {
		p := Params{Page: 1, PageSize: 7, MaxVisiblePages: 5, SortOrder: "asc"}
		assert.NoError(t, p.Validate(nil))
	})
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   bool
	}{
		{name: "empty", sortStr: "", wantField: DefaultSortField, wantOrder: DefaultSortOrder},
		{name: "field only", sortStr: "pledged", wantField: "pledged", wantOrder: "asc"},
		{name: "field and order desc", sortStr: "percentage:DESC", wantField: "percentage", wantOrder: "desc"},
		{name: "invalid format", sortStr: "field:order:extra", wantErr: true},
		{name: "empty field", sortStr: ":asc", wantErr: true},
		{name: "invalid order", sortStr: "pledged:sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestPageSizeOptions(t *testing.T) {
	options := DefaultPageSizeOptions()
	require.NoError(t, options.Validate())

	assert.True(t, options.Contains(10))
	assert.False(t, options.Contains(7))
	assert.Equal(t, 10, options.Next(5))
	assert.Equal(t, 5, options.Next(15), "wraps to first")
	assert.Equal(t, 10, options.Next(7), "unlisted size moves to next larger option")
	assert.Equal(t, 10, options.Previous(15))
	assert.Equal(t, 15, options.Previous(5), "wraps to last")
	assert.Equal(t, "5, 10, 15", options.String())

	t.Run("invalid sets", func(t *testing.T) {
		assert.ErrorIs(t, PageSizeOptions{}.Validate(), ErrEmptyPageSizeOptions)
		assert.ErrorIs(t, PageSizeOptions{0, 5}.Validate(), ErrInvalidPageSizeOption)
		assert.ErrorIs(t, PageSizeOptions{10, 5}.Validate(), ErrInvalidPageSizeOption)
		assert.ErrorIs(t, PageSizeOptions{5, 5}.Validate(), ErrInvalidPageSizeOption)
	})
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		totalCount int
		want       Meta
	}{
		{
			name:       "first page",
			params:     Params{Page: 1, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 1, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: false, HasNext: true, FirstItem: 1, LastItem: 10,
			},
		},
		{
			name:       "last page",
			params:     Params{Page: 3, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: true, HasNext: false, FirstItem: 21, LastItem: 25,
			},
		},
		{
			name:       "page past end is clamped",
			params:     Params{Page: 9, PageSize: 10},
			totalCount: 25,
			want: Meta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: true, HasNext: false, FirstItem: 21, LastItem: 25,
			},
		},
		{
			name:       "empty data set",
			params:     Params{Page: 1, PageSize: 10},
			totalCount: 0,
			want: Meta{
				CurrentPage: 1, PageSize: 10, TotalPages: 0, TotalItems: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.totalCount))
		})
	}
}
