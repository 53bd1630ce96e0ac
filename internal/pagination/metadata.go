package pagination

// Meta contains metadata about a paginated result.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
}

// NewMeta creates pagination metadata from parameters and total count.
// The requested page is clamped the same way State clamps it.
func NewMeta(params Params, totalCount int) Meta {
	s := NewState(params.PageSize, totalCount)
	s.GoToPage(params.Page)
	return s.Meta()
}
