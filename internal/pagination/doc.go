// Package pagination provides the client-side pagination engine shared by the
// table widget and the structured output paths.
//
// This package contains:
//   - Pure page arithmetic: TotalPages, VisibleWindow, ItemRange, SlicePage
//   - State: the current page / page size / item count triple and its navigation transitions
//   - PageSizeOptions: the enumerated page sizes a page-size selector may offer
//   - Meta: response metadata for paginated results
//   - Params: CLI flag parsing and validation
//
// Pages are 1-based everywhere. A data set with zero items has zero pages, but
// State still reports page 1 so callers never see a page number below one.
package pagination
