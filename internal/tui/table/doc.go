// Package table provides a generic, paginated table component for Bubble Tea
// applications.
//
// A Model owns its own pagination state. Callers supply:
//   - Column descriptors (unique keys, display labels, widths) in display order
//   - The full record list of any type T
//   - A RowFunc that turns one record into its cells
//
// The table shows only the current page of records and, when more than one
// page exists, a pagination control with previous/next actions, a sliding
// window of page-number buttons and a page-size selector. The same component
// renders statically (Render, RenderPlain) for non-interactive output.
package table
