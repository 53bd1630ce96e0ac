// Package tui contains the Bubble Tea views, shared styles and output mode
// detection of projectinsights.
package tui
