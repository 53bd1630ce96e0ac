package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("69")
	ColorSubtle   = lipgloss.Color("241")
	ColorCritical = lipgloss.Color("196")
	ColorSpinner  = lipgloss.Color("205")
)

// Shared styles.
var (
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	SpinnerStyle  = lipgloss.NewStyle().Foreground(ColorSpinner)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			MarginBottom(1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCritical).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorSubtle).MarginTop(1)
)

// ViewState is the phase a view is in.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateError
	ViewStateQuitting
)

// String returns the state name used in logs.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
