package table

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")
	colorText   = lipgloss.Color("252")
	colorSelect = lipgloss.Color("229")
	colorSelBg  = lipgloss.Color("57")
)

// Styles is the styling hook of a table. Every element of the table and its
// pagination control is drawn with one of these styles.
type Styles struct {
	Header       lipgloss.Style
	Cell         lipgloss.Style
	Selected     lipgloss.Style
	Border       lipgloss.Style
	PageButton   lipgloss.Style
	CurrentPage  lipgloss.Style
	Disabled     lipgloss.Style
	Info         lipgloss.Style
	Empty        lipgloss.Style
	Help         lipgloss.Style
	BorderShape  lipgloss.Border
	HeaderBorder bool
}

// DefaultStyles returns the colored styles used in a terminal.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Cell:         lipgloss.NewStyle().Foreground(colorText).Padding(0, 1),
		Selected:     lipgloss.NewStyle().Bold(true).Foreground(colorSelect).Background(colorSelBg),
		Border:       lipgloss.NewStyle().Foreground(colorMuted),
		PageButton:   lipgloss.NewStyle().Foreground(colorText),
		CurrentPage:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true),
		Disabled:     lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
		Info:         lipgloss.NewStyle().Foreground(colorMuted),
		Empty:        lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Help:         lipgloss.NewStyle().Foreground(colorMuted),
		BorderShape:  lipgloss.RoundedBorder(),
		HeaderBorder: true,
	}
}

// PlainStyles returns styles that add no escape sequences, for pipes and files.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:       plain,
		Cell:         plain,
		Selected:     plain,
		Border:       plain,
		PageButton:   plain,
		CurrentPage:  plain,
		Disabled:     plain,
		Info:         plain,
		Empty:        plain,
		Help:         plain,
		BorderShape:  lipgloss.NormalBorder(),
		HeaderBorder: true,
	}
}
