package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to pagination control actions. Row navigation inside a
// page uses the bubbles table bindings (up/down, pgup/pgdown, home/end).
type KeyMap struct {
	PrevPage     key.Binding
	NextPage     key.Binding
	PageButton   key.Binding
	GrowPageSize key.Binding
	ShrinkPage   key.Binding
}

// DefaultKeyMap returns the default pagination bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next page"),
		),
		PageButton: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to page button"),
		),
		GrowPageSize: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more per page"),
		),
		ShrinkPage: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer per page"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.PageButton, k.GrowPageSize, k.ShrinkPage}
}
