package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode is how results reach the user.
type OutputMode int

// Output modes.
const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a styled static table.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

const defaultWidth = 100

// String returns the mode name used in logs.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for out. Anything that is not a
// terminal gets plain output, as do NO_COLOR and TERM=dumb environments.
func DetectOutputMode(out io.Writer, plain, noInteractive bool) OutputMode {
	if plain || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !IsTerminal(out) {
		return OutputModePlain
	}
	if noInteractive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}

// TerminalWidth returns the width of w, or a default when unknown.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
