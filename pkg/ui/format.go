package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes accepted by DetectProfile
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DetectProfile picks the color profile for output written to w.
// "never" and "always" win; in auto mode colors are dropped when NO_COLOR is
// set or w is not a terminal.
func DetectProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if profile := termenv.ColorProfile(); profile != termenv.Ascii {
			return profile
		}
		return termenv.ANSI256
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
