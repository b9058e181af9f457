package report

import (
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// TerminalWidth returns the stdout terminal width, or a fixed fallback
// when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
