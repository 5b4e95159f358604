package render

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the stdout terminal width, or 80 when unknown
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// IsStdoutTTY reports whether stdout is a terminal
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY reports whether stderr is a terminal
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// ClearScreen returns the escape sequence that clears the terminal and homes the cursor
func ClearScreen() string {
	return "\033[2J\033[H"
}
