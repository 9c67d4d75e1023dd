package render

import (
	"os"

	"golang.org/x/term"
)

const DefaultWidth = 80

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width is the column count of the terminal behind f, DefaultWidth when f is
// not a terminal.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	columns, _, err := term.GetSize(int(f.Fd()))
	if nil != err || columns <= 0 {
		return DefaultWidth
	}
	return columns
}
