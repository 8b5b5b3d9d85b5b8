/*
ui formats command line output for a terminal. Output which is not going to
a terminal is left unformatted.
*/
package ui

import (
	"os"

	// Packages
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Width returns the width of the terminal attached to stdout, or zero when
// stdout is not a terminal
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	if w, _, err := term.GetSize(fd); err == nil {
		return w
	}
	return 0
}
