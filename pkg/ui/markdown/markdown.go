// Package markdown renders model responses, which are usually markdown, for
// a terminal.
package markdown

import (
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	minWidth = 20
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the markdown styled for a terminal of the given width. The
// style follows the terminal background. A width of zero returns the text
// unchanged.
func Render(text string, width int) (string, error) {
	if width <= 0 {
		return text, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(stylePath()),
		glamour.WithWordWrap(max(width, minWidth)),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Wrap returns plain text word-wrapped at width, or unchanged when the width
// is zero
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, max(width, minWidth))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func stylePath() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
