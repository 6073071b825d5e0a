// Package terminal queries the controlling terminal so the text
// renderer can center its panes. Every lookup degrades to a sane
// default when stdout is not a TTY (tests, pipes).
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// LeftMargin returns the indent that centers content of the given
// width in the terminal. Content wider than the terminal gets no
// indent.
func LeftMargin(contentWidth int) string {
	pad := (GetWidth() - contentWidth) / 2
	if pad < 1 {
		return ""
	}
	return strings.Repeat(" ", pad)
}
