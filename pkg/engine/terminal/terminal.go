package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Clear homes the cursor and erases the screen. It works in raw mode, where
// shelling out to clear(1) would not.
func Clear(w io.Writer) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
}

// HideCursor hides the cursor until ShowCursor.
func HideCursor(w io.Writer) { fmt.Fprint(w, "\x1b[?25l") }

// ShowCursor makes the cursor visible again.
func ShowCursor(w io.Writer) { fmt.Fprint(w, "\x1b[?25h") }

// Truncate shortens s to at most width cells, marking the cut with an
// ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Pad truncates s and fills it with spaces to exactly width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}
