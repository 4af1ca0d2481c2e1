// Package display renders candidates and version listings as plain text
// rows for the CLI and the TUI viewport.
package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the display width of a string in terminal cells, with
// wide characters counting as 2.
func Width(val string) int {
	return runewidth.StringWidth(val)
}

// PadRight pads a string with trailing spaces to the target display
// width. Strings already at or beyond the width are returned unchanged.
func PadRight(val string, width int) string {
	current := Width(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// PadLeft pads a string with leading spaces to the target display width.
// Strings already at or beyond the width are returned unchanged.
func PadLeft(val string, width int) string {
	current := Width(val)
	if current >= width {
		return val
	}
	return strings.Repeat(" ", width-current) + val
}
