package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// spaces covers the common widths without allocating.
var spaces = strings.Repeat(" ", 256)

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= len(spaces) {
		return spaces[:n]
	}
	return strings.Repeat(" ", n)
}

// PadRight pads s with spaces to the given display width. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	return s + Pad(width-lipgloss.Width(s))
}
