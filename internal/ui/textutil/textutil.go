// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateLeft keeps the end of s so it fits within maxWidth visual columns.
// If truncation is needed, the kept tail is prefixed with the ellipsis (…).
// Calculator displays want the most recent input visible.
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}

	runes := []rune(s)
	start := len(runes)
	width := 0
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if width+w > available {
			break
		}
		width += w
		start--
	}
	return TruncateEllipsis + string(runes[start:])
}
