// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string, ignoring
// ANSI escape codes. Multi-line strings report their widest line.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth visual columns, ending with an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
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
	return runewidth.Truncate(s, available, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth visual columns, truncating
// it when it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// Center pads s on both sides to width visual columns. Extra odd columns go
// to the right.
func Center(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return runewidth.FillRight(runewidth.FillLeft(s, w+left), width)
}
