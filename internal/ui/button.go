package ui

import "github.com/charmbracelet/bubbles/key"

// focusMarker prefixes the focused control.
func focusMarker(focused bool) string {
	if focused {
		return Styles.Focused.Render("▸ ")
	}
	return "  "
}

// renderButton renders a static button with background bg.
func renderButton(label, bg string, focused bool) string {
	style := ButtonStyle(bg)
	if focused {
		style = style.Underline(true)
	}
	return focusMarker(focused) + style.Render(label)
}

// Keys shared by screens with focusable controls.
var focusKeys = struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/j", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("S-tab/k", "prev"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "press"),
	),
}
