package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"apptemplate/internal/route"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by screen.
// When keyHandler is in leader mode with a buffer (e.g. "SPC g"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, screen route.Name) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, screen).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	currentSeq := strings.Join(keyHandler.Buffer, " ")

	// Create help model with custom styling
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	// Render help view
	helpContent := helpModel.ShortHelpView(bindings)

	// Wrap in box with prefix label
	boxStyle := Styles.BoxCompact.MarginTop(1)
	labelStyle := Styles.Muted

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := labelStyle.Render(prefix) + " " + helpContent
	return boxStyle.Render(content)
}

// RenderFooterHelp renders the always-visible one-line help for the
// screen's single-key bindings.
func RenderFooterHelp(bindings []key.Binding) string {
	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Key
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted
	return helpModel.ShortHelpView(bindings)
}
