package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"      // Cyan/green - for titles, highlights
	ColorHighlight = "205"     // Magenta - for focused controls
	ColorDanger    = "196"     // Red - for errors
	ColorMuted     = "241"     // Gray - for dimmed text, hints
	ColorText      = "252"     // Light gray - for normal text
	ColorOnBrand   = "#FFFFFF" // Text on colored backgrounds
	ColorPrimary   = "#2196F3" // Header bar and animated box
	ColorAction    = "#4CAF50" // Action buttons
	ColorReset     = "#FF9800" // Reset button
	ColorPress     = "#9C27B0" // Animated press button
	ColorBack      = "#757575" // Go Back button
)

// Styles contains shared style definitions used across views and overlays.
var Styles = struct {
	// Title styles
	Header       lipgloss.Style // Full-width bar with the screen title
	Title        lipgloss.Style // Bold accent color - for screen headings
	TitleWarning lipgloss.Style // Bold danger color - for confirmations
	Subtitle     lipgloss.Style // Muted text under a heading

	// Box styles
	Box        lipgloss.Style // Standard box with rounded border (accent border)
	BoxCompact lipgloss.Style // Compact box with less padding (for overlays)
	BoxWarning lipgloss.Style // Confirmation box (danger border)
	Animated   lipgloss.Style // The animated demo box

	// Buttons
	Button  lipgloss.Style // Base button; background set per button
	Focused lipgloss.Style // Marker next to the focused control

	// Text styles
	Muted   lipgloss.Style // Dimmed text (muted color)
	Normal  lipgloss.Style // Normal text (text color)
	Hint    lipgloss.Style // Help/hint text (muted color)
	Section lipgloss.Style // Section headers (highlight color)
	Key     lipgloss.Style // Config keys
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Error   lipgloss.Style // Status line errors
	Status  lipgloss.Style // Status line info
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorOnBrand)).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		MarginBottom(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Animated: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorOnBrand)).
		Background(lipgloss.Color(ColorPrimary)).
		Align(lipgloss.Center, lipgloss.Center).
		Width(14).
		Height(3),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorOnBrand)).
		Background(lipgloss.Color(ColorAction)).
		Padding(0, 2),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// ButtonStyle returns the base button style with the given background.
func ButtonStyle(bg string) lipgloss.Style {
	return Styles.Button.Background(lipgloss.Color(bg))
}
