package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"apptemplate/internal/route"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or an overlay with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Screen builds the view for one navigation entry. params is a copy the
// screen may keep; nav is how the screen asks for transitions.
type Screen func(nav Handle, params route.Params) View

// Titled views provide the text shown in the header bar.
type Titled interface {
	Title() string
}

// Sizer views are told the space available below the header.
type Sizer interface {
	SetSize(width, height int)
}

// Animator views report whether they need frames.
type Animator interface {
	Animating() bool
}
