package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"apptemplate/internal/route"
)

// Handle is what a screen gets to request transitions. Requests are
// returned as commands so they run through the app's update loop; the
// navigator validates them there.
type Handle interface {
	Navigate(name route.Name, params route.Params) tea.Cmd
	GoBack() tea.Cmd
	ResetTo(name route.Name, params route.Params) tea.Cmd
	PopTo(name route.Name) tea.Cmd
	CanGoBack() bool
}

// navHandle implements Handle on top of the app's navigator.
type navHandle struct {
	nav *route.Navigator
}

var _ Handle = navHandle{}

func (h navHandle) Navigate(name route.Name, params route.Params) tea.Cmd {
	return navCmd(NavigateMsg{Op: route.OpNavigate, Screen: name, Params: params.Clone()})
}

func (h navHandle) GoBack() tea.Cmd {
	return navCmd(NavigateMsg{Op: route.OpBack})
}

func (h navHandle) ResetTo(name route.Name, params route.Params) tea.Cmd {
	return navCmd(NavigateMsg{Op: route.OpReset, Screen: name, Params: params.Clone()})
}

func (h navHandle) PopTo(name route.Name) tea.Cmd {
	return navCmd(NavigateMsg{Op: route.OpPopTo, Screen: name})
}

func (h navHandle) CanGoBack() bool {
	return h.nav != nil && h.nav.CanGoBack()
}

func navCmd(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// statusCmd returns a command that shows text in the status line.
func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isErr} }
}

// applyNavigation runs msg against nav.
func applyNavigation(nav *route.Navigator, msg NavigateMsg) error {
	switch msg.Op {
	case route.OpNavigate:
		return nav.Navigate(msg.Screen, msg.Params)
	case route.OpBack:
		return nav.GoBack()
	case route.OpReset:
		return nav.ResetTo(msg.Screen, msg.Params)
	case route.OpPopTo:
		return nav.PopTo(msg.Screen)
	default:
		return nil
	}
}
