package ui

import "apptemplate/internal/route"

// NavigateMsg asks the app to apply a navigation operation. Screens create
// it through their Handle; the app validates it against the route table.
type NavigateMsg struct {
	Op     route.Op // OpNavigate, OpBack, OpReset or OpPopTo
	Screen route.Name
	Params route.Params
}

// StatusMsg shows Text in the status line until the next status.
type StatusMsg struct {
	Text  string
	Error bool
}

// ToggleNavLogMsg shows or hides the navigation log overlay (SPC l).
type ToggleNavLogMsg struct{}

// ConfirmQuitMsg asks before quitting (q).
type ConfirmQuitMsg struct{}

// NavLogUpdatedMsg is sent after the recorder stores a new event.
type NavLogUpdatedMsg struct{}

// ButtonReleaseMsg ends press number Press of the button with ID. Releases
// of superseded presses are ignored.
type ButtonReleaseMsg struct {
	ID    string
	Press int
}
