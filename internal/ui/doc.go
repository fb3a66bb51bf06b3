// Package ui renders the app as a Bubble Tea program.
//
// Core abstractions:
//   - View: A screen or overlay with its own update and view (Elm-style)
//   - Screen: Builds the View for a route entry from its params
//   - Handle: What a screen may ask of the navigator, as tea.Cmds
//   - ViewStack: One View per navigator history entry, kept in sync by key
//   - FocusManager: Tracks and rotates focus across a screen's controls
//   - Overlay: Popup views with dismiss keys (navigation log, confirm)
//   - FrameMsg: Animation frames, scheduled only while a screen animates
package ui
