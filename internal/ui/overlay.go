package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a panel drawn over the current screen. It receives keys until
// one of its dismiss keys is pressed.
type Overlay struct {
	Name    string   // identifies the overlay for toggling
	View    View     // drawn in place of the active screen
	Dismiss []string // keys that dismiss (e.g. "esc")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, d := range o.Dismiss {
		if d == key {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Remove drops every overlay named name and reports whether any was found.
func (s *OverlayStack) Remove(name string) bool {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if o.Name != name {
			kept = append(kept, o)
		}
	}
	found := len(kept) != len(s.Stack)
	s.Stack = kept
	return found
}

// UpdateNamed passes msg to every overlay named name, wherever it sits in
// the stack. Commands are dropped; it is meant for refresh messages.
func (s *OverlayStack) UpdateNamed(name string, msg tea.Msg) {
	for i := range s.Stack {
		if s.Stack[i].Name == name {
			s.Stack[i].View, _ = s.Stack[i].View.Update(msg)
		}
	}
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
