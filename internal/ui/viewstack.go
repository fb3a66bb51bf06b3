package ui

import "apptemplate/internal/route"

// ViewStack holds one view per navigation entry, bottom to top. Keys[i] is
// the route.Entry key the view at Stack[i] was built for.
type ViewStack struct {
	Stack []View
	Keys  []string
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(key string, v View) {
	s.Stack = append(s.Stack, v)
	s.Keys = append(s.Keys, key)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() View {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	s.Keys = s.Keys[:len(s.Keys)-1]
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// ReplaceTop swaps the top view, keeping its key. Views return themselves
// from Update in the common case, but may return a replacement.
func (s *ViewStack) ReplaceTop(v View) {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}

// Sync makes the stack mirror history. Views whose key still sits at the
// same depth are kept with their state; everything above the first
// mismatch is rebuilt with build. Returns the newly built views.
func (s *ViewStack) Sync(history []route.Entry, build func(route.Entry) View) []View {
	keep := 0
	for keep < len(history) && keep < len(s.Keys) && s.Keys[keep] == history[keep].Key {
		keep++
	}
	for s.Len() > keep {
		s.Pop()
	}

	var created []View
	for _, e := range history[keep:] {
		v := build(e)
		s.Push(e.Key, v)
		created = append(created, v)
	}
	return created
}
