package ui

// FocusManager tracks and rotates focus across a screen's controls.
type FocusManager struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager focuses the first of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// Index returns the position of the focused control in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next advances focus to the next control, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move((f.Index() + 1) % len(f.Order))
}

// Prev moves focus to the previous control, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.Index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.move(idx)
}

// SetFocus sets focus to the given control ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for i, o := range f.Order {
		if o == id {
			f.move(i)
			return true
		}
	}
	return false
}

func (f *FocusManager) move(idx int) string {
	from := f.Current
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}
