package route

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Entry is one screen instance on the navigation stack.
type Entry struct {
	Key    string // unique per pushed instance
	Screen Name
	Params Params
}

func (e Entry) clone() Entry {
	e.Params = e.Params.Clone()
	return e
}

// Op names the stack mutation reported to listeners.
type Op string

const (
	OpInit     Op = "init"
	OpNavigate Op = "navigate"
	OpBack     Op = "back"
	OpReset    Op = "reset"
	OpPopTo    Op = "pop_to"
)

// Change describes a completed stack mutation.
type Change struct {
	Op    Op
	From  Entry // visible entry before the change (zero for OpInit)
	To    Entry // visible entry after the change
	Depth int   // stack depth after the change
}

// Listener is notified after each successful stack mutation.
type Listener func(Change)

// Navigator owns the navigation stack. It is not safe for concurrent use;
// it is driven from the UI's single update loop.
type Navigator struct {
	table     *Table
	entries   []Entry
	listeners []Listener
	log       zerolog.Logger
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithLogger sets the logger used for navigation debug output.
func WithLogger(l zerolog.Logger) NavigatorOption {
	return func(n *Navigator) {
		n.log = l
	}
}

// WithListener subscribes l before the initial entry is installed, so it
// also sees the OpInit change.
func WithListener(l Listener) NavigatorOption {
	return func(n *Navigator) {
		n.listeners = append(n.listeners, l)
	}
}

// NewNavigator creates a navigator whose stack holds the validated initial
// entry.
func NewNavigator(table *Table, initial Name, params Params, opts ...NavigatorOption) (*Navigator, error) {
	n := &Navigator{
		table: table,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	entry, err := n.entry(initial, params)
	if err != nil {
		return nil, err
	}
	n.entries = []Entry{entry}
	n.log.Debug().Str("screen", string(initial)).Msg("navigator initialized")
	n.notify(Change{Op: OpInit, To: entry.clone(), Depth: 1})
	return n, nil
}

// Table returns the route table the navigator validates against.
func (n *Navigator) Table() *Table {
	return n.table
}

// Subscribe registers a listener for stack changes.
func (n *Navigator) Subscribe(l Listener) {
	n.listeners = append(n.listeners, l)
}

// Navigate validates params and pushes a new entry for name.
func (n *Navigator) Navigate(name Name, params Params) error {
	entry, err := n.entry(name, params)
	if err != nil {
		n.log.Error().Err(err).Str("screen", string(name)).Msg("navigate rejected")
		return err
	}
	from := n.top()
	n.entries = append(n.entries, entry)
	n.changed(OpNavigate, from)
	return nil
}

// GoBack pops the visible entry. At the initial entry it returns
// ErrEmptyStack and leaves the stack unchanged.
func (n *Navigator) GoBack() error {
	if len(n.entries) <= 1 {
		return ErrEmptyStack
	}
	from := n.top()
	n.entries = n.entries[:len(n.entries)-1]
	n.changed(OpBack, from)
	return nil
}

// ResetTo validates params and replaces the whole stack with one entry.
func (n *Navigator) ResetTo(name Name, params Params) error {
	entry, err := n.entry(name, params)
	if err != nil {
		n.log.Error().Err(err).Str("screen", string(name)).Msg("reset rejected")
		return err
	}
	from := n.top()
	n.entries = []Entry{entry}
	n.changed(OpReset, from)
	return nil
}

// PopTo pops back to the nearest entry for name. If name is registered but
// not on the stack, a new entry with no params is pushed instead.
func (n *Navigator) PopTo(name Name) error {
	for i := len(n.entries) - 1; i >= 0; i-- {
		if n.entries[i].Screen != name {
			continue
		}
		if i == len(n.entries)-1 {
			return nil
		}
		from := n.top()
		n.entries = n.entries[:i+1]
		n.changed(OpPopTo, from)
		return nil
	}
	return n.Navigate(name, nil)
}

// Current returns a copy of the visible entry.
func (n *Navigator) Current() Entry {
	return n.top().clone()
}

// Depth returns the number of entries on the stack.
func (n *Navigator) Depth() int {
	return len(n.entries)
}

// CanGoBack reports whether GoBack would pop an entry.
func (n *Navigator) CanGoBack() bool {
	return len(n.entries) > 1
}

// History returns copies of all entries, bottom to top.
func (n *Navigator) History() []Entry {
	out := make([]Entry, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.clone()
	}
	return out
}

func (n *Navigator) entry(name Name, params Params) (Entry, error) {
	resolved, err := n.table.Resolve(name, params)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Key:    uuid.NewString(),
		Screen: name,
		Params: resolved,
	}, nil
}

func (n *Navigator) top() Entry {
	return n.entries[len(n.entries)-1]
}

func (n *Navigator) changed(op Op, from Entry) {
	to := n.top()
	n.log.Debug().
		Str("op", string(op)).
		Str("from", string(from.Screen)).
		Str("to", string(to.Screen)).
		Int("depth", len(n.entries)).
		Msg("navigation")
	n.notify(Change{Op: op, From: from.clone(), To: to.clone(), Depth: len(n.entries)})
}

func (n *Navigator) notify(c Change) {
	for _, l := range n.listeners {
		l(c)
	}
}
