package route

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Name identifies a screen in the route table.
type Name string

// maxSuggestDistance bounds the edit distance for "did you mean" suggestions.
const maxSuggestDistance = 3

// Table is the static registry of screen names to parameter schemas.
// Register all screens before creating a Navigator; the table is read-only
// afterwards.
type Table struct {
	schemas map[Name]Schema
	order   []Name
	extra   ExtraFieldPolicy
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithExtraFields sets how undeclared params are handled. Default ExtraIgnore.
func WithExtraFields(policy ExtraFieldPolicy) TableOption {
	return func(t *Table) {
		t.extra = policy
	}
}

// NewTable creates an empty route table.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		schemas: make(map[Name]Schema),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register adds a screen with its parameter schema.
func (t *Table) Register(name Name, schema Schema) error {
	if name == "" {
		return fmt.Errorf("route: empty screen name")
	}
	if _, ok := t.schemas[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateScreen, name)
	}
	seen := make(map[string]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		if f.Name == "" {
			return fmt.Errorf("route: screen %q has a field with no name", name)
		}
		if seen[f.Name] {
			return fmt.Errorf("route: screen %q declares field %q twice", name, f.Name)
		}
		seen[f.Name] = true
	}
	t.schemas[name] = schema
	t.order = append(t.order, name)
	return nil
}

// MustRegister is Register that panics on error. Intended for static setup.
func (t *Table) MustRegister(name Name, schema Schema) *Table {
	if err := t.Register(name, schema); err != nil {
		panic(err)
	}
	return t
}

// Schema returns the schema for name.
func (t *Table) Schema(name Name) (Schema, bool) {
	s, ok := t.schemas[name]
	return s, ok
}

// Has reports whether name is registered.
func (t *Table) Has(name Name) bool {
	_, ok := t.schemas[name]
	return ok
}

// Names returns registered screen names in registration order.
func (t *Table) Names() []Name {
	out := make([]Name, len(t.order))
	copy(out, t.order)
	return out
}

// Resolve validates params for name and returns the copy that will be stored
// on the stack. Errors are *UnknownScreenError or *ParamShapeError.
func (t *Table) Resolve(name Name, params Params) (Params, error) {
	schema, ok := t.schemas[name]
	if !ok {
		return nil, &UnknownScreenError{Name: name, Suggestion: t.suggest(name)}
	}
	return schema.resolve(name, params, t.extra)
}

// suggest returns the registered name closest to name, if close enough.
func (t *Table) suggest(name Name) Name {
	best := Name("")
	bestDist := maxSuggestDistance + 1
	for _, candidate := range t.order {
		d := levenshtein.ComputeDistance(string(name), string(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
