package route

import (
	"fmt"
	"math"
	"sort"
)

// Params holds the parameters a screen was opened with.
// Keys are field names from the screen's Schema.
type Params map[string]any

// Clone returns a shallow copy. A nil Params clones to an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the string value for key, or "" if absent or not a string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the int value for key, or 0 if absent or not an integer.
func (p Params) Int(key string) int {
	n, ok := toInt(p[key])
	if !ok {
		return 0
	}
	return n
}

// Float returns the float value for key, or 0 if absent or not numeric.
func (p Params) Float(key string) float64 {
	f, _ := toFloat(p[key])
	return f
}

// Bool returns the bool value for key, or false if absent or not a bool.
func (p Params) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Kind is the type of a schema field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// normalize converts v to the canonical Go type for the kind:
// string, int, float64 or bool.
func (k Kind) normalize(v any) (any, bool) {
	switch k {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindInt:
		return toInt(v)
	case KindFloat:
		return toFloat(v)
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	}
	return nil, false
}

// Field describes one named parameter.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
}

// Schema is the parameter shape a screen requires. The zero Schema means
// "no parameters".
type Schema struct {
	Fields []Field
}

// Required returns the names of the non-optional fields.
func (s Schema) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if !f.Optional {
			out = append(out, f.Name)
		}
	}
	return out
}

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ExtraFieldPolicy decides what happens to params the schema does not declare.
type ExtraFieldPolicy int

const (
	// ExtraIgnore drops undeclared params from the resolved entry.
	ExtraIgnore ExtraFieldPolicy = iota
	// ExtraReject fails validation with a ParamShapeError.
	ExtraReject
)

// resolve validates params against the schema and returns the normalized copy
// that is stored on the stack.
func (s Schema) resolve(screen Name, params Params, policy ExtraFieldPolicy) (Params, error) {
	resolved := make(Params, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := params[f.Name]
		if !ok || v == nil {
			if f.Optional {
				continue
			}
			return nil, &ParamShapeError{Screen: screen, Field: f.Name, Reason: "missing"}
		}
		nv, ok := f.Kind.normalize(v)
		if !ok {
			return nil, &ParamShapeError{
				Screen: screen,
				Field:  f.Name,
				Reason: fmt.Sprintf("want %s, got %T", f.Kind, v),
			}
		}
		resolved[f.Name] = nv
	}
	if policy == ExtraReject {
		for _, k := range params.Keys() {
			if _, ok := s.field(k); !ok {
				return nil, &ParamShapeError{Screen: screen, Field: k, Reason: "unexpected"}
			}
		}
	}
	return resolved, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uintToInt(uint64(n))
	case uint64:
		return uintToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func uintToInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// floatToInt accepts integral floats that fit an int, which is what decoded
// JSON numbers are. MaxInt itself is not representable as a float64, so the
// upper bound is exclusive.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
