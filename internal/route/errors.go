package route

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by GoBack when only the initial entry is left.
	// Callers usually treat it as a no-op.
	ErrEmptyStack = errors.New("route: already at initial screen")

	// ErrDuplicateScreen is returned when a screen name is registered twice.
	ErrDuplicateScreen = errors.New("route: screen already registered")
)

// UnknownScreenError is returned when a navigation target is not in the table.
type UnknownScreenError struct {
	Name       Name
	Suggestion Name // closest registered name, empty if none is close
}

func (e *UnknownScreenError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("route: unknown screen %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("route: unknown screen %q", e.Name)
}

// ParamShapeError is returned when params do not satisfy a screen's schema.
type ParamShapeError struct {
	Screen Name
	Field  string
	Reason string // "missing", "unexpected", or "want int, got string" style
}

func (e *ParamShapeError) Error() string {
	return fmt.Sprintf("route: screen %q param %q: %s", e.Screen, e.Field, e.Reason)
}

// IsUnknownScreen reports whether err is an UnknownScreenError.
func IsUnknownScreen(err error) bool {
	var target *UnknownScreenError
	return errors.As(err, &target)
}

// IsParamShape reports whether err is a ParamShapeError.
func IsParamShape(err error) bool {
	var target *ParamShapeError
	return errors.As(err, &target)
}
