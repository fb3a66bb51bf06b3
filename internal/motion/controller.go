package motion

import (
	"time"

	"github.com/rs/zerolog"
)

// Controller groups the values of one interactive element and evaluates
// them together once per frame.
type Controller struct {
	values  map[string]*Value
	order   []string
	log     zerolog.Logger
	observe func(value string, kind Kind, from float64)
}

// NewController creates an empty controller. Pass zerolog.Nop() to disable
// logging.
func NewController(log zerolog.Logger) *Controller {
	return &Controller{
		values: make(map[string]*Value),
		log:    log,
	}
}

// Observe registers fn to be called after every Animate. Only one observer
// is kept; nil removes it.
func (c *Controller) Observe(fn func(value string, kind Kind, from float64)) {
	c.observe = fn
}

// Value returns the value named name, creating it with initial if it does
// not exist yet.
func (c *Controller) Value(name string, initial float64) *Value {
	if v, ok := c.values[name]; ok {
		return v
	}
	v := NewValue(name, initial)
	c.values[name] = v
	c.order = append(c.order, name)
	return v
}

// Lookup returns the value named name, if any.
func (c *Controller) Lookup(name string) (*Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Remove releases the value named name.
func (c *Controller) Remove(name string) {
	if _, ok := c.values[name]; !ok {
		return
	}
	delete(c.values, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Animate installs a on the value named name and logs the installation.
// Unknown names are created with initial value 0.
func (c *Controller) Animate(name string, a Animation) {
	v := c.Value(name, 0)
	kind := KindNone
	if a != nil {
		kind = a.Kind()
	}
	c.log.Debug().
		Str("value", name).
		Str("kind", kind.String()).
		Bool("replaces", v.Animating()).
		Float64("from", v.Get()).
		Msg("animation installed")
	from := v.Get()
	v.Animate(a)
	if c.observe != nil {
		c.observe(name, kind, from)
	}
}

// Evaluate evaluates every value at now and reports whether any animation
// is still in flight.
func (c *Controller) Evaluate(now time.Time) bool {
	animating := false
	for _, name := range c.order {
		v := c.values[name]
		v.Evaluate(now)
		if v.Animating() {
			animating = true
		}
	}
	return animating
}

// Animating reports whether any value has an animation in flight.
func (c *Controller) Animating() bool {
	for _, v := range c.values {
		if v.Animating() {
			return true
		}
	}
	return false
}

// Snapshot returns the current value of every value by name.
func (c *Controller) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(c.values))
	for name, v := range c.values {
		out[name] = v.Get()
	}
	return out
}
