package motion

import "time"

// Value is a named numeric cell driven by animations. It is owned by one
// element and is not safe for concurrent use.
type Value struct {
	name     string
	value    float64
	velocity float64

	run  run
	kind Kind
	// anchored is false between installing an animation and the first
	// evaluation after it; that evaluation starts the animation's clock.
	anchored bool

	last      time.Time
	evaluated bool
}

// NewValue creates an idle value.
func NewValue(name string, initial float64) *Value {
	return &Value{name: name, value: initial}
}

// Name returns the value's name.
func (v *Value) Name() string { return v.name }

// Get returns the value as of the last evaluation or assignment.
func (v *Value) Get() float64 { return v.value }

// Velocity returns the value's velocity in units per second.
func (v *Value) Velocity() float64 { return v.velocity }

// Kind returns the kind of the in-flight animation, or KindNone.
func (v *Value) Kind() Kind { return v.kind }

// Animating reports whether an animation is in flight.
func (v *Value) Animating() bool { return v.run != nil }

// SetInstant sets the value immediately and cancels any animation.
func (v *Value) SetInstant(x float64) {
	v.value = x
	v.velocity = 0
	v.run = nil
	v.kind = KindNone
}

// Animate installs a, replacing any animation in flight. The new animation
// starts from the current value and velocity. A nil animation only cancels.
func (v *Value) Animate(a Animation) {
	if a == nil {
		v.run = nil
		v.kind = KindNone
		v.velocity = 0
		return
	}
	if a.Kind() == KindInstant {
		if t, ok := a.(targeted); ok {
			v.SetInstant(t.target())
			return
		}
	}
	v.run = a.start(v.value, v.velocity)
	v.kind = a.Kind()
	v.anchored = false
}

// SetSpring installs Spring(target, opts...).
func (v *Value) SetSpring(target float64, opts ...SpringOption) {
	v.Animate(Spring(target, opts...))
}

// SetTimed installs Timing(target, d, opts...).
func (v *Value) SetTimed(target float64, d time.Duration, opts ...TimingOption) {
	v.Animate(Timing(target, d, opts...))
}

// SetRepeating installs Repeat(inner, count, reverse).
func (v *Value) SetRepeating(inner Animation, count int, reverse bool) {
	v.Animate(Repeat(inner, count, reverse))
}

// SetSequence installs Sequence(anims...).
func (v *Value) SetSequence(anims ...Animation) {
	v.Animate(Sequence(anims...))
}

// Evaluate advances the animation to now and returns the value. Calling it
// again with the same now returns the same value without advancing; an
// earlier now is treated as no time passing.
func (v *Value) Evaluate(now time.Time) float64 {
	if v.evaluated && !now.After(v.last) {
		if v.run != nil && !v.anchored {
			v.anchored = true
		}
		return v.value
	}
	var dt time.Duration
	if v.evaluated {
		dt = now.Sub(v.last)
	}
	v.last = now
	v.evaluated = true

	if v.run == nil {
		return v.value
	}
	if !v.anchored {
		v.anchored = true
		return v.value
	}

	value, velocity, done, _ := v.run.step(dt)
	v.value, v.velocity = value, velocity
	if done {
		v.run = nil
		v.kind = KindNone
		v.velocity = 0
	}
	return v.value
}
