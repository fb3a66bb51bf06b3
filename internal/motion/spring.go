package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults, matching the usual mobile animation library values.
const (
	DefaultStiffness        = 100.0
	DefaultDamping          = 10.0
	DefaultMass             = 1.0
	DefaultRestDisplacement = 0.01
	DefaultRestSpeed        = 2.0
)

// SpringOption configures a spring animation.
type SpringOption func(*spring)

// WithStiffness sets the spring constant k. Non-positive values are ignored.
func WithStiffness(k float64) SpringOption {
	return func(s *spring) {
		if k > 0 {
			s.stiffness = k
		}
	}
}

// WithDamping sets the damping coefficient c. Non-positive values are
// ignored; an undamped spring would never come to rest.
func WithDamping(c float64) SpringOption {
	return func(s *spring) {
		if c > 0 {
			s.damping = c
		}
	}
}

// WithMass sets the mass. Non-positive values are ignored.
func WithMass(m float64) SpringOption {
	return func(s *spring) {
		if m > 0 {
			s.mass = m
		}
	}
}

// WithRestThresholds sets when the spring is considered settled: distance
// to target below displacement and speed below speed.
func WithRestThresholds(displacement, speed float64) SpringOption {
	return func(s *spring) {
		if displacement > 0 {
			s.restDisplacement = displacement
		}
		if speed > 0 {
			s.restSpeed = speed
		}
	}
}

// Spring returns a damped-oscillator animation toward to. It completes when
// the value is within the rest displacement of to and slower than the rest
// speed; the value then snaps to to.
func Spring(to float64, opts ...SpringOption) Animation {
	s := spring{
		to:               to,
		stiffness:        DefaultStiffness,
		damping:          DefaultDamping,
		mass:             DefaultMass,
		restDisplacement: DefaultRestDisplacement,
		restSpeed:        DefaultRestSpeed,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type spring struct {
	to               float64
	stiffness        float64
	damping          float64
	mass             float64
	restDisplacement float64
	restSpeed        float64
}

func (s spring) Kind() Kind      { return KindSpring }
func (s spring) target() float64 { return s.to }

func (s spring) withTarget(to float64) Animation {
	s.to = to
	return s
}

// angularFrequency and dampingRatio convert k, c and m into the form the
// harmonica step function takes.
func (s spring) angularFrequency() float64 {
	return math.Sqrt(s.stiffness / s.mass)
}

func (s spring) dampingRatio() float64 {
	return s.damping / (2 * math.Sqrt(s.stiffness*s.mass))
}

func (s spring) start(from, velocity float64) run {
	return &springRun{
		spring: s,
		pos:    from,
		vel:    velocity,
		omega:  s.angularFrequency(),
		zeta:   s.dampingRatio(),
	}
}

type springRun struct {
	spring
	pos, vel    float64
	omega, zeta float64
}

func (r *springRun) step(dt time.Duration) (float64, float64, bool, time.Duration) {
	if r.settled() {
		r.pos, r.vel = r.to, 0
		return r.pos, r.vel, true, dt
	}
	if dt <= 0 {
		return r.pos, r.vel, false, 0
	}
	// The step is the closed-form solution over dt, so one long frame lands
	// where several short ones would.
	step := harmonica.NewSpring(dt.Seconds(), r.omega, r.zeta)
	r.pos, r.vel = step.Update(r.pos, r.vel, r.to)
	if r.settled() {
		r.pos, r.vel = r.to, 0
		return r.pos, r.vel, true, 0
	}
	return r.pos, r.vel, false, 0
}

func (r *springRun) settled() bool {
	return math.Abs(r.pos-r.to) < r.restDisplacement && math.Abs(r.vel) < r.restSpeed
}
