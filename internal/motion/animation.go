package motion

import "time"

// Kind identifies the type of an animation.
type Kind int

const (
	KindNone Kind = iota
	KindInstant
	KindSpring
	KindTiming
	KindRepeat
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindSpring:
		return "spring"
	case KindTiming:
		return "timing"
	case KindRepeat:
		return "repeat"
	case KindSequence:
		return "sequence"
	default:
		return "none"
	}
}

// Animation describes a transition of a Value. Implementations are provided
// by this package.
type Animation interface {
	Kind() Kind
	start(from, velocity float64) run
}

// run is one in-flight execution of an Animation.
type run interface {
	// step advances by dt. When the run finishes inside dt, rest is the
	// unused remainder so that a follow-up run can consume it.
	step(dt time.Duration) (value, velocity float64, done bool, rest time.Duration)
}

// targeted is implemented by animations that move toward a fixed target and
// can be re-aimed; Repeat uses it to reverse direction.
type targeted interface {
	Animation
	target() float64
	withTarget(to float64) Animation
}

// Instant returns an animation that jumps to v and completes immediately.
// It is mostly useful as a step inside a Sequence.
func Instant(v float64) Animation {
	return instant{to: v}
}

type instant struct {
	to float64
}

func (a instant) Kind() Kind                       { return KindInstant }
func (a instant) target() float64                  { return a.to }
func (a instant) withTarget(to float64) Animation  { return instant{to: to} }
func (a instant) start(from, velocity float64) run { return &instantRun{to: a.to} }

type instantRun struct {
	to float64
}

func (r *instantRun) step(dt time.Duration) (float64, float64, bool, time.Duration) {
	return r.to, 0, true, dt
}
