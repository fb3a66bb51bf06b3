package motion

import "time"

// TimingOption configures a timing animation.
type TimingOption func(*timing)

// WithEasing sets the easing curve. Nil keeps the default EaseInOutQuad.
func WithEasing(e Easing) TimingOption {
	return func(t *timing) {
		if e != nil {
			t.easing = e
		}
	}
}

// Timing returns an animation that interpolates from the current value to to
// over d. At elapsed 0 it yields the start value; at elapsed >= d it yields
// exactly to. A non-positive d completes on the first step.
func Timing(to float64, d time.Duration, opts ...TimingOption) Animation {
	t := timing{
		to:       to,
		duration: d,
		easing:   EaseInOutQuad,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

type timing struct {
	to       float64
	duration time.Duration
	easing   Easing
}

func (t timing) Kind() Kind      { return KindTiming }
func (t timing) target() float64 { return t.to }

func (t timing) withTarget(to float64) Animation {
	t.to = to
	return t
}

func (t timing) start(from, velocity float64) run {
	return &timingRun{timing: t, from: from, value: from}
}

type timingRun struct {
	timing
	from    float64
	value   float64
	elapsed time.Duration
}

func (r *timingRun) step(dt time.Duration) (float64, float64, bool, time.Duration) {
	if dt < 0 {
		dt = 0
	}
	prev := r.value
	r.elapsed += dt
	if r.elapsed >= r.duration {
		rest := r.elapsed - r.duration
		r.elapsed = r.duration
		r.value = r.to
		return r.value, velocityOf(prev, r.value, dt-rest), true, rest
	}
	p := float64(r.elapsed) / float64(r.duration)
	r.value = r.from + (r.to-r.from)*r.easing(p)
	return r.value, velocityOf(prev, r.value, dt), false, 0
}

// velocityOf returns units per second moved over dt.
func velocityOf(prev, next float64, dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return (next - prev) / dt.Seconds()
}
