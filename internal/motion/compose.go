package motion

import "time"

// Infinite makes Repeat run until another animation replaces it.
const Infinite = -1

// maxRunsPerStep bounds how many inner runs one step may complete, so a
// near-zero-length inner animation cannot stall a frame.
const maxRunsPerStep = 64

// Repeat runs inner count times. Non-positive counts repeat forever.
//
// Without reverse every run starts again from the value the repeat started
// at. With reverse, runs alternate direction: odd runs head back to the start
// value. Reversing needs an inner animation with a target (Spring, Timing,
// Instant); other inner animations simply restart.
//
// A finite repeat always stops at the end of a complete run and holds the
// value that run ended on. A nil inner animation completes at once, like an
// empty Sequence.
func Repeat(inner Animation, count int, reverse bool) Animation {
	if inner == nil {
		return Sequence()
	}
	if count <= 0 {
		count = Infinite
	}
	return repeat{inner: inner, count: count, reverse: reverse}
}

type repeat struct {
	inner   Animation
	count   int
	reverse bool
}

func (a repeat) Kind() Kind { return KindRepeat }

func (a repeat) start(from, velocity float64) run {
	r := &repeatRun{repeat: a, origin: from}
	r.cur = a.inner.start(from, velocity)
	return r
}

type repeatRun struct {
	repeat
	origin    float64
	cur       run
	completed int
}

func (r *repeatRun) step(dt time.Duration) (float64, float64, bool, time.Duration) {
	remaining := dt
	for i := 0; ; i++ {
		v, vel, done, rest := r.cur.step(remaining)
		if !done {
			return v, vel, false, 0
		}
		r.completed++
		if r.count != Infinite && r.completed >= r.count {
			return v, vel, true, rest
		}
		r.cur = r.next(v)
		// Carry leftover time into the next run only when this run used
		// some of it; otherwise wait for the next frame.
		if rest <= 0 || rest >= remaining || i >= maxRunsPerStep {
			return v, vel, false, 0
		}
		remaining = rest
	}
}

// next starts run number r.completed (0-based).
func (r *repeatRun) next(current float64) run {
	if !r.reverse {
		return r.inner.start(r.origin, 0)
	}
	t, ok := r.inner.(targeted)
	if !ok {
		return r.inner.start(r.origin, 0)
	}
	if r.completed%2 == 1 {
		return t.withTarget(r.origin).start(current, 0)
	}
	return t.start(current, 0)
}

// Sequence plays animations one after another. Each starts from the value
// and velocity the previous one ended with. An empty sequence completes
// immediately.
func Sequence(anims ...Animation) Animation {
	list := make([]Animation, 0, len(anims))
	for _, a := range anims {
		if a != nil {
			list = append(list, a)
		}
	}
	return sequence{anims: list}
}

type sequence struct {
	anims []Animation
}

func (a sequence) Kind() Kind { return KindSequence }

func (a sequence) start(from, velocity float64) run {
	r := &sequenceRun{sequence: a, value: from, vel: velocity}
	if len(a.anims) > 0 {
		r.cur = a.anims[0].start(from, velocity)
	}
	return r
}

type sequenceRun struct {
	sequence
	idx   int
	cur   run
	value float64
	vel   float64
}

func (r *sequenceRun) step(dt time.Duration) (float64, float64, bool, time.Duration) {
	remaining := dt
	for r.cur != nil {
		v, vel, done, rest := r.cur.step(remaining)
		r.value, r.vel = v, vel
		if !done {
			return v, vel, false, 0
		}
		r.idx++
		if r.idx >= len(r.anims) {
			r.cur = nil
			return v, vel, true, rest
		}
		r.cur = r.anims[r.idx].start(v, vel)
		remaining = rest
	}
	return r.value, r.vel, true, dt
}
