package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

// runUntilIdle evaluates every frame until the value stops animating and
// returns the time of the last frame.
func runUntilIdle(t *testing.T, v *Value, from time.Time, frame time.Duration, limit time.Duration) time.Time {
	t.Helper()
	now := from
	for v.Animating() {
		now = now.Add(frame)
		v.Evaluate(now)
		require.True(t, now.Sub(from) <= limit, "value %q still animating after %s", v.Name(), limit)
	}
	return now
}

func TestValue_IdleHoldsInitial(t *testing.T) {
	v := NewValue("offset", 42)
	for ms := 0; ms <= 10000; ms += 1000 {
		assert.Equal(t, 42.0, v.Evaluate(at(ms)))
	}
	assert.False(t, v.Animating())
	assert.Equal(t, KindNone, v.Kind())
}

func TestValue_SetInstant(t *testing.T) {
	v := NewValue("offset", 0)
	v.Evaluate(at(0))
	v.SetTimed(100, time.Second)
	v.Evaluate(at(16))
	v.Evaluate(at(32))

	v.SetInstant(7)
	assert.False(t, v.Animating())
	assert.Equal(t, 7.0, v.Evaluate(at(48)))
	assert.Equal(t, 7.0, v.Evaluate(at(5000)))
}

func TestValue_AnimateInstant(t *testing.T) {
	v := NewValue("offset", 0)
	v.Animate(Instant(5))
	assert.Equal(t, 5.0, v.Get())
	assert.False(t, v.Animating())
}

func TestValue_TimedEndpoints(t *testing.T) {
	v := NewValue("offset", 10)
	v.SetTimed(110, 100*time.Millisecond, WithEasing(Linear))
	assert.Equal(t, KindTiming, v.Kind())

	assert.Equal(t, 10.0, v.Evaluate(at(0)), "elapsed 0 yields pre-transition value")
	assert.InDelta(t, 60.0, v.Evaluate(at(50)), 1e-9)
	assert.Equal(t, 110.0, v.Evaluate(at(100)), "elapsed d yields exactly target")
	assert.False(t, v.Animating())
	assert.Equal(t, 110.0, v.Evaluate(at(400)))
}

func TestValue_TimedOvershootFrame(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond)
	v.Evaluate(at(0))
	assert.Equal(t, 100.0, v.Evaluate(at(250)))
	assert.False(t, v.Animating())
}

func TestValue_TimedDefaultEasing(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond)
	v.Evaluate(at(0))
	assert.InDelta(t, 50.0, v.Evaluate(at(50)), 1e-9)
	assert.InDelta(t, 8.0, timedAt(t, EaseInOutQuad, 20), 1e-9)
}

// timedAt returns the value of a 0→100 timing over 100ms at ms.
func timedAt(t *testing.T, e Easing, ms int) float64 {
	t.Helper()
	v := NewValue("probe", 0)
	v.SetTimed(100, 100*time.Millisecond, WithEasing(e))
	v.Evaluate(at(0))
	return v.Evaluate(at(ms))
}

func TestValue_ZeroDurationTiming(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(5, 0)
	assert.Equal(t, 0.0, v.Evaluate(at(0)))
	assert.Equal(t, 5.0, v.Evaluate(at(16)))
	assert.False(t, v.Animating())
}

func TestValue_EvaluateIdempotentPerFrame(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond, WithEasing(Linear))

	v.Evaluate(at(0))
	v.Evaluate(at(0))
	first := v.Evaluate(at(50))
	second := v.Evaluate(at(50))
	assert.Equal(t, first, second)
	assert.InDelta(t, 50.0, second, 1e-9)

	// Time going backwards does not advance either.
	assert.Equal(t, second, v.Evaluate(at(40)))
	assert.InDelta(t, 60.0, v.Evaluate(at(60)), 1e-9)
}

func TestValue_JitterTolerantTiming(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond, WithEasing(Linear))
	v.Evaluate(at(0))

	for _, ms := range []int{3, 21, 22, 37, 61, 99} {
		assert.InDelta(t, float64(ms), v.Evaluate(at(ms)), 1e-9, "at %dms", ms)
	}
	assert.Equal(t, 100.0, v.Evaluate(at(133)))
}

func TestValue_SpringSettles(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetSpring(100)
	assert.Equal(t, KindSpring, v.Kind())
	v.Evaluate(at(0))

	overshot := false
	now := at(0)
	for v.Animating() {
		now = now.Add(16 * time.Millisecond)
		if v.Evaluate(now) > 100 {
			overshot = true
		}
		require.True(t, now.Sub(t0) < 10*time.Second, "spring did not settle")
	}
	assert.True(t, overshot, "default spring is underdamped")
	assert.Equal(t, 100.0, v.Get())
	assert.Equal(t, 0.0, v.Velocity())
}

func TestValue_SpringJitterMatchesSmallSteps(t *testing.T) {
	coarse := NewValue("coarse", 0)
	fine := NewValue("fine", 0)
	coarse.SetSpring(100)
	fine.SetSpring(100)
	coarse.Evaluate(at(0))
	fine.Evaluate(at(0))

	for ms := 10; ms <= 100; ms += 10 {
		fine.Evaluate(at(ms))
	}
	coarse.Evaluate(at(100))

	assert.InDelta(t, fine.Get(), coarse.Get(), 1e-6)
	assert.InDelta(t, fine.Velocity(), coarse.Velocity(), 1e-6)
}

func TestValue_SpringOptions(t *testing.T) {
	stiff := NewValue("stiff", 0)
	soft := NewValue("soft", 0)
	stiff.SetSpring(1, WithStiffness(400), WithDamping(40))
	soft.SetSpring(1, WithStiffness(50), WithDamping(14), WithMass(1))
	stiff.Evaluate(at(0))
	soft.Evaluate(at(0))

	stiffDone := runUntilIdle(t, stiff, at(0), 16*time.Millisecond, 10*time.Second)
	softDone := runUntilIdle(t, soft, at(0), 16*time.Millisecond, 10*time.Second)
	assert.True(t, stiffDone.Before(softDone), "stiffer spring settles first")
	assert.Equal(t, 1.0, stiff.Get())
	assert.Equal(t, 1.0, soft.Get())
}

func TestValue_SpringZeroDampingFallsBack(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetSpring(1, WithDamping(0))
	v.Evaluate(at(0))
	runUntilIdle(t, v, at(0), 16*time.Millisecond, 10*time.Second)
	assert.Equal(t, 1.0, v.Get())
}

func TestValue_SpringAtTargetCompletes(t *testing.T) {
	v := NewValue("offset", 3)
	v.SetSpring(3)
	v.Evaluate(at(0))
	assert.Equal(t, 3.0, v.Evaluate(at(16)))
	assert.False(t, v.Animating())
}

func TestValue_CancelAndReplace(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond, WithEasing(Linear))
	v.Evaluate(at(0))
	require.InDelta(t, 50.0, v.Evaluate(at(50)), 1e-9)

	v.SetTimed(0, 100*time.Millisecond, WithEasing(Linear))
	assert.InDelta(t, 50.0, v.Evaluate(at(50)), 1e-9, "replacement starts from the current value")
	assert.InDelta(t, 25.0, v.Evaluate(at(100)), 1e-9)
	assert.Equal(t, 0.0, v.Evaluate(at(150)))
}

func TestValue_CancelWithNil(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetTimed(100, 100*time.Millisecond, WithEasing(Linear))
	v.Evaluate(at(0))
	v.Evaluate(at(30))
	v.Animate(nil)
	assert.False(t, v.Animating())
	assert.InDelta(t, 30.0, v.Evaluate(at(90)), 1e-9)
}

func TestValue_RepeatThreeCycles(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetRepeating(Timing(100, 100*time.Millisecond, WithEasing(Linear)), 3, false)
	assert.Equal(t, KindRepeat, v.Kind())
	v.Evaluate(at(0))

	want := map[int]float64{50: 50, 100: 100, 150: 50, 200: 100, 250: 50, 300: 100}
	for ms := 50; ms <= 300; ms += 50 {
		assert.InDelta(t, want[ms], v.Evaluate(at(ms)), 1e-9, "at %dms", ms)
		if ms < 300 {
			assert.True(t, v.Animating(), "at %dms", ms)
		}
	}
	assert.False(t, v.Animating(), "completes after exactly 3 cycles")
	assert.Equal(t, 100.0, v.Evaluate(at(1000)), "holds the final value")
}

func TestValue_RepeatCarriesLeftover(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetRepeating(Timing(100, 100*time.Millisecond, WithEasing(Linear)), 3, false)
	v.Evaluate(at(0))
	assert.InDelta(t, 50.0, v.Evaluate(at(150)), 1e-9)
	assert.Equal(t, 100.0, v.Evaluate(at(300)))
	assert.False(t, v.Animating())
}

func TestValue_RepeatReverse(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetRepeating(Timing(100, 100*time.Millisecond, WithEasing(Linear)), 2, true)
	v.Evaluate(at(0))
	assert.InDelta(t, 100.0, v.Evaluate(at(100)), 1e-9)
	assert.InDelta(t, 50.0, v.Evaluate(at(150)), 1e-9)
	assert.Equal(t, 0.0, v.Evaluate(at(200)))
	assert.False(t, v.Animating(), "even count ends back at the start value")

	odd := NewValue("offset", 0)
	odd.SetRepeating(Timing(100, 100*time.Millisecond, WithEasing(Linear)), 3, true)
	odd.Evaluate(at(0))
	assert.Equal(t, 100.0, odd.Evaluate(at(300)))
	assert.False(t, odd.Animating())
}

func TestValue_RepeatInfinite(t *testing.T) {
	v := NewValue("rotation", 0)
	v.SetRepeating(Timing(360, time.Second, WithEasing(Linear)), Infinite, false)
	v.Evaluate(at(0))
	for ms := 16; ms < 60000; ms += 16 {
		v.Evaluate(at(ms))
	}
	assert.True(t, v.Animating())
	assert.GreaterOrEqual(t, v.Get(), 0.0)
	assert.LessOrEqual(t, v.Get(), 360.0)

	v.SetSpring(0)
	assert.Equal(t, KindSpring, v.Kind(), "installing a new animation cancels the loop")
}

func TestValue_RepeatNilInnerCompletes(t *testing.T) {
	v := NewValue("offset", 5)
	require.NotPanics(t, func() { v.SetRepeating(nil, 3, true) })
	v.Evaluate(at(0))
	assert.Equal(t, 5.0, v.Evaluate(at(16)))
	assert.False(t, v.Animating())
}

func TestValue_RepeatZeroLengthDoesNotSpin(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetRepeating(Timing(1, 0), Infinite, true)
	v.Evaluate(at(0))
	v.Evaluate(at(16))
	v.Evaluate(at(32))
	assert.True(t, v.Animating())
}

func TestValue_Sequence(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetSequence(
		Timing(10, 100*time.Millisecond, WithEasing(Linear)),
		Timing(0, 100*time.Millisecond, WithEasing(Linear)),
	)
	assert.Equal(t, KindSequence, v.Kind())
	v.Evaluate(at(0))
	assert.InDelta(t, 5.0, v.Evaluate(at(50)), 1e-9)
	assert.InDelta(t, 5.0, v.Evaluate(at(150)), 1e-9)
	assert.Equal(t, 0.0, v.Evaluate(at(200)))
	assert.False(t, v.Animating())
}

func TestValue_SequenceWithInstantStep(t *testing.T) {
	v := NewValue("offset", 0)
	v.SetSequence(Instant(50), Timing(100, 100*time.Millisecond, WithEasing(Linear)))
	v.Evaluate(at(0))
	assert.InDelta(t, 75.0, v.Evaluate(at(50)), 1e-9)
}

func TestValue_SequenceOfSprings(t *testing.T) {
	scale := NewValue("scale", 1)
	scale.SetSpring(0.95)
	scale.Evaluate(at(0))
	runUntilIdle(t, scale, at(0), 16*time.Millisecond, 10*time.Second)
	require.Equal(t, 0.95, scale.Get())

	start := at(20000)
	scale.SetSequence(Spring(1.1), Spring(1))
	scale.Evaluate(start)

	peak := 0.0
	now := start
	for scale.Animating() {
		now = now.Add(16 * time.Millisecond)
		if x := scale.Evaluate(now); x > peak {
			peak = x
		}
		require.True(t, now.Sub(start) < 20*time.Second)
	}
	assert.GreaterOrEqual(t, peak, 1.1)
	assert.Equal(t, 1.0, scale.Get())
}

func TestValue_EmptySequence(t *testing.T) {
	v := NewValue("offset", 4)
	v.SetSequence()
	v.Evaluate(at(0))
	assert.Equal(t, 4.0, v.Evaluate(at(16)))
	assert.False(t, v.Animating())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "spring", KindSpring.String())
	assert.Equal(t, "timing", KindTiming.String())
	assert.Equal(t, "repeat", KindRepeat.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "instant", KindInstant.String())
	assert.Equal(t, "none", KindNone.String())
}
