package motion

import "math"

// Easing maps linear progress in [0, 1] to eased progress. Easing(0) must be
// 0 and Easing(1) must be 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates until halfway, then decelerates. Default for Timing.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInOutCubic is a steeper version of EaseInOutQuad.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// Bezier returns a CSS-style cubic-bezier easing with control points
// (x1, y1) and (x2, y2). x1 and x2 are clamped to [0, 1].
func Bezier(x1, y1, x2, y2 float64) Easing {
	x1 = clamp01(x1)
	x2 = clamp01(x2)
	if x1 == y1 && x2 == y2 {
		return Linear
	}
	bx := func(s float64) float64 { return cubic(s, x1, x2) }
	by := func(s float64) float64 { return cubic(s, y1, y2) }
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return by(solveBezierX(bx, x1, x2, t))
	}
}

// cubic evaluates a one-dimensional bezier with endpoints 0 and 1.
func cubic(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func cubicSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveBezierX finds s with bx(s) == x: Newton first, bisection if the slope
// is too flat.
func solveBezierX(bx func(float64) float64, x1, x2, x float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		d := bx(s) - x
		if math.Abs(d) < 1e-7 {
			return s
		}
		slope := cubicSlope(s, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= d / slope
	}
	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 50; i++ {
		v := bx(s)
		if math.Abs(v-x) < 1e-7 {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
