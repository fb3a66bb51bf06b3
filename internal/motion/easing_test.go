package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasing_Endpoints(t *testing.T) {
	easings := map[string]Easing{
		"linear":    Linear,
		"inQuad":    EaseInQuad,
		"outQuad":   EaseOutQuad,
		"inOutQuad": EaseInOutQuad,
		"inOutCub":  EaseInOutCubic,
		"bezier":    Bezier(0.25, 0.1, 0.25, 1),
	}
	for name, e := range easings {
		assert.InDelta(t, 0.0, e(0), 1e-6, name)
		assert.InDelta(t, 1.0, e(1), 1e-6, name)
	}
}

func TestEasing_Monotonic(t *testing.T) {
	for _, e := range []Easing{EaseInOutQuad, EaseInOutCubic, Bezier(0.42, 0, 0.58, 1)} {
		prev := e(0)
		for i := 1; i <= 100; i++ {
			cur := e(float64(i) / 100)
			assert.GreaterOrEqual(t, cur, prev-1e-9)
			prev = cur
		}
	}
}

func TestEasing_Shapes(t *testing.T) {
	assert.Equal(t, 0.5, EaseInOutQuad(0.5))
	assert.Equal(t, 0.5, EaseInOutCubic(0.5))
	assert.Less(t, EaseInQuad(0.5), 0.5)
	assert.Greater(t, EaseOutQuad(0.5), 0.5)

	// Symmetric ease-in-out bezier passes through the midpoint.
	assert.InDelta(t, 0.5, Bezier(0.42, 0, 0.58, 1)(0.5), 1e-6)
}

func TestBezier_LinearShortcut(t *testing.T) {
	e := Bezier(0.3, 0.3, 0.7, 0.7)
	for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
		assert.InDelta(t, x, e(x), 1e-12)
	}
}
