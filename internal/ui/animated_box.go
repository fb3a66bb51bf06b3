package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"apptemplate/internal/motion"
	"apptemplate/internal/ui/textutil"
)

const (
	boxOffsetTarget   = 100.0
	boxRotationTarget = 360.0
	boxLoopPeriod     = time.Second
	// boxTravel is how many columns the box moves at offset 100.
	boxTravel = 24
)

// Values animated by AnimatedBox.
const (
	ValueOffset   = "offset"
	ValueRotation = "rotation"
)

var rotationGlyphs = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// AnimatedBox is the box demo on the home screen. It slides right by its
// offset and shows its rotation as an arrow.
type AnimatedBox struct {
	ctrl     *motion.Controller
	offset   *motion.Value
	rotation *motion.Value
	label    string
}

// NewAnimatedBox creates a box at rest at offset 0, rotation 0.
func NewAnimatedBox(label string, log zerolog.Logger) *AnimatedBox {
	ctrl := motion.NewController(log.With().Str("element", "box").Logger())
	return &AnimatedBox{
		ctrl:     ctrl,
		offset:   ctrl.Value(ValueOffset, 0),
		rotation: ctrl.Value(ValueRotation, 0),
		label:    label,
	}
}

// Controller exposes the box's values, for tracing and tests.
func (b *AnimatedBox) Controller() *motion.Controller {
	return b.ctrl
}

// AnimateOnce springs both values to the opposite end: out when at rest at
// zero, back to zero otherwise.
func (b *AnimatedBox) AnimateOnce() {
	b.ctrl.Animate(ValueOffset, motion.Spring(toggle(b.offset.Get(), boxOffsetTarget)))
	b.ctrl.Animate(ValueRotation, motion.Spring(toggle(b.rotation.Get(), boxRotationTarget)))
}

// Loop slides the box back and forth and spins it forever.
func (b *AnimatedBox) Loop() {
	b.ctrl.Animate(ValueOffset, motion.Repeat(
		motion.Timing(boxOffsetTarget, boxLoopPeriod), motion.Infinite, true))
	b.ctrl.Animate(ValueRotation, motion.Repeat(
		motion.Timing(boxRotationTarget, boxLoopPeriod), motion.Infinite, false))
}

// Reset springs both values back to zero, stopping a loop.
func (b *AnimatedBox) Reset() {
	b.ctrl.Animate(ValueOffset, motion.Spring(0))
	b.ctrl.Animate(ValueRotation, motion.Spring(0))
}

// Frame evaluates the box at now and reports whether it is still moving.
func (b *AnimatedBox) Frame(now time.Time) bool {
	return b.ctrl.Evaluate(now)
}

// Animating reports whether either value is in flight.
func (b *AnimatedBox) Animating() bool {
	return b.ctrl.Animating()
}

// Offset returns the current offset.
func (b *AnimatedBox) Offset() float64 { return b.offset.Get() }

// Rotation returns the current rotation in degrees.
func (b *AnimatedBox) Rotation() float64 { return b.rotation.Get() }

// View renders the box shifted by its offset.
func (b *AnimatedBox) View() string {
	content := b.label + "\n" + rotationGlyph(b.rotation.Get()) + " " +
		fmt.Sprintf("%.0f°", normalizeDegrees(b.rotation.Get()))
	box := Styles.Animated.Render(content)
	return lipgloss.NewStyle().MarginLeft(boxShift(b.offset.Get())).Render(box)
}

// boxShift converts an offset to columns. Springs overshoot, so the result
// is clamped to the track.
func boxShift(offset float64) int {
	cols := int(math.Round(offset / boxOffsetTarget * boxTravel))
	return max(0, min(cols, boxTravel+boxTravel/4))
}

func rotationGlyph(deg float64) string {
	step := 360.0 / float64(len(rotationGlyphs))
	idx := int(math.Round(normalizeDegrees(deg)/step)) % len(rotationGlyphs)
	return rotationGlyphs[idx]
}

func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func toggle(current, target float64) float64 {
	if current == 0 {
		return target
	}
	return 0
}

// boxTrack draws the rail under the box, for orientation.
func boxTrack() string {
	return Styles.Muted.Render(strings.Repeat("·", boxTravel+textutil.VisualWidthStyled(Styles.Animated.Render(""))))
}
