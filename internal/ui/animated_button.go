package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"apptemplate/internal/motion"
	"apptemplate/internal/ui/textutil"
)

const (
	buttonPressedScale   = 0.95
	buttonOvershootScale = 1.1
	buttonRestScale      = 1.0
	// buttonPressHold is how long a key press holds the button down.
	buttonPressHold = 120 * time.Millisecond
	// buttonWidth is the rendered width at scale 1.
	buttonWidth = 20
)

// ValueScale is the value animated by AnimatedButton.
const ValueScale = "scale"

// AnimatedButton is a button that shrinks while held and bounces back past
// its size on release. Terminals only report key presses, so a press holds
// the button for buttonPressHold before releasing it.
type AnimatedButton struct {
	ID    string
	Label string

	ctrl    *motion.Controller
	scale   *motion.Value
	presses int
	held    bool
}

// NewAnimatedButton creates a button at rest.
func NewAnimatedButton(id, label string, log zerolog.Logger) *AnimatedButton {
	ctrl := motion.NewController(log.With().Str("element", id).Logger())
	return &AnimatedButton{
		ID:    id,
		Label: label,
		ctrl:  ctrl,
		scale: ctrl.Value(ValueScale, buttonRestScale),
	}
}

// Controller exposes the button's values, for tracing and tests.
func (b *AnimatedButton) Controller() *motion.Controller {
	return b.ctrl
}

// PressIn starts a press. The returned command delivers the matching
// ButtonReleaseMsg.
func (b *AnimatedButton) PressIn() tea.Cmd {
	b.presses++
	b.held = true
	b.ctrl.Animate(ValueScale, motion.Spring(buttonPressedScale))
	msg := ButtonReleaseMsg{ID: b.ID, Press: b.presses}
	return tea.Tick(buttonPressHold, func(time.Time) tea.Msg { return msg })
}

// PressOut releases the button: overshoot, then settle at rest.
func (b *AnimatedButton) PressOut() {
	b.held = false
	b.ctrl.Animate(ValueScale, motion.Sequence(
		motion.Spring(buttonOvershootScale),
		motion.Spring(buttonRestScale),
	))
}

// Release handles msg. It reports true when msg completed the current
// press of this button, which is when the press action should run.
func (b *AnimatedButton) Release(msg ButtonReleaseMsg) bool {
	if msg.ID != b.ID || msg.Press != b.presses || !b.held {
		return false
	}
	b.PressOut()
	return true
}

// Held reports whether the button is pressed.
func (b *AnimatedButton) Held() bool { return b.held }

// Scale returns the current scale.
func (b *AnimatedButton) Scale() float64 { return b.scale.Get() }

// Frame evaluates the button at now and reports whether it is still moving.
func (b *AnimatedButton) Frame(now time.Time) bool {
	return b.ctrl.Evaluate(now)
}

// Animating reports whether the scale is in flight.
func (b *AnimatedButton) Animating() bool {
	return b.ctrl.Animating()
}

// View renders the button at its current scale.
func (b *AnimatedButton) View(focused bool) string {
	w := int(math.Round(buttonWidth * b.scale.Get()))
	pad := max(0, (buttonWidth*6/5-w)/2)
	style := ButtonStyle(ColorPress).Width(w).MarginLeft(pad)
	if focused {
		style = style.Underline(true)
	}
	// Center by hand so a shrunken button truncates its label instead of wrapping.
	label := textutil.Center(b.Label, max(0, w-style.GetHorizontalPadding()))
	return focusMarker(focused) + style.Render(label)
}
