package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameRate is the number of animation frames requested per second.
const FrameRate = 60

// FrameMsg is delivered once per animation frame. Time drives every
// animation evaluated during the frame.
type FrameMsg struct {
	Time time.Time
}

// frameTick schedules the next FrameMsg.
func frameTick() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// isAnimating reports whether v asks for frames.
func isAnimating(v View) bool {
	a, ok := v.(Animator)
	return ok && a.Animating()
}
