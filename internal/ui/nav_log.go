package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"apptemplate/internal/trace"
)

// NavLogView lists recorded navigation and animation events, newest first
type NavLogView struct {
	recorder *trace.Recorder
	viewport viewport.Model
	width    int
	height   int
	now      func() time.Time
}

// Ensure NavLogView implements View
var _ View = (*NavLogView)(nil)

// NewNavLogView creates a log view over recorder
func NewNavLogView(recorder *trace.Recorder) *NavLogView {
	vp := viewport.New(60, 16)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	v := &NavLogView{
		recorder: recorder,
		viewport: vp,
		width:    60,
		height:   16,
		now:      time.Now,
	}
	v.refreshContent()
	return v
}

// Init implements View
func (v *NavLogView) Init() tea.Cmd {
	return v.viewport.Init()
}

// Update implements View
func (v *NavLogView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case NavLogUpdatedMsg:
		v.refreshContent()
		return v, nil
	case tea.KeyMsg:
		// Handle viewport scrolling keys
		switch msg.String() {
		case "j", "down":
			v.viewport.LineDown(1)
			return v, nil
		case "k", "up":
			v.viewport.LineUp(1)
			return v, nil
		case "g", "home":
			v.viewport.GotoTop()
			return v, nil
		case "G", "end":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View
func (v *NavLogView) View() string {
	return v.viewport.View()
}

// SetSize sets the size of the log view
func (v *NavLogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
	v.refreshContent()
}

// refreshContent rebuilds the viewport content from the recorder
func (v *NavLogView) refreshContent() {
	if v.recorder == nil {
		v.viewport.SetContent(Styles.Empty.Render("Recording disabled"))
		return
	}

	lines := []string{
		Styles.Title.Render("Session " + shortTraceID(v.recorder.TraceID())),
		"",
	}
	events := v.recorder.Recent()
	if len(events) == 0 {
		lines = append(lines, Styles.Empty.Render("  (no events yet)"))
	}
	now := v.now()
	for _, e := range events {
		line := fmt.Sprintf("%-8s %s", formatAge(now.Sub(e.Timestamp)), formatNavEvent(e))
		lines = append(lines, line)
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
}

// formatNavEvent renders one event on a single line.
func formatNavEvent(e trace.Event) string {
	switch e.Type {
	case trace.EventNavigate:
		s := e.Attr("op") + " → " + e.Name
		if from := e.Attr("from"); from != "" {
			s = e.Attr("op") + " " + from + " → " + e.Name
		}
		if id := e.Attr("param.itemId"); id != "" {
			s += " #" + id
		}
		return s + Styles.Muted.Render(" depth "+e.Attr("depth"))
	case trace.EventAnimate:
		return "animate " + e.Name + " " + Styles.Muted.Render(e.Attr("kind"))
	default:
		return string(e.Type) + " " + e.Name
	}
}

// formatAge formats how long ago an event happened.
func formatAge(d time.Duration) string {
	if d < time.Second {
		return "now"
	}
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d - m*time.Minute) / time.Second
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// shortTraceID returns a shortened version of the trace ID for display
func shortTraceID(id string) string {
	if len(id) > 16 {
		return id[:16]
	}
	return id
}
