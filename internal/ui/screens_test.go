package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"apptemplate/internal/config"
	"apptemplate/internal/route"
	"apptemplate/internal/trace"
)

// fakeHandle records navigation requests instead of running them.
type fakeHandle struct {
	calls []NavigateMsg
}

func (h *fakeHandle) record(msg NavigateMsg) func() {
	return func() { h.calls = append(h.calls, msg) }
}

func (h *fakeHandle) Navigate(name route.Name, params route.Params) tea.Cmd {
	return cmdFor(h.record(NavigateMsg{Op: route.OpNavigate, Screen: name, Params: params}))
}

func (h *fakeHandle) GoBack() tea.Cmd {
	return cmdFor(h.record(NavigateMsg{Op: route.OpBack}))
}

func (h *fakeHandle) ResetTo(name route.Name, params route.Params) tea.Cmd {
	return cmdFor(h.record(NavigateMsg{Op: route.OpReset, Screen: name, Params: params}))
}

func (h *fakeHandle) PopTo(name route.Name) tea.Cmd {
	return cmdFor(h.record(NavigateMsg{Op: route.OpPopTo, Screen: name}))
}

func (h *fakeHandle) CanGoBack() bool { return true }

func cmdFor(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func testEnv(debug string) Env {
	return Env{
		Config: config.Config{AppName: "Starter", EnableDebug: debug},
		Log:    zerolog.Nop(),
	}
}

// settle advances frames until frame reports the animation finished.
func settle(t *testing.T, frame func(time.Time) bool) {
	t.Helper()
	now := time.Now()
	for i := 0; i < 1000; i++ {
		now = now.Add(time.Second / FrameRate)
		if !frame(now) {
			return
		}
	}
	t.Fatal("animation did not settle")
}

func TestHomeView_ConfigRows(t *testing.T) {
	h := NewHomeView(Env{Log: zerolog.Nop()}, &fakeHandle{})
	out := h.View()
	if !strings.Contains(out, "(not set)") || !strings.Contains(out, "OFF") {
		t.Errorf("unset config should render placeholders:\n%s", out)
	}

	h = NewHomeView(testEnv("true"), &fakeHandle{})
	out = h.View()
	if !strings.Contains(out, "Starter") || !strings.Contains(out, "ON") {
		t.Errorf("config rows missing:\n%s", out)
	}
}

func TestHomeView_DebugSectionNeedsFlag(t *testing.T) {
	rec := trace.NewRecorder(10, nil)
	rec.Record(trace.NavigationEvent(route.Change{
		Op: route.OpNavigate, From: route.Entry{Screen: ScreenHome},
		To: route.Entry{Screen: ScreenDetails, Params: route.Params{"itemId": 1}}, Depth: 2,
	}, time.Now()))

	env := testEnv("false")
	env.Recorder = rec
	if out := NewHomeView(env, &fakeHandle{}).View(); strings.Contains(out, "Navigation Log") {
		t.Error("debug section shown with ENABLE_DEBUG=false")
	}

	env.Config.EnableDebug = "true"
	out := NewHomeView(env, &fakeHandle{}).View()
	if !strings.Contains(out, "Navigation Log") || !strings.Contains(out, "Home → Details #1") {
		t.Errorf("debug section missing:\n%s", out)
	}
}

func TestHomeView_FocusAndActivate(t *testing.T) {
	nav := &fakeHandle{}
	h := NewHomeView(testEnv(""), nav)

	if !h.Focus().Is(controlAnimateOnce) {
		t.Fatalf("initial focus = %q", h.Focus().Current)
	}
	h.Update(keyMsg("enter"))
	if !h.Box().Animating() {
		t.Error("enter on Animate Once should start the box")
	}

	for i := 0; i < 4; i++ {
		h.Update(keyMsg("tab"))
	}
	if !h.Focus().Is(controlItem2) {
		t.Fatalf("focus = %q, want %q", h.Focus().Current, controlItem2)
	}
	_, cmd := h.Update(keyMsg("enter"))
	runCmd(cmd)
	if len(nav.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(nav.calls))
	}
	got := nav.calls[0]
	if got.Op != route.OpNavigate || got.Screen != ScreenDetails {
		t.Errorf("call = %+v", got)
	}
	if p := ParseDetailsParams(got.Params); p.ItemID != 2 || p.Title != "Second Item" {
		t.Errorf("params = %+v", p)
	}
}

func TestHomeView_ShortcutsFocusControl(t *testing.T) {
	h := NewHomeView(testEnv(""), &fakeHandle{})
	h.Update(keyMsg("l"))
	if !h.Focus().Is(controlLoop) {
		t.Errorf("focus = %q, want loop", h.Focus().Current)
	}
	if !h.Animating() {
		t.Error("loop should animate")
	}
	h.Update(keyMsg("r"))
	settle(t, h.Box().Frame)
	if h.Box().Offset() != 0 || h.Box().Rotation() != 0 {
		t.Errorf("reset should return to rest, got offset %v rotation %v", h.Box().Offset(), h.Box().Rotation())
	}
}

func TestHomeView_ScrollsFocusIntoView(t *testing.T) {
	h := NewHomeView(testEnv(""), &fakeHandle{})
	h.SetSize(60, 6)
	if out := h.View(); !strings.Contains(out, "Welcome") {
		t.Errorf("short terminal should open at the top:\n%s", out)
	}
	if h.viewport.YOffset != 0 {
		t.Fatalf("initial offset = %d", h.viewport.YOffset)
	}

	h.focus.SetFocus(controlItem3)
	h.View()
	if h.viewport.YOffset == 0 {
		t.Error("focusing the last item should scroll down")
	}
	_, line := h.render()
	if line < h.viewport.YOffset || line >= h.viewport.YOffset+h.viewport.Height {
		t.Errorf("focused line %d outside [%d,%d)", line, h.viewport.YOffset, h.viewport.YOffset+h.viewport.Height)
	}
}

func TestDetailsView_Render(t *testing.T) {
	d := NewDetailsView(testEnv(""), &fakeHandle{}, DetailsParams{ItemID: 2, Title: "Second Item"})
	if d.Title() != "Second Item" {
		t.Errorf("title = %q", d.Title())
	}
	out := d.View()
	for _, want := range []string{"Second Item", "Item ID: 2", "Press Me!", "Go Back", "Go to Home"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDetailsView_PressAndRelease(t *testing.T) {
	d := NewDetailsView(testEnv(""), &fakeHandle{}, DetailsParams{ItemID: 1, Title: "First Item"})

	d.Update(keyMsg("p"))
	if !d.Button().Held() || !d.Animating() {
		t.Fatal("p should hold the button and animate it")
	}
	if d.Presses() != 0 {
		t.Fatal("press action should wait for the release")
	}

	// A release for another button or an older press is ignored
	d.Update(ButtonReleaseMsg{ID: "other", Press: 1})
	d.Update(ButtonReleaseMsg{ID: controlPress, Press: 0})
	if d.Presses() != 0 {
		t.Fatal("stale releases should be ignored")
	}

	_, cmd := d.Update(ButtonReleaseMsg{ID: controlPress, Press: 1})
	if d.Presses() != 1 || d.Button().Held() {
		t.Fatalf("presses = %d held = %v", d.Presses(), d.Button().Held())
	}
	status, ok := runCmd(cmd).(StatusMsg)
	if !ok || status.Text != "Button pressed!" || status.Error {
		t.Errorf("status = %#v", status)
	}

	// Duplicate release does not press twice
	d.Update(ButtonReleaseMsg{ID: controlPress, Press: 1})
	if d.Presses() != 1 {
		t.Errorf("presses = %d after duplicate release", d.Presses())
	}

	settle(t, d.Button().Frame)
	if d.Button().Scale() != buttonRestScale {
		t.Errorf("scale = %v, want rest", d.Button().Scale())
	}
}

func TestDetailsView_BackAndHome(t *testing.T) {
	nav := &fakeHandle{}
	d := NewDetailsView(testEnv(""), nav, DetailsParams{ItemID: 1, Title: "First Item"})

	_, cmd := d.Update(keyMsg("b"))
	runCmd(cmd)
	_, cmd = d.Update(keyMsg("h"))
	runCmd(cmd)

	if len(nav.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(nav.calls))
	}
	if nav.calls[0].Op != route.OpBack {
		t.Errorf("b: %+v, want back", nav.calls[0])
	}
	if nav.calls[1].Op != route.OpPopTo || nav.calls[1].Screen != ScreenHome {
		t.Errorf("h: %+v, want pop to Home", nav.calls[1])
	}
	if !d.Focus().Is(controlGoHome) {
		t.Errorf("focus = %q", d.Focus().Current)
	}
}

func TestDetailsView_RecordsButtonAnimations(t *testing.T) {
	rec := trace.NewRecorder(10, nil)
	env := testEnv("")
	env.Recorder = rec
	d := NewDetailsView(env, &fakeHandle{}, DetailsParams{ItemID: 1, Title: "First Item"})

	d.Update(keyMsg("p"))

	events := rec.Recent()
	if len(events) != 1 || events[0].Type != trace.EventAnimate || events[0].Name != "button.scale" {
		t.Fatalf("events = %+v", events)
	}
}
