package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"apptemplate/internal/route"
	"apptemplate/internal/trace"
	"apptemplate/internal/ui/textutil"
)

// Home screen controls, in focus order.
const (
	controlAnimateOnce = "box_once"
	controlLoop        = "box_loop"
	controlReset       = "box_reset"
	controlItem1       = "item_1"
	controlItem2       = "item_2"
	controlItem3       = "item_3"
)

// homeDebugEvents is how many navigation events the debug section shows.
const homeDebugEvents = 3

var homeKeys = struct {
	Once  key.Binding
	Loop  key.Binding
	Reset key.Binding
	Item  key.Binding
}{
	Once:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animate")),
	Loop:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loop")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Item:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "open item")),
}

// HomeView is the initial screen: configuration, the box demo and links to
// the details screen. It scrolls when the terminal is short.
type HomeView struct {
	env        Env
	nav        Handle
	box        *AnimatedBox
	focus      *FocusManager
	items      []DetailsParams
	viewport   viewport.Model
	width      int
	height     int
	scrolledTo string // control last scrolled into view
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// HomeScreen returns the Screen factory for ScreenHome.
func HomeScreen(env Env) Screen {
	return func(nav Handle, _ route.Params) View {
		return NewHomeView(env, nav)
	}
}

// NewHomeView creates the home screen.
func NewHomeView(env Env, nav Handle) *HomeView {
	env = env.withDefaults()
	box := NewAnimatedBox("Animated", env.Log)
	if env.Recorder != nil {
		env.Recorder.ObserveAnimations("box", box.Controller())
	}
	t := env.Catalog.T
	focus := NewFocusManager(
		controlAnimateOnce, controlLoop, controlReset,
		controlItem1, controlItem2, controlItem3,
	)
	return &HomeView{
		env:   env,
		nav:   nav,
		box:   box,
		focus: focus,
		items: []DetailsParams{
			{ItemID: 1, Title: t("item_first")},
			{ItemID: 2, Title: t("item_second")},
			{ItemID: 3, Title: t("item_third")},
		},
		viewport:   viewport.New(0, 0),
		scrolledTo: focus.Current, // open at the top
	}
}

// Box returns the animated box, for tests.
func (h *HomeView) Box() *AnimatedBox { return h.box }

// Focus returns the focus manager.
func (h *HomeView) Focus() *FocusManager { return h.focus }

// Title implements Titled.
func (h *HomeView) Title() string {
	return h.env.Catalog.T("home_title")
}

// Animating implements Animator.
func (h *HomeView) Animating() bool {
	return h.box.Animating()
}

// SetSize implements Sizer.
func (h *HomeView) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.Width = width
	h.viewport.Height = height
}

// ShortHelp lists the screen's keys for the footer.
func (h *HomeView) ShortHelp() []key.Binding {
	return []key.Binding{focusKeys.Next, focusKeys.Activate, homeKeys.Once, homeKeys.Loop, homeKeys.Reset, homeKeys.Item}
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		h.box.Frame(msg.Time)
		return h, nil
	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, msg.Height)
		return h, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, focusKeys.Next):
			h.focus.Next()
			return h, nil
		case key.Matches(msg, focusKeys.Prev):
			h.focus.Prev()
			return h, nil
		case key.Matches(msg, focusKeys.Activate):
			return h, h.activate(h.focus.Current)
		case key.Matches(msg, homeKeys.Once):
			return h, h.activate(controlAnimateOnce)
		case key.Matches(msg, homeKeys.Loop):
			return h, h.activate(controlLoop)
		case key.Matches(msg, homeKeys.Reset):
			return h, h.activate(controlReset)
		case key.Matches(msg, homeKeys.Item):
			return h, h.activate("item_" + msg.String())
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// activate runs the action of the control with id and focuses it.
func (h *HomeView) activate(id string) tea.Cmd {
	h.focus.SetFocus(id)
	switch id {
	case controlAnimateOnce:
		h.box.AnimateOnce()
	case controlLoop:
		h.box.Loop()
	case controlReset:
		h.box.Reset()
	case controlItem1, controlItem2, controlItem3:
		p := h.items[int(id[len(id)-1]-'1')]
		return h.nav.Navigate(ScreenDetails, p.Params())
	}
	return nil
}

// View implements View.
func (h *HomeView) View() string {
	content, focusLine := h.render()
	if h.height <= 0 {
		return content
	}
	h.viewport.SetContent(content)
	if h.scrolledTo != h.focus.Current {
		h.scrolledTo = h.focus.Current
		if focusLine < h.viewport.YOffset {
			h.viewport.SetYOffset(focusLine)
		} else if focusLine >= h.viewport.YOffset+h.viewport.Height {
			h.viewport.SetYOffset(focusLine - h.viewport.Height + 1)
		}
	}
	return h.viewport.View()
}

// render builds the full content and returns the line of the focused control.
func (h *HomeView) render() (string, int) {
	t := h.env.Catalog.T
	var b strings.Builder
	lines := 0
	focusLine := 0
	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		lines += strings.Count(s, "\n") + 1
	}
	control := func(id, s string) {
		if h.focus.Is(id) {
			focusLine = lines
		}
		write(s)
	}

	write(Styles.Title.Render(t("home_heading")))
	write(Styles.Subtitle.Render(t("home_subtitle")))
	write("")

	write(Styles.Section.Render(t("config_heading") + ":"))
	cfg := h.env.Config
	debug := t("off")
	if cfg.DebugEnabled() {
		debug = t("on")
	}
	for _, row := range [][2]string{
		{t("config_app_name"), orUnset(cfg.AppName, t("config_unset"))},
		{t("config_api_url"), orUnset(cfg.APIURL, t("config_unset"))},
		{t("config_debug"), debug},
	} {
		write("  " + Styles.Key.Render(textutil.PadRightVisual(row[0]+":", 18)) + Styles.Normal.Render(row[1]))
	}
	write("")

	write(Styles.Section.Render(t("box_heading") + ":"))
	write(h.box.View())
	write(boxTrack())
	control(controlAnimateOnce, renderButton(t("box_animate_once"), ColorAction, h.focus.Is(controlAnimateOnce)))
	control(controlLoop, renderButton(t("box_loop"), ColorAction, h.focus.Is(controlLoop)))
	control(controlReset, renderButton(t("box_reset"), ColorReset, h.focus.Is(controlReset)))
	write("")

	write(Styles.Section.Render(t("nav_heading") + ":"))
	for i, item := range h.items {
		id := []string{controlItem1, controlItem2, controlItem3}[i]
		label := t("nav_go_to_item", map[string]any{"Title": item.Title})
		control(id, renderButton(label, ColorPrimary, h.focus.Is(id)))
	}

	if cfg.DebugEnabled() && h.env.Recorder != nil {
		write("")
		write(Styles.Section.Render(t("debug_heading") + ":"))
		shown := 0
		for _, e := range h.env.Recorder.Recent() {
			if e.Type != trace.EventNavigate {
				continue
			}
			write("  " + Styles.Muted.Render(formatNavEvent(e)))
			shown++
			if shown == homeDebugEvents {
				break
			}
		}
		if shown == 0 {
			write("  " + Styles.Empty.Render(t("debug_empty")))
		}
	}

	return strings.TrimSuffix(b.String(), "\n"), focusLine
}

func orUnset(v, unset string) string {
	if v == "" {
		return unset
	}
	return v
}
