package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"apptemplate/internal/config"
	"apptemplate/internal/i18n"
	"apptemplate/internal/route"
	"apptemplate/internal/trace"
	"apptemplate/internal/ui/textutil"
)

// Overlay names.
const (
	overlayNavLog  = "navlog"
	overlayConfirm = "confirm"
)

// Env carries what screens need besides navigation.
type Env struct {
	Config   config.Config
	Catalog  *i18n.Catalog
	Log      zerolog.Logger
	Recorder *trace.Recorder // nil disables recording
}

func (e Env) withDefaults() Env {
	if e.Catalog == nil {
		// Embedded files always load; a nil catalog renders message IDs.
		e.Catalog, _ = i18n.New()
	}
	return e
}

// AppModel is the root model. It owns the navigator and keeps one view per
// navigation entry; only the top view receives input and frames.
type AppModel struct {
	Nav        *route.Navigator
	Views      ViewStack
	Screens    map[route.Name]Screen
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Env        Env
	Status     StatusMsg

	width    int
	height   int
	ticking  bool // a FrameMsg is scheduled
	logDirty bool // recorder has events the log overlay has not shown
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model showing the home screen.
func NewAppModel(env Env) (*AppModel, error) {
	env = env.withDefaults()
	table := NewRouteTable()

	a := &AppModel{
		Env: env,
		Screens: map[route.Name]Screen{
			ScreenHome:    HomeScreen(env),
			ScreenDetails: DetailsScreen(env),
		},
	}
	for _, name := range table.Names() {
		if _, ok := a.Screens[name]; !ok {
			return nil, fmt.Errorf("no view for screen %q", name)
		}
	}

	opts := []route.NavigatorOption{route.WithLogger(env.Log)}
	if env.Recorder != nil {
		opts = append(opts, route.WithListener(env.Recorder.NavigationListener()))
		env.Recorder.SetOnChange(func() { a.logDirty = true })
	}
	nav, err := route.NewNavigator(table, ScreenHome, nil, opts...)
	if err != nil {
		return nil, err
	}
	a.Nav = nav
	a.Views.Sync(nav.History(), a.build)
	a.KeyHandler = NewKeyHandler(a.newKeybindRegistry())
	return a, nil
}

// newKeybindRegistry binds the app-wide keys.
func (a *AppModel) newKeybindRegistry() *KeybindRegistry {
	h := a.handle()
	reg := NewKeybindRegistry()
	reg.Bind("q", "Quit", func() tea.Msg { return ConfirmQuitMsg{} })
	reg.Bind("SPC q", "Quit", tea.Quit)
	reg.Bind("SPC h", "Home", h.ResetTo(ScreenHome, nil))
	reg.Bind("SPC l", "Navigation log", func() tea.Msg { return ToggleNavLogMsg{} })
	reg.Bind("SPC b", "Back", h.GoBack(), ScreenDetails)
	items := []string{"item_first", "item_second", "item_third"}
	for i, id := range items {
		p := DetailsParams{ItemID: i + 1, Title: a.Env.Catalog.T(id)}
		reg.Bind(fmt.Sprintf("SPC g %d", i+1), p.Title, h.Navigate(ScreenDetails, p.Params()))
	}
	return reg
}

func (a *AppModel) handle() Handle {
	return navHandle{nav: a.Nav}
}

// build creates the view for e. Every registered screen has a factory.
func (a *AppModel) build(e route.Entry) View {
	v := a.Screens[e.Screen](a.handle(), e.Params.Clone())
	if s, ok := v.(Sizer); ok && a.width > 0 {
		s.SetSize(a.width, a.contentHeight())
	}
	return v
}

// CurrentView returns the view of the visible screen.
func (a *AppModel) CurrentView() View {
	return a.Views.Peek()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.CurrentView().Init(), a.scheduleFrame())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.logDirty {
		a.logDirty = false
		a.Overlays.UpdateNamed(overlayNavLog, NavLogUpdatedMsg{})
	}
	return a, tea.Batch(cmd, a.scheduleFrame())
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, v := range a.Views.Stack {
			if s, ok := v.(Sizer); ok {
				s.SetSize(a.width, a.contentHeight())
			}
		}
		for _, o := range a.Overlays.Stack {
			if s, ok := o.View.(Sizer); ok {
				s.SetSize(min(a.width-4, 80), a.contentHeight()-2)
			}
		}
		return nil
	case NavigateMsg:
		return a.navigate(msg)
	case StatusMsg:
		a.Status = msg
		return nil
	case ToggleNavLogMsg:
		a.toggleNavLog()
		return nil
	case ConfirmQuitMsg:
		a.confirmQuit()
		return nil
	case FrameMsg:
		a.ticking = false
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		// Overlays take input first, except the leader key
		top, ok := a.Overlays.Peek()
		if ok && !a.KeyHandler.LeaderWaiting && msg.String() != a.KeyHandler.LeaderKey {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		a.KeyHandler.Screen = a.Nav.Current().Screen
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return keyCmd
		}
		// App-level navigation
		if msg.String() == "esc" && a.Nav.CanGoBack() {
			return a.handle().GoBack()
		}
	}

	v, cmd := a.CurrentView().Update(msg)
	a.Views.ReplaceTop(v)
	return cmd
}

// navigate applies msg to the navigator and rebuilds views above the
// deepest surviving entry. Rejected navigation is logged by the navigator
// and reported in the status line; going back at the root is ignored.
func (a *AppModel) navigate(msg NavigateMsg) tea.Cmd {
	if err := applyNavigation(a.Nav, msg); err != nil {
		if errors.Is(err, route.ErrEmptyStack) {
			return nil
		}
		a.Status = StatusMsg{Text: err.Error(), Error: true}
		return nil
	}
	a.Status = StatusMsg{}
	created := a.Views.Sync(a.Nav.History(), a.build)
	cmds := make([]tea.Cmd, 0, len(created))
	for _, v := range created {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// scheduleFrame requests a frame when the visible screen animates and no
// frame is pending.
func (a *AppModel) scheduleFrame() tea.Cmd {
	if a.ticking || !isAnimating(a.CurrentView()) {
		return nil
	}
	a.ticking = true
	return frameTick()
}

func (a *AppModel) toggleNavLog() {
	if a.Overlays.Remove(overlayNavLog) {
		return
	}
	v := NewNavLogView(a.Env.Recorder)
	if a.width > 0 {
		v.SetSize(min(a.width-4, 80), a.contentHeight()-2)
	}
	a.Overlays.Push(Overlay{Name: overlayNavLog, View: v, Dismiss: []string{"esc", "q"}})
}

func (a *AppModel) confirmQuit() {
	a.Overlays.Remove(overlayConfirm)
	name := a.Env.Config.AppName
	if name == "" {
		name = "app"
	}
	v := NewConfirmView(
		a.Env.Catalog.T("quit_title"),
		a.Env.Catalog.T("quit_label", map[string]any{"AppName": name}),
		tea.Quit,
	)
	a.Overlays.Push(Overlay{Name: overlayConfirm, View: v, Dismiss: []string{"esc", "n"}})
}

// contentHeight is the height left for a screen below the header and above
// the footer.
func (a *AppModel) contentHeight() int {
	return max(1, a.height-3)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderHeader() + "\n")
	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else {
		b.WriteString(a.CurrentView().View())
	}
	b.WriteString("\n" + a.renderStatus())
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Nav.Current().Screen))
	} else {
		b.WriteString("\n" + RenderFooterHelp(a.footerBindings()))
	}
	return b.String()
}

// renderHeader renders the title bar of the visible screen.
func (a *AppModel) renderHeader() string {
	title := string(a.Nav.Current().Screen)
	if t, ok := a.CurrentView().(Titled); ok {
		title = t.Title()
	}
	if a.Nav.CanGoBack() {
		title = "← " + title
	}
	style := Styles.Header
	if a.width > 0 {
		title = textutil.Truncate(title, a.width-2)
		style = style.Width(a.width)
	}
	return style.Render(title)
}

func (a *AppModel) renderStatus() string {
	if a.Status.Text == "" {
		return ""
	}
	if a.Status.Error {
		return Styles.Error.Render(a.Status.Text)
	}
	return Styles.Status.Render(a.Status.Text)
}

func (a *AppModel) footerBindings() []key.Binding {
	var bindings []key.Binding
	if h, ok := a.CurrentView().(interface{ ShortHelp() []key.Binding }); ok {
		bindings = append(bindings, h.ShortHelp()...)
	}
	if a.Nav.CanGoBack() {
		bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")))
	}
	return append(bindings,
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
