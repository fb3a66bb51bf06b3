package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"apptemplate/internal/route"
)

// Details screen controls, in focus order.
const (
	controlPress  = "press"
	controlGoBack = "back"
	controlGoHome = "home"
)

var detailsKeys = struct {
	Press key.Binding
	Back  key.Binding
	Home  key.Binding
}{
	Press: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "press")),
	Back:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	Home:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
}

// DetailsView shows one item selected on the home screen.
type DetailsView struct {
	env     Env
	nav     Handle
	params  DetailsParams
	button  *AnimatedButton
	focus   *FocusManager
	presses int // completed presses of the animated button
	width   int
}

// Ensure DetailsView implements View.
var _ View = (*DetailsView)(nil)

// DetailsScreen returns the Screen factory for ScreenDetails.
func DetailsScreen(env Env) Screen {
	return func(nav Handle, params route.Params) View {
		return NewDetailsView(env, nav, ParseDetailsParams(params))
	}
}

// NewDetailsView creates a details screen for params.
func NewDetailsView(env Env, nav Handle, params DetailsParams) *DetailsView {
	env = env.withDefaults()
	button := NewAnimatedButton(controlPress, env.Catalog.T("details_press_me"), env.Log)
	if env.Recorder != nil {
		env.Recorder.ObserveAnimations("button", button.Controller())
	}
	return &DetailsView{
		env:    env,
		nav:    nav,
		params: params,
		button: button,
		focus:  NewFocusManager(controlPress, controlGoBack, controlGoHome),
	}
}

// Params returns the params the screen was opened with.
func (d *DetailsView) Params() DetailsParams { return d.params }

// Button returns the animated button, for tests.
func (d *DetailsView) Button() *AnimatedButton { return d.button }

// Presses returns how many presses completed.
func (d *DetailsView) Presses() int { return d.presses }

// Focus returns the focus manager.
func (d *DetailsView) Focus() *FocusManager { return d.focus }

// Title implements Titled.
func (d *DetailsView) Title() string {
	return d.params.Title
}

// Animating implements Animator.
func (d *DetailsView) Animating() bool {
	return d.button.Animating()
}

// SetSize implements Sizer.
func (d *DetailsView) SetSize(width, _ int) {
	d.width = width
}

// ShortHelp lists the screen's keys for the footer.
func (d *DetailsView) ShortHelp() []key.Binding {
	return []key.Binding{focusKeys.Next, focusKeys.Activate, detailsKeys.Press, detailsKeys.Back, detailsKeys.Home}
}

// Init implements View.
func (d *DetailsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DetailsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		d.button.Frame(msg.Time)
		return d, nil
	case ButtonReleaseMsg:
		if d.button.Release(msg) {
			return d, d.pressed()
		}
		return d, nil
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, focusKeys.Next):
			d.focus.Next()
		case key.Matches(msg, focusKeys.Prev):
			d.focus.Prev()
		case key.Matches(msg, focusKeys.Activate):
			return d, d.activate(d.focus.Current)
		case key.Matches(msg, detailsKeys.Press):
			return d, d.activate(controlPress)
		case key.Matches(msg, detailsKeys.Back):
			return d, d.activate(controlGoBack)
		case key.Matches(msg, detailsKeys.Home):
			return d, d.activate(controlGoHome)
		}
	}
	return d, nil
}

func (d *DetailsView) activate(id string) tea.Cmd {
	d.focus.SetFocus(id)
	switch id {
	case controlPress:
		return d.button.PressIn()
	case controlGoBack:
		return d.nav.GoBack()
	case controlGoHome:
		return d.nav.PopTo(ScreenHome)
	}
	return nil
}

// pressed runs the animated button's action.
func (d *DetailsView) pressed() tea.Cmd {
	d.presses++
	d.env.Log.Info().
		Int("itemId", d.params.ItemID).
		Int("presses", d.presses).
		Msg("Button pressed!")
	return statusCmd(d.env.Catalog.T("details_button_pressed"), false)
}

// View implements View.
func (d *DetailsView) View() string {
	t := d.env.Catalog.T
	width := d.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(d.params.Title) + "\n")
	b.WriteString(Styles.Subtitle.Render(t("details_item_id", map[string]any{"ItemID": d.params.ItemID})) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(min(width-2, 72)).Render(Styles.Normal.Render(t("details_description"))) + "\n\n")

	b.WriteString(Styles.Section.Render(t("details_button_heading")+":") + "\n")
	b.WriteString(d.button.View(d.focus.Is(controlPress)) + "\n\n")

	b.WriteString(renderButton(t("details_go_back"), ColorBack, d.focus.Is(controlGoBack)) + "\n")
	b.WriteString(renderButton(t("details_go_home"), ColorAction, d.focus.Is(controlGoHome)))
	return b.String()
}
