package ui

import tea "github.com/charmbracelet/bubbletea"

// ConfirmView asks a yes/no question. Enter or y runs OnConfirm; the
// overlay's dismiss keys cancel.
type ConfirmView struct {
	Title     string
	Label     string
	Hint      string
	OnConfirm tea.Cmd
}

// Ensure ConfirmView implements View.
var _ View = (*ConfirmView)(nil)

// NewConfirmView creates a confirmation view.
func NewConfirmView(title, label string, onConfirm tea.Cmd) *ConfirmView {
	return &ConfirmView{
		Title:     title,
		Label:     label,
		Hint:      "y/Enter: confirm  n/Esc: cancel",
		OnConfirm: onConfirm,
	}
}

// Init implements View.
func (m *ConfirmView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "y":
			return m, m.OnConfirm
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmView) View() string {
	content := Styles.TitleWarning.Render(m.Title)
	if m.Label != "" {
		content += "\n\n" + Styles.Normal.Render(m.Label)
	}
	content += "\n\n" + Styles.Hint.Render(m.Hint)
	return Styles.BoxWarning.Render(content)
}
