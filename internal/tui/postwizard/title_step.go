package postwizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/tui/theme"
	"github.com/mark3labs/postr/internal/tui/wizard"
)

// TitleStep is page 0: a single-line title input with its validation message.
type TitleStep struct {
	input   textinput.Model
	width   int
	height  int
	focused bool
}

// NewTitleStep creates a new title input step.
func NewTitleStep() *TitleStep {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Focus()

	return &TitleStep{
		input:   ti,
		focused: true,
	}
}

// Init initializes the title step.
func (t *TitleStep) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the title step.
func (t *TitleStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return t.Submit()
		case "tab":
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

// View renders the title step content (returns string for embedding in wizard).
func (t *TitleStep) View() string {
	s := theme.Current().S()

	box := s.InputBox
	if t.focused {
		box = s.InputBoxFocused
	}
	input := box.Width(60).Padding(0, 1).Render(t.input.View())

	parts := []string{input}
	if msg := t.Error(); msg != "" {
		parts = append(parts, s.FieldError.Render("✗ "+msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Value returns the raw title, untrimmed.
func (t *TitleStep) Value() string {
	return t.input.Value()
}

// SetValue replaces the title.
func (t *TitleStep) SetValue(s string) {
	t.input.SetValue(s)
}

// Error returns the current validation message for the title, or "".
func (t *TitleStep) Error() string {
	return post.ValidateField(post.FieldTitle, t.input.Value())
}

// SetSize updates the size of the title step.
func (t *TitleStep) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// Focus focuses the title input.
func (t *TitleStep) Focus() {
	t.focused = true
	t.input.Focus()
}

// Blur blurs the title input.
func (t *TitleStep) Blur() {
	t.focused = false
	t.input.Blur()
}

// Submit returns a command sending TitleSubmittedMsg when the title is valid.
// An invalid title yields nil; its message is already on screen.
func (t *TitleStep) Submit() tea.Cmd {
	if t.Error() != "" {
		return nil
	}
	value := t.input.Value()
	return func() tea.Msg {
		return TitleSubmittedMsg{Title: value}
	}
}
