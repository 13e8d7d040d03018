package postwizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/gosimple/slug"
	"github.com/mark3labs/postr/internal/logger"
	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/tui/theme"
	"github.com/mark3labs/postr/internal/tui/wizard"
)

// bodyRows is the number of visible lines of the body input.
const bodyRows = 10

// BodyStep is page 1: a multi-line body input with its validation message.
type BodyStep struct {
	textarea textarea.Model
	width    int
	height   int
	focused  bool
	tmpFile  string // Temp file handed to $EDITOR, removed when it returns
}

// NewBodyStep creates a new body input step.
func NewBodyStep() *BodyStep {
	ta := textarea.New()
	ta.Placeholder = "Blog post body"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0 // No limit
	ta.SetHeight(bodyRows)
	ta.SetWidth(58)
	ta.Blur()

	return &BodyStep{
		textarea: ta,
	}
}

// Init initializes the body step.
func (b *BodyStep) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the body step.
func (b *BodyStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+s", "ctrl+d":
			return func() tea.Msg {
				return SubmitRequestedMsg{}
			}
		case "tab":
			return func() tea.Msg {
				return wizard.TabExitForwardMsg{}
			}
		case "shift+tab":
			return func() tea.Msg {
				return wizard.TabExitBackwardMsg{}
			}
		}

	case BodyEditedMsg:
		b.textarea.SetValue(msg.Content)
		b.removeTmpFile()
		return nil
	}

	var cmd tea.Cmd
	b.textarea, cmd = b.textarea.Update(msg)
	return cmd
}

// View renders the body step content (returns string for embedding in wizard).
func (b *BodyStep) View() string {
	s := theme.Current().S()

	box := s.InputBox
	if b.focused {
		box = s.InputBoxFocused
	}
	textareaView := box.Width(60).Padding(0, 1).Render(b.textarea.View())

	parts := []string{textareaView}
	if msg := b.Error(); msg != "" {
		parts = append(parts, s.FieldError.Render("✗ "+msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Value returns the raw body.
func (b *BodyStep) Value() string {
	return b.textarea.Value()
}

// SetValue replaces the body.
func (b *BodyStep) SetValue(s string) {
	b.textarea.SetValue(s)
}

// Error returns the current validation message for the body, or "".
func (b *BodyStep) Error() string {
	return post.ValidateField(post.FieldBody, b.textarea.Value())
}

// SetSize updates the size of the body step.
func (b *BodyStep) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Focus focuses the body textarea.
func (b *BodyStep) Focus() {
	b.focused = true
	b.textarea.Focus()
}

// Blur blurs the body textarea.
func (b *BodyStep) Blur() {
	b.focused = false
	b.textarea.Blur()
}

// EditorAvailable reports whether $EDITOR is set.
func EditorAvailable() bool {
	return os.Getenv("EDITOR") != ""
}

// OpenEditor launches $EDITOR on a temp file holding the current body. The
// temp file name is derived from the post title.
func (b *BodyStep) OpenEditor(title string) tea.Cmd {
	name := slug.Make(title)
	if name == "" {
		name = "untitled"
	}

	tmpfile, err := os.CreateTemp("", "postr_"+name+"_*.md")
	if err != nil {
		logger.Warn("creating editor temp file: %v", err)
		return nil
	}

	if _, err := tmpfile.WriteString(b.textarea.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	b.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("postr", tmpfile.Name())
	if err != nil {
		logger.Warn("building editor command: %v", err)
		b.removeTmpFile()
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			logger.Warn("editor exited with error: %v", err)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		// Editors append a final newline the user did not type.
		return BodyEditedMsg{Content: strings.TrimRight(string(content), "\n")}
	})
}

func (b *BodyStep) removeTmpFile() {
	if b.tmpFile != "" {
		_ = os.Remove(b.tmpFile)
		b.tmpFile = ""
	}
}
