package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/postr/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies what a button does when activated.
type ButtonID int

const (
	ButtonNone ButtonID = iota // No button focused
	ButtonPrevious
	ButtonNext
	ButtonSubmit
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard focus.
type ButtonBar struct {
	buttons []Button
	focused int // Index of the focused button, -1 when the bar is blurred
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetEnabled enables or disables the button with the given ID. A disabled
// button loses focus.
func (b *ButtonBar) SetEnabled(id ButtonID, enabled bool) {
	for i := range b.buttons {
		if b.buttons[i].ID != id {
			continue
		}
		if enabled {
			if b.buttons[i].State == ButtonDisabled {
				b.buttons[i].State = ButtonNormal
			}
			continue
		}
		b.buttons[i].State = ButtonDisabled
		if b.focused == i {
			b.focused = -1
		}
	}
}

// IsEnabled reports whether the button with the given ID exists and is enabled.
func (b *ButtonBar) IsEnabled(id ButtonID) bool {
	for _, btn := range b.buttons {
		if btn.ID == id {
			return btn.State != ButtonDisabled
		}
	}
	return false
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focused >= 0
}

// FocusedButton returns the ID of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonNone
	}
	return b.buttons[b.focused].ID
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.focused = b.nextEnabled(-1, 1)
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.focused = b.nextEnabled(len(b.buttons), -1)
}

// FocusNext moves focus to the next enabled button. Returns false (and
// blurs) when there is none, so the caller can hand focus back to content.
func (b *ButtonBar) FocusNext() bool {
	b.focused = b.nextEnabled(b.focused, 1)
	return b.focused >= 0
}

// FocusPrev moves focus to the previous enabled button. Returns false (and
// blurs) when there is none.
func (b *ButtonBar) FocusPrev() bool {
	start := b.focused
	if start < 0 {
		start = len(b.buttons)
	}
	b.focused = b.nextEnabled(start, -1)
	return b.focused >= 0
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

func (b *ButtonBar) nextEnabled(from, step int) int {
	for i := from + step; i >= 0 && i < len(b.buttons); i += step {
		if b.buttons[i].State != ButtonDisabled {
			return i
		}
	}
	return -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var renderedButtons []string
	for i, btn := range b.buttons {
		var rendered string
		switch {
		case btn.State == ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		case i == b.focused:
			rendered = focusedStyle.Render(btn.Label)
		default:
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreatePreviousSubmitButtons creates the Previous/Submit button set used on
// the last page. submitEnabled is false while the form is invalid.
func CreatePreviousSubmitButtons(submitEnabled bool) []Button {
	submitState := ButtonNormal
	if !submitEnabled {
		submitState = ButtonDisabled
	}
	return []Button{
		{ID: ButtonPrevious, Label: "← Previous", State: ButtonNormal},
		{ID: ButtonSubmit, Label: "Submit", State: submitState},
	}
}

// CreateNextButton creates the single Next button used on the first page.
func CreateNextButton() []Button {
	return []Button{
		{ID: ButtonNext, Label: "Next →", State: ButtonNormal},
	}
}
