package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle     lipgloss.Style
	SuccessBanner   lipgloss.Style
	ErrorBanner     lipgloss.Style
	FieldError      lipgloss.Style
	Hint            lipgloss.Style
	Loading         lipgloss.Style
	InputBox        lipgloss.Style
	InputBoxFocused lipgloss.Style
	Modal           lipgloss.Style
}
