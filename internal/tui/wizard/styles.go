package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/postr/internal/tui/theme"
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("tab", "buttons", "esc", "back")
// Returns: "tab buttons • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	t := theme.Current()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgSubtle)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BorderDefault))

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + sepStyle.Render("•") + " ")
		}
		b.WriteString(keyStyle.Render(pairs[i]) + " " + descStyle.Render(pairs[i+1]))
	}

	return b.String()
}
