package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "m", "q")
	Label   string // Display label (e.g., "Mode", "Quit")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "m:Light mode  1-4:Views  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		labelStyle := styleSet.Muted
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// PreviewQuickActions returns the preview's key bindings. The mode toggle
// names the mode it switches to.
func PreviewQuickActions(current string, filtering bool) []QuickAction {
	next := "Light"
	if current == "light" {
		next = "Dark"
	}
	return []QuickAction{
		{Key: "m", Label: next + " mode", Enabled: !filtering},
		{Key: "1-4", Label: "Views", Enabled: !filtering},
		{Key: "/", Label: "Filter", Enabled: !filtering},
		{Key: "esc", Label: "Clear filter", Enabled: filtering},
		{Key: "q", Label: "Quit", Enabled: !filtering},
	}
}

// RenderFooter centers the action bar in width columns.
func RenderFooter(styleSet styles.Styles, actions []QuickAction, width int) string {
	bar := RenderQuickActionBar(styleSet, actions)
	if bar == "" || width <= 0 {
		return bar
	}

	containerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styleSet.Theme.Tokens.TextMuted)).
		Width(width).
		Align(lipgloss.Center)

	return containerStyle.Render(bar)
}
