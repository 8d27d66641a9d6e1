// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍", "🚀").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "folio settings set <key> <value>").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptyAuthor returns an empty state for when no author settings exist.
func EmptyAuthor() EmptyState {
	return EmptyState{
		Icon:     "👤",
		Title:    "No author configured",
		Subtitle: "The site falls back to placeholder values.",
		Suggestions: []Suggestion{
			{Command: "folio settings set author.name <name>", Description: "set the display name"},
			{Command: "folio settings set author.avatarUrl <url>", Description: "set the avatar image"},
		},
	}
}

// EmptySettings returns an empty state for when the settings store is empty.
func EmptySettings() EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    "No settings stored",
		Subtitle: "Values from folio.yaml and the environment still apply.",
		Suggestions: []Suggestion{
			{Command: "folio settings set <key> <value>", Description: "store a setting"},
		},
	}
}

// EmptyComponentsFiltered returns an empty state for when a filter matches
// no component overrides.
func EmptyComponentsFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No components match '%s'", filter),
		Subtitle: "Press / to edit or clear the filter.",
	}
}
