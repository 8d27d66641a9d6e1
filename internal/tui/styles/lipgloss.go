// Package styles converts resolved theme configurations into lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/folio/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Focus    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Chip     lipgloss.Style
}

// DefaultStyles builds styles from the dark base configuration.
func DefaultStyles() Styles {
	return BuildStyles(theme.DarkConfiguration())
}

// BuildStyles converts a resolved configuration into lipgloss styles.
func BuildStyles(cfg theme.ModeConfiguration) Styles {
	th := ThemeFor(cfg)
	tokens := th.Tokens
	bg := lipgloss.Color(tokens.Background)

	return Styles{
		Theme:    th,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Heading:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Selected)),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Flatten(cfg.Palette.Primary.Shade(theme.ShadeContrastText), tokens.Background))).Background(lipgloss.Color(tokens.Accent)).Padding(0, 2).Bold(true),
		Chip:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Hover)).Padding(0, 1),
	}.withBackground(bg)
}

func (s Styles) withBackground(bg lipgloss.TerminalColor) Styles {
	s.Title = s.Title.Background(bg)
	s.Heading = s.Heading.Background(bg)
	return s
}

// Swatch renders a color block labelled with its value.
func Swatch(label, value, background string) string {
	flat := theme.Flatten(value, background)
	block := lipgloss.NewStyle().Background(lipgloss.Color(flat)).Render("    ")
	return block + " " + label + " " + value
}
