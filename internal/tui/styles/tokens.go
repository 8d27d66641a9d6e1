package styles

import "github.com/opencode-ai/folio/internal/theme"

// ThemeTokens defines the semantic color roles for the terminal preview.
// Translucent theme colors are flattened onto the background because
// terminals cannot blend.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
	Hover      string
	Selected   string
}

// Theme bundles terminal tokens with the configuration they came from.
type Theme struct {
	Name   string
	Config theme.ModeConfiguration
	Tokens ThemeTokens
}

// TokensFrom maps a resolved configuration onto terminal tokens.
func TokensFrom(cfg theme.ModeConfiguration) ThemeTokens {
	p := cfg.Palette
	bg := p.Background.Default
	flat := func(value string) string {
		return theme.Flatten(value, bg)
	}

	return ThemeTokens{
		Background: flat(bg),
		Panel:      flat(p.Background.Paper),
		Text:       flat(p.Text.Primary),
		TextMuted:  flat(p.Text.Secondary),
		Border:     flat(p.Divider),
		Accent:     flat(p.Primary.Main),
		Focus:      flat(p.Primary.Shade(theme.ShadeLight)),
		Success:    flat(p.Success.Main),
		Warning:    flat(p.Warning.Main),
		Error:      flat(p.Error.Main),
		Info:       flat(p.Info.Main),
		Hover:      flat(p.Action.Hover),
		Selected:   flat(p.Action.Selected),
	}
}

// ThemeFor wraps a resolved configuration.
func ThemeFor(cfg theme.ModeConfiguration) Theme {
	return Theme{
		Name:   string(cfg.Mode),
		Config: cfg,
		Tokens: TokensFrom(cfg),
	}
}
