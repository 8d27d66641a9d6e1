package theme

// Hue is one accent color family.
type Hue struct {
	Main         string
	Light        string
	Dark         string
	Muted        string
	Subtle       string
	ContrastText string
}

// Hues is the shared accent table both modes draw from.
type Hues struct {
	Blue   Hue
	Green  Hue
	Purple Hue
	Red    Hue
	Orange Hue
	Coral  Hue
}

// BaseHues returns the accent table.
func BaseHues() Hues {
	return Hues{
		Blue:   Hue{Main: "#0969DA", Light: "#218BFF", Dark: "#0550AE", Muted: "#54AEFF", Subtle: "#DDF4FF", ContrastText: "#FFFFFF"},
		Green:  Hue{Main: "#1A7F37", Light: "#2DA44E", Dark: "#116329", Muted: "#4AC26B", Subtle: "#DAFBE1", ContrastText: "#FFFFFF"},
		Purple: Hue{Main: "#8250DF", Light: "#A475F9", Dark: "#6639BA", Muted: "#C297FF", Subtle: "#FBEFFF", ContrastText: "#FFFFFF"},
		Red:    Hue{Main: "#CF222E", Light: "#FA4549", Dark: "#A40E26", Muted: "#FF8182", Subtle: "#FFEBE9", ContrastText: "#FFFFFF"},
		Orange: Hue{Main: "#BF8700", Light: "#D4A72C", Dark: "#9A6700", Muted: "#D4A72C", Subtle: "#FFF8C5", ContrastText: "#1F2328"},
		Coral:  Hue{Main: "#F78166", Light: "#FFA28B", Dark: "#DA6D56", ContrastText: "#FFFFFF"},
	}
}

// Scheme holds the neutral surface colors of one mode.
type Scheme struct {
	Canvas struct {
		Default, Overlay, Inset, Subtle string
	}
	Fg struct {
		Default, Muted, Subtle, OnEmphasis string
	}
	Border struct {
		Default, Muted, Subtle string
	}
	Neutral struct {
		EmphasisPlus, Emphasis, Muted, Subtle string
	}
}

// DarkScheme returns the dark surface colors.
func DarkScheme() Scheme {
	var s Scheme
	s.Canvas.Default = "#0D1117"
	s.Canvas.Overlay = "#161B22"
	s.Canvas.Inset = "#010409"
	s.Canvas.Subtle = "#161B22"
	s.Fg.Default = "#E6EDF3"
	s.Fg.Muted = "#8D96A0"
	s.Fg.Subtle = "#6E7681"
	s.Fg.OnEmphasis = "#FFFFFF"
	s.Border.Default = "#30363D"
	s.Border.Muted = "#21262D"
	s.Border.Subtle = "rgba(240,246,252,0.1)"
	s.Neutral.EmphasisPlus = "#6E7681"
	s.Neutral.Emphasis = "#6E7681"
	s.Neutral.Muted = "rgba(110,118,129,0.4)"
	s.Neutral.Subtle = "rgba(110,118,129,0.1)"
	return s
}

// LightScheme returns the light surface colors.
func LightScheme() Scheme {
	var s Scheme
	s.Canvas.Default = "#FFFFFF"
	s.Canvas.Overlay = "#FFFFFF"
	s.Canvas.Inset = "#F6F8FA"
	s.Canvas.Subtle = "#F6F8FA"
	s.Fg.Default = "#1F2328"
	s.Fg.Muted = "#636C76"
	s.Fg.Subtle = "#6E7681"
	s.Fg.OnEmphasis = "#FFFFFF"
	s.Border.Default = "#D0D7DE"
	s.Border.Muted = "#D8DEE4"
	s.Border.Subtle = "rgba(27,31,36,0.15)"
	s.Neutral.EmphasisPlus = "#24292F"
	s.Neutral.Emphasis = "#6E7681"
	s.Neutral.Muted = "rgba(175,184,193,0.2)"
	s.Neutral.Subtle = "rgba(234,238,242,0.5)"
	return s
}

func darkPalette() Palette {
	h, s := BaseHues(), DarkScheme()
	return Palette{
		Mode:      ModeDark,
		Primary:   ColorToken{Main: h.Blue.Main, Light: h.Blue.Light, Dark: h.Blue.Dark, ContrastText: h.Blue.ContrastText},
		Secondary: ColorToken{Main: h.Purple.Main, Light: h.Purple.Light, Dark: h.Purple.Dark, ContrastText: h.Purple.ContrastText},
		Error:     ColorToken{Main: h.Red.Main, Light: h.Red.Light, Dark: h.Red.Dark},
		Success:   ColorToken{Main: h.Green.Main, Light: h.Green.Light, Dark: h.Green.Dark},
		Info:      ColorToken{Main: h.Blue.Main, Light: h.Blue.Light, Dark: h.Blue.Dark},
		Warning:   ColorToken{Main: h.Orange.Main, Light: h.Orange.Light, Dark: h.Orange.Dark},
		Background: Background{
			Default: s.Canvas.Default,
			Paper:   s.Canvas.Overlay,
		},
		Text: TextColors{
			Primary:   s.Fg.Default,
			Secondary: s.Fg.Muted,
			Disabled:  s.Fg.Subtle,
		},
		Divider: s.Border.Default,
		Action: ActionColors{
			Hover:    WithAlpha(h.Blue.Main, 0.1),
			Selected: WithAlpha(h.Blue.Main, 0.15),
			Focus:    WithAlpha(h.Blue.Main, 0.12),
		},
	}
}

func lightPalette() Palette {
	h, s := BaseHues(), LightScheme()
	return Palette{
		Mode:      ModeLight,
		Primary:   ColorToken{Main: h.Blue.Main, Light: h.Blue.Light, Dark: h.Blue.Dark, ContrastText: "#FFFFFF"},
		Secondary: ColorToken{Main: h.Purple.Main, Light: h.Purple.Light, Dark: h.Purple.Dark, ContrastText: "#FFFFFF"},
		Error:     ColorToken{Main: h.Red.Main, Light: h.Red.Light, Dark: h.Red.Dark},
		Success:   ColorToken{Main: h.Green.Light, Light: h.Green.Muted, Dark: h.Green.Dark},
		Info:      ColorToken{Main: h.Blue.Main, Light: h.Blue.Light, Dark: h.Blue.Dark},
		Warning:   ColorToken{Main: h.Orange.Main, Light: h.Orange.Light, Dark: h.Orange.Dark},
		Background: Background{
			Default: s.Canvas.Default,
			Paper:   s.Canvas.Default,
		},
		Text: TextColors{
			Primary:   s.Fg.Default,
			Secondary: s.Fg.Muted,
			Disabled:  s.Fg.Subtle,
		},
		Divider: s.Border.Default,
		Action: ActionColors{
			Hover:    WithAlpha(h.Blue.Main, 0.06),
			Selected: WithAlpha(h.Blue.Main, 0.1),
			Focus:    WithAlpha(h.Blue.Main, 0.08),
		},
	}
}
