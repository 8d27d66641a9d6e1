package theme

const fontFamily = `-apple-system, BlinkMacSystemFont, "Segoe UI", "Noto Sans", Helvetica, Arial, sans-serif`

// baseTypography is shared by both modes. Zero fields are unset and left to
// the renderer's defaults.
func baseTypography() Typography {
	return Typography{
		FontFamily: fontFamily,
		H1:         TypographyStyle{FontWeight: 600, FontSize: "2.5rem", LineHeight: 1.25, LetterSpacing: "-0.02em"},
		H2:         TypographyStyle{FontWeight: 600, FontSize: "2rem", LineHeight: 1.25, LetterSpacing: "-0.01em"},
		H3:         TypographyStyle{FontWeight: 600, FontSize: "1.5rem", LineHeight: 1.25},
		H4:         TypographyStyle{FontWeight: 600, FontSize: "1.25rem", LineHeight: 1.25},
		H5:         TypographyStyle{FontWeight: 600, FontSize: "1rem", LineHeight: 1.4},
		H6:         TypographyStyle{FontWeight: 600, FontSize: "0.875rem", LineHeight: 1.5},
		Body1:      TypographyStyle{FontSize: "1rem", LineHeight: 1.5},
		Body2:      TypographyStyle{FontSize: "0.875rem", LineHeight: 1.5},
		Button:     TypographyStyle{FontWeight: 500, FontSize: "0.875rem", TextTransform: "none"},
		Caption:    TypographyStyle{FontSize: "0.75rem", LineHeight: 1.5},
		Overline:   TypographyStyle{FontWeight: 600, FontSize: "0.75rem", LetterSpacing: "0.05em", TextTransform: "uppercase"},
	}
}
