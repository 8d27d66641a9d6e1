package theme

import "fmt"

const monoFontFamily = `ui-monospace, SFMono-Regular, "SF Mono", Menlo, Consolas, "Liberation Mono", monospace`

// baselineCSS is the global stylesheet: selection, scrollbars and inline
// code. track is the scrollbar track color and code the inline code fill.
func baselineCSS(selection, text, border, track, thumbHover, code string) string {
	return fmt.Sprintf(`
::selection {
  background: %[1]s;
  color: %[2]s;
}

html {
  scroll-behavior: smooth;
}

body {
  scrollbar-width: thin;
  scrollbar-color: %[3]s %[4]s;
}

::-webkit-scrollbar {
  width: 10px;
  height: 10px;
}

::-webkit-scrollbar-track {
  background: %[4]s;
}

::-webkit-scrollbar-thumb {
  background: %[3]s;
  border-radius: 5px;
  border: 2px solid %[4]s;
}

::-webkit-scrollbar-thumb:hover {
  background: %[5]s;
}

/* GitHub-style code blocks */
code {
  font-family: %[7]s;
  font-size: 85%%;
  background: %[6]s;
  border-radius: 6px;
  padding: 0.2em 0.4em;
}

pre code {
  background: transparent;
  padding: 0;
}
`, selection, text, border, track, thumbHover, code, monoFontFamily)
}

func styles(slots StyleRecord) Component {
	return Component{StyleOverrides: slots}
}

// darkComponents is the base component table. The light configuration keeps
// every entry that Overrides does not replace.
func darkComponents() Components {
	h, s := BaseHues(), DarkScheme()
	line := border(s.Border.Default)

	return Components{
		"CssBaseline": {
			CSS: baselineCSS(WithAlpha(h.Blue.Main, 0.4), s.Fg.Default, s.Border.Default, s.Canvas.Default, s.Fg.Subtle, WithAlpha(s.Neutral.Emphasis, 0.4)),
		},
		"Button": styles(StyleRecord{
			"root": StyleRecord{
				"borderRadius": 6,
				"padding":      "5px 16px",
				"fontWeight":   500,
				"fontSize":     "14px",
				"lineHeight":   "20px",
				"transition":   "all 0.12s ease-out",
				"&:focus-visible": StyleRecord{
					"outline":       "2px solid " + h.Blue.Main,
					"outlineOffset": 2,
				},
			},
			"contained": StyleRecord{
				"boxShadow": "0 1px 0 " + WithAlpha("#000", 0.1),
				"&:hover": StyleRecord{
					"boxShadow": "0 1px 0 " + WithAlpha("#000", 0.1),
				},
			},
			"containedPrimary": StyleRecord{
				"backgroundColor": h.Green.Light,
				"color":           "#FFFFFF",
				"border":          border(WithAlpha("#000", 0.1)),
				"&:hover": StyleRecord{
					"backgroundColor": h.Green.Main,
				},
			},
			"containedSecondary": StyleRecord{
				"backgroundColor": s.Canvas.Subtle,
				"color":           s.Fg.Default,
				"border":          line,
				"&:hover": StyleRecord{
					"backgroundColor": s.Border.Muted,
					"borderColor":     s.Fg.Subtle,
				},
			},
			"containedError": StyleRecord{
				"backgroundColor": h.Red.Main,
				"&:hover": StyleRecord{
					"backgroundColor": h.Red.Dark,
				},
			},
			"outlined": StyleRecord{
				"borderColor":     s.Border.Default,
				"color":           s.Fg.Default,
				"backgroundColor": s.Canvas.Subtle,
				"&:hover": StyleRecord{
					"backgroundColor": s.Border.Muted,
					"borderColor":     s.Fg.Subtle,
				},
			},
			"outlinedPrimary": StyleRecord{
				"borderColor": s.Border.Default,
				"color":       s.Fg.Default,
				"&:hover": StyleRecord{
					"backgroundColor": s.Border.Muted,
					"borderColor":     s.Fg.Subtle,
				},
			},
			"text": StyleRecord{
				"color": h.Blue.Main,
				"&:hover": StyleRecord{
					"backgroundColor": WithAlpha(h.Blue.Main, 0.1),
				},
			},
		}),
		"AppBar": styles(StyleRecord{
			"root": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Overlay,
				"borderBottom":    line,
				"boxShadow":       "none",
			},
		}),
		"Card": styles(StyleRecord{
			"root": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Overlay,
				"borderRadius":    6,
				"border":          line,
				"boxShadow":       "none",
				"&:hover": StyleRecord{
					"borderColor": s.Border.Default,
				},
			},
		}),
		"Paper": {
			DefaultProps: StyleRecord{"elevation": 0},
			StyleOverrides: StyleRecord{
				"root": StyleRecord{
					"backgroundImage": "none",
					"backgroundColor": s.Canvas.Overlay,
					"borderRadius":    6,
					"border":          line,
				},
			},
		},
		"Chip": styles(StyleRecord{
			"root": StyleRecord{
				"borderRadius": "2em",
				"fontWeight":   500,
				"fontSize":     "12px",
				"height":       24,
			},
			"filled": StyleRecord{
				"backgroundColor": WithAlpha(h.Blue.Main, 0.15),
				"color":           h.Blue.Light,
				"&:hover": StyleRecord{
					"backgroundColor": WithAlpha(h.Blue.Main, 0.25),
				},
			},
			"outlined": StyleRecord{
				"borderColor": s.Border.Default,
				"&:hover": StyleRecord{
					"backgroundColor": s.Neutral.Subtle,
				},
			},
			"colorSuccess": StyleRecord{
				"backgroundColor": WithAlpha(h.Green.Main, 0.15),
				"color":           h.Green.Muted,
			},
			"colorError": StyleRecord{
				"backgroundColor": WithAlpha(h.Red.Main, 0.15),
				"color":           h.Red.Muted,
			},
			"colorWarning": StyleRecord{
				"backgroundColor": WithAlpha(h.Orange.Main, 0.15),
				"color":           h.Orange.Light,
			},
		}),
		"Link": styles(StyleRecord{
			"root": StyleRecord{
				"color":          h.Blue.Main,
				"textDecoration": "none",
				"&:hover": StyleRecord{
					"textDecoration": "underline",
				},
			},
		}),
		"TextField": styles(textField(s, WithAlpha(h.Blue.Main, 0.3))),
		"Drawer": styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Overlay,
				"borderRight":     line,
			},
		}),
		"Alert": styles(StyleRecord{
			"root": StyleRecord{
				"borderRadius": 6,
				"border":       "1px solid",
			},
			"standardError":   alertSlot(WithAlpha(h.Red.Main, 0.1), h.Red, h.Red.Muted),
			"standardSuccess": alertSlot(WithAlpha(h.Green.Main, 0.1), h.Green, h.Green.Muted),
			"standardInfo":    alertSlot(WithAlpha(h.Blue.Main, 0.1), h.Blue, h.Blue.Muted),
			"standardWarning": alertSlot(WithAlpha(h.Orange.Main, 0.1), h.Orange, h.Orange.Light),
		}),
		"Tooltip": styles(StyleRecord{
			"tooltip": StyleRecord{
				"backgroundColor": s.Fg.Default,
				"color":           s.Canvas.Default,
				"fontSize":        "12px",
				"padding":         "6px 10px",
				"borderRadius":    6,
			},
			"arrow": StyleRecord{
				"color": s.Fg.Default,
			},
		}),
		"Avatar": styles(StyleRecord{
			"root": StyleRecord{
				"border": "2px solid " + s.Border.Default,
			},
		}),
		"Pagination": styles(pagination(s, h)),
		"Tabs": styles(StyleRecord{
			"indicator": StyleRecord{
				"height":          2,
				"backgroundColor": h.Coral.Main,
			},
		}),
		"Tab": styles(StyleRecord{
			"root": StyleRecord{
				"textTransform": "none",
				"fontWeight":    400,
				"minHeight":     48,
				"color":         s.Fg.Muted,
				"&.Mui-selected": StyleRecord{
					"color":      s.Fg.Default,
					"fontWeight": 600,
				},
				"&:hover": StyleRecord{
					"color": s.Fg.Default,
				},
			},
		}),
		"ListItemButton": styles(listItemButton(WithAlpha(h.Blue.Main, 0.15), WithAlpha(h.Blue.Main, 0.2), s.Neutral.Subtle)),
		"Dialog": styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Overlay,
				"border":          line,
				"boxShadow":       "0 8px 24px " + WithAlpha("#000", 0.5),
			},
		}),
		"Menu": styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Overlay,
				"border":          line,
				"boxShadow":       "0 8px 24px " + WithAlpha("#000", 0.25),
			},
		}),
		"MenuItem": styles(StyleRecord{
			"root": StyleRecord{
				"borderRadius": 6,
				"margin":       "2px 6px",
				"fontSize":     "14px",
				"&:hover": StyleRecord{
					"backgroundColor": s.Neutral.Subtle,
				},
				"&.Mui-selected": StyleRecord{
					"backgroundColor": WithAlpha(h.Blue.Main, 0.15),
				},
			},
		}),
		"Divider": styles(StyleRecord{
			"root": StyleRecord{
				"borderColor": s.Border.Default,
			},
		}),
		"Skeleton": styles(StyleRecord{
			"root": StyleRecord{
				"backgroundColor": s.Neutral.Muted,
			},
		}),
		"TableCell": styles(tableCell(s, s.Canvas.Subtle)),
		"TableRow":  styles(tableRow(s.Neutral.Subtle)),
	}
}

// The helpers below build records whose shape is shared by both modes.

func textField(s Scheme, focusRing string) StyleRecord {
	return StyleRecord{
		"root": StyleRecord{
			"& .MuiOutlinedInput-root": StyleRecord{
				"backgroundColor": s.Canvas.Default,
				"& fieldset": StyleRecord{
					"borderColor": s.Border.Default,
				},
				"&:hover fieldset": StyleRecord{
					"borderColor": s.Fg.Subtle,
				},
				"&.Mui-focused fieldset": StyleRecord{
					"borderColor": BaseHues().Blue.Main,
					"borderWidth": 2,
					"boxShadow":   "0 0 0 3px " + focusRing,
				},
			},
			"& .MuiInputLabel-root": StyleRecord{
				"color": s.Fg.Muted,
				"&.Mui-focused": StyleRecord{
					"color": BaseHues().Blue.Main,
				},
			},
		},
	}
}

func alertSlot(background string, hue Hue, text string) StyleRecord {
	return StyleRecord{
		"backgroundColor": background,
		"borderColor":     WithAlpha(hue.Main, 0.3),
		"color":           text,
		"& .MuiAlert-icon": StyleRecord{
			"color": hue.Main,
		},
	}
}

func pagination(s Scheme, h Hues) StyleRecord {
	return StyleRecord{
		"root": StyleRecord{
			"& .MuiPaginationItem-root": StyleRecord{
				"borderRadius": 6,
				"border":       border(s.Border.Default),
				"&.Mui-selected": StyleRecord{
					"backgroundColor": h.Blue.Main,
					"color":           "#FFFFFF",
					"borderColor":     h.Blue.Main,
				},
			},
		},
	}
}

func listItemButton(selected, selectedHover, hover string) StyleRecord {
	return StyleRecord{
		"root": StyleRecord{
			"borderRadius": 6,
			"&.Mui-selected": StyleRecord{
				"backgroundColor": selected,
				"&:hover": StyleRecord{
					"backgroundColor": selectedHover,
				},
			},
			"&:hover": StyleRecord{
				"backgroundColor": hover,
			},
		},
	}
}

func tableCell(s Scheme, head string) StyleRecord {
	return StyleRecord{
		"root": StyleRecord{
			"borderBottom": border(s.Border.Default),
		},
		"head": StyleRecord{
			"fontWeight":      600,
			"backgroundColor": head,
		},
	}
}

func tableRow(hover string) StyleRecord {
	return StyleRecord{
		"root": StyleRecord{
			"&:hover": StyleRecord{
				"backgroundColor": hover,
			},
		},
	}
}

func border(color string) string {
	return fmt.Sprintf("1px solid %s", color)
}
