package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOverride is returned when an override path or value does not fit
// the configuration it is applied to.
var ErrInvalidOverride = errors.New("invalid override")

// Override replaces the value at a dotted path. The roots are "palette",
// "shape", "shadows" and "components". "components.Name" replaces the whole
// entry; a longer path sets one key inside the entry's style overrides, or
// inside its default props when the path continues with "defaultProps".
type Override struct {
	Path  string
	Value any
}

// Overrides returns the table that turns the dark configuration into the
// light one. Every listed component replaces the dark entry as a whole;
// components missing from the table keep their dark entry.
func Overrides() []Override {
	h, s := BaseHues(), LightScheme()
	line := border(s.Border.Default)

	return []Override{
		{Path: "palette", Value: lightPalette()},

		{Path: "components.CssBaseline", Value: Component{
			CSS: baselineCSS(WithAlpha(h.Blue.Main, 0.3), s.Fg.Default, s.Border.Default, s.Canvas.Inset, s.Fg.Subtle, s.Canvas.Inset),
		}},
		{Path: "components.AppBar", Value: styles(StyleRecord{
			"root": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"borderBottom":    line,
				"boxShadow":       "none",
				"color":           s.Fg.Default,
			},
		})},
		{Path: "components.Card", Value: styles(StyleRecord{
			"root": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"borderRadius":    6,
				"border":          line,
				"boxShadow":       "0 1px 0 " + WithAlpha("#000", 0.04),
				"&:hover": StyleRecord{
					"boxShadow": "0 1px 3px " + WithAlpha("#000", 0.08),
				},
			},
		})},
		{Path: "components.Paper", Value: styles(StyleRecord{
			"root": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"borderRadius":    6,
				"border":          line,
			},
		})},
		{Path: "components.Button", Value: styles(StyleRecord{
			"containedPrimary": StyleRecord{
				"backgroundColor": h.Green.Light,
				"color":           "#FFFFFF",
				"border":          border(WithAlpha("#000", 0.1)),
				"&:hover": StyleRecord{
					"backgroundColor": h.Green.Main,
				},
			},
			"containedSecondary": StyleRecord{
				"backgroundColor": s.Canvas.Inset,
				"color":           s.Fg.Default,
				"border":          line,
				"&:hover": StyleRecord{
					"backgroundColor": s.Border.Muted,
					"borderColor":     s.Fg.Subtle,
				},
			},
			"outlined": StyleRecord{
				"borderColor":     s.Border.Default,
				"color":           s.Fg.Default,
				"backgroundColor": s.Canvas.Default,
				"&:hover": StyleRecord{
					"backgroundColor": s.Canvas.Inset,
					"borderColor":     s.Fg.Subtle,
				},
			},
			"outlinedPrimary": StyleRecord{
				"borderColor": s.Border.Default,
				"color":       s.Fg.Default,
				"&:hover": StyleRecord{
					"backgroundColor": s.Canvas.Inset,
					"borderColor":     s.Fg.Subtle,
				},
			},
		})},
		{Path: "components.Chip", Value: styles(StyleRecord{
			"filled": StyleRecord{
				"backgroundColor": h.Blue.Subtle,
				"color":           h.Blue.Dark,
				"&:hover": StyleRecord{
					"backgroundColor": WithAlpha(h.Blue.Main, 0.2),
				},
			},
			"outlined": StyleRecord{
				"borderColor": s.Border.Default,
				"&:hover": StyleRecord{
					"backgroundColor": s.Canvas.Inset,
				},
			},
			"colorSuccess": StyleRecord{
				"backgroundColor": h.Green.Subtle,
				"color":           h.Green.Dark,
			},
			"colorError": StyleRecord{
				"backgroundColor": h.Red.Subtle,
				"color":           h.Red.Dark,
			},
			"colorWarning": StyleRecord{
				"backgroundColor": h.Orange.Subtle,
				"color":           h.Orange.Dark,
			},
		})},
		{Path: "components.TextField", Value: styles(textField(s, WithAlpha(h.Blue.Main, 0.15)))},
		{Path: "components.Drawer", Value: styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"borderRight":     line,
			},
		})},
		{Path: "components.Alert", Value: styles(StyleRecord{
			"standardError":   alertSlot(h.Red.Subtle, h.Red, h.Red.Dark),
			"standardSuccess": alertSlot(h.Green.Subtle, h.Green, h.Green.Dark),
			"standardInfo":    alertSlot(h.Blue.Subtle, h.Blue, h.Blue.Dark),
			"standardWarning": alertSlot(h.Orange.Subtle, h.Orange, h.Orange.Dark),
		})},
		{Path: "components.Tooltip", Value: styles(StyleRecord{
			"tooltip": StyleRecord{
				"backgroundColor": s.Fg.Default,
				"color":           s.Canvas.Default,
			},
			"arrow": StyleRecord{
				"color": s.Fg.Default,
			},
		})},
		{Path: "components.Avatar", Value: styles(StyleRecord{
			"root": StyleRecord{
				"border": "2px solid " + s.Border.Default,
			},
		})},
		{Path: "components.Pagination", Value: styles(pagination(s, h))},
		{Path: "components.Tab", Value: styles(StyleRecord{
			"root": StyleRecord{
				"color": s.Fg.Muted,
				"&.Mui-selected": StyleRecord{
					"color": s.Fg.Default,
				},
				"&:hover": StyleRecord{
					"color": s.Fg.Default,
				},
			},
		})},
		{Path: "components.ListItemButton", Value: styles(listItemButton(WithAlpha(h.Blue.Main, 0.1), WithAlpha(h.Blue.Main, 0.15), s.Neutral.Subtle))},
		{Path: "components.Dialog", Value: styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"border":          line,
				"boxShadow":       "0 8px 24px " + WithAlpha("#000", 0.15),
			},
		})},
		{Path: "components.Menu", Value: styles(StyleRecord{
			"paper": StyleRecord{
				"backgroundImage": "none",
				"backgroundColor": s.Canvas.Default,
				"border":          line,
				"boxShadow":       "0 8px 24px " + WithAlpha("#000", 0.12),
			},
		})},
		{Path: "components.MenuItem", Value: styles(StyleRecord{
			"root": StyleRecord{
				"&:hover": StyleRecord{
					"backgroundColor": s.Canvas.Inset,
				},
				"&.Mui-selected": StyleRecord{
					"backgroundColor": WithAlpha(h.Blue.Main, 0.1),
				},
			},
		})},
		{Path: "components.Divider", Value: styles(StyleRecord{
			"root": StyleRecord{
				"borderColor": s.Border.Default,
			},
		})},
		{Path: "components.Skeleton", Value: styles(StyleRecord{
			"root": StyleRecord{
				"backgroundColor": s.Neutral.Muted,
			},
		})},
		{Path: "components.TableCell", Value: styles(tableCell(s, s.Canvas.Inset))},
		{Path: "components.TableRow", Value: styles(tableRow(s.Canvas.Inset))},
	}
}

// Apply returns a copy of base with every override applied in order. base is
// not modified.
func Apply(base ModeConfiguration, overrides []Override) (ModeConfiguration, error) {
	cfg := base.Clone()
	for _, override := range overrides {
		if err := applyOverride(&cfg, override); err != nil {
			return ModeConfiguration{}, err
		}
	}
	return cfg, nil
}

func applyOverride(cfg *ModeConfiguration, override Override) error {
	segments := splitPath(override.Path)
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidOverride)
	}

	switch segments[0] {
	case "palette":
		if len(segments) != 1 {
			return fmt.Errorf("%w: %q: palette is replaced as a block", ErrInvalidOverride, override.Path)
		}
		palette, ok := override.Value.(Palette)
		if !ok {
			return fmt.Errorf("%w: %q: want Palette, got %T", ErrInvalidOverride, override.Path, override.Value)
		}
		cfg.Palette = palette
		cfg.Mode = palette.Mode
		return nil
	case "shape":
		if len(segments) != 1 {
			return fmt.Errorf("%w: %q: shape is replaced as a block", ErrInvalidOverride, override.Path)
		}
		shape, ok := override.Value.(Shape)
		if !ok {
			return fmt.Errorf("%w: %q: want Shape, got %T", ErrInvalidOverride, override.Path, override.Value)
		}
		cfg.Shape = shape
		return nil
	case "shadows":
		if len(segments) != 1 {
			return fmt.Errorf("%w: %q: shadows are replaced as a block", ErrInvalidOverride, override.Path)
		}
		shadows, ok := override.Value.(Shadows)
		if !ok {
			return fmt.Errorf("%w: %q: want Shadows, got %T", ErrInvalidOverride, override.Path, override.Value)
		}
		cfg.Shadows = shadows
		return nil
	case "components":
		return setComponentPath(cfg, segments[1:], override)
	default:
		return fmt.Errorf("%w: %q: unknown root %q", ErrInvalidOverride, override.Path, segments[0])
	}
}

func setComponentPath(cfg *ModeConfiguration, segments []string, override Override) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: %q: missing component name", ErrInvalidOverride, override.Path)
	}
	if cfg.Components == nil {
		cfg.Components = Components{}
	}

	name := segments[0]
	if len(segments) == 1 {
		switch v := override.Value.(type) {
		case Component:
			cfg.Components[name] = v.Clone()
			return nil
		default:
			record, ok := asRecord(override.Value)
			if !ok {
				return fmt.Errorf("%w: %q: want Component or StyleRecord, got %T", ErrInvalidOverride, override.Path, override.Value)
			}
			cfg.Components[name] = Component{StyleOverrides: record.Clone()}
			return nil
		}
	}

	component := cfg.Components[name]
	if component.CSS != "" {
		return fmt.Errorf("%w: %q: %s holds a stylesheet, not slots", ErrInvalidOverride, override.Path, name)
	}

	rest := segments[1:]
	target := &component.StyleOverrides
	switch rest[0] {
	case "defaultProps":
		target, rest = &component.DefaultProps, rest[1:]
	case "styleOverrides":
		rest = rest[1:]
	}
	if len(rest) == 0 {
		record, ok := asRecord(override.Value)
		if !ok {
			return fmt.Errorf("%w: %q: want StyleRecord, got %T", ErrInvalidOverride, override.Path, override.Value)
		}
		*target = record.Clone()
		cfg.Components[name] = component
		return nil
	}
	if *target == nil {
		*target = StyleRecord{}
	}

	if err := setRecordPath(*target, rest, cloneValue(override.Value)); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidOverride, override.Path, err)
	}
	cfg.Components[name] = component
	return nil
}

// setRecordPath stores value under the key path, creating intermediate
// records. Selector keys containing dots, such as "&.Mui-selected", match
// when the joined segments name an existing key.
func setRecordPath(record StyleRecord, segments []string, value any) error {
	for len(segments) > 0 {
		key, rest := matchKey(record, segments)
		if len(rest) == 0 {
			record[key] = value
			return nil
		}
		next, exists := record[key]
		if !exists {
			child := StyleRecord{}
			record[key] = child
			record, segments = child, rest
			continue
		}
		child, ok := asRecord(next)
		if !ok {
			return fmt.Errorf("%q holds %T, not a record", key, next)
		}
		record[key] = child
		record, segments = child, rest
	}
	return nil
}

// matchKey picks the longest run of leading segments that names a key of
// record, falling back to the first segment.
func matchKey(record StyleRecord, segments []string) (string, []string) {
	for n := len(segments); n > 1; n-- {
		key := strings.Join(segments[:n], ".")
		if _, ok := record[key]; ok {
			return key, segments[n:]
		}
	}
	return segments[0], segments[1:]
}

func asRecord(value any) (StyleRecord, bool) {
	switch v := value.(type) {
	case StyleRecord:
		return v, true
	case map[string]any:
		return StyleRecord(v), true
	default:
		return nil, false
	}
}

func splitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil
		}
	}
	return parts
}
