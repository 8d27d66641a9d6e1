package theme

import (
	"fmt"
	"sort"
)

// Shade names one sub-field of a ColorToken.
type Shade string

const (
	ShadeMain         Shade = "main"
	ShadeLight        Shade = "light"
	ShadeDark         Shade = "dark"
	ShadeContrastText Shade = "contrastText"
)

// Shades lists every shade in export order.
func Shades() []Shade {
	return []Shade{ShadeMain, ShadeLight, ShadeDark, ShadeContrastText}
}

// ColorToken is a named color role. Main is mandatory; the other shades fall
// back to Main when read through Shade.
type ColorToken struct {
	Main         string `json:"main" yaml:"main"`
	Light        string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark         string `json:"dark,omitempty" yaml:"dark,omitempty"`
	ContrastText string `json:"contrastText,omitempty" yaml:"contrastText,omitempty"`
}

// Shade returns the requested sub-field, or Main when it is unset.
func (c ColorToken) Shade(shade Shade) string {
	var value string
	switch shade {
	case ShadeLight:
		value = c.Light
	case ShadeDark:
		value = c.Dark
	case ShadeContrastText:
		value = c.ContrastText
	}
	if value == "" {
		return c.Main
	}
	return value
}

// Filled returns a copy with every shade populated.
func (c ColorToken) Filled() ColorToken {
	return ColorToken{
		Main:         c.Main,
		Light:        c.Shade(ShadeLight),
		Dark:         c.Shade(ShadeDark),
		ContrastText: c.Shade(ShadeContrastText),
	}
}

// Background holds the page and surface colors.
type Background struct {
	Default string `json:"default" yaml:"default"`
	Paper   string `json:"paper" yaml:"paper"`
}

// TextColors holds the text color roles.
type TextColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Disabled  string `json:"disabled" yaml:"disabled"`
}

// ActionColors holds interaction state colors.
type ActionColors struct {
	Hover    string `json:"hover" yaml:"hover"`
	Selected string `json:"selected" yaml:"selected"`
	Focus    string `json:"focus" yaml:"focus"`
}

// Palette is the full set of color tokens for one mode.
type Palette struct {
	Mode       Mode         `json:"mode" yaml:"mode"`
	Primary    ColorToken   `json:"primary" yaml:"primary"`
	Secondary  ColorToken   `json:"secondary" yaml:"secondary"`
	Error      ColorToken   `json:"error" yaml:"error"`
	Success    ColorToken   `json:"success" yaml:"success"`
	Info       ColorToken   `json:"info" yaml:"info"`
	Warning    ColorToken   `json:"warning" yaml:"warning"`
	Background Background   `json:"background" yaml:"background"`
	Text       TextColors   `json:"text" yaml:"text"`
	Divider    string       `json:"divider" yaml:"divider"`
	Action     ActionColors `json:"action" yaml:"action"`
}

// NamedColor pairs a role name with its token.
type NamedColor struct {
	Name  string
	Token ColorToken
}

// Roles lists the semantic color roles in export order.
func (p Palette) Roles() []NamedColor {
	return []NamedColor{
		{Name: "primary", Token: p.Primary},
		{Name: "secondary", Token: p.Secondary},
		{Name: "error", Token: p.Error},
		{Name: "success", Token: p.Success},
		{Name: "info", Token: p.Info},
		{Name: "warning", Token: p.Warning},
	}
}

// Role looks up a semantic color role by name.
func (p Palette) Role(name string) (ColorToken, bool) {
	for _, role := range p.Roles() {
		if role.Name == name {
			return role.Token, true
		}
	}
	return ColorToken{}, false
}

// TypographyStyle is one entry of the type scale.
type TypographyStyle struct {
	FontWeight    int     `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	FontSize      string  `json:"fontSize" yaml:"fontSize"`
	LineHeight    float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing string  `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	TextTransform string  `json:"textTransform,omitempty" yaml:"textTransform,omitempty"`
}

// Typography is the mode-independent type scale.
type Typography struct {
	FontFamily string          `json:"fontFamily" yaml:"fontFamily"`
	H1         TypographyStyle `json:"h1" yaml:"h1"`
	H2         TypographyStyle `json:"h2" yaml:"h2"`
	H3         TypographyStyle `json:"h3" yaml:"h3"`
	H4         TypographyStyle `json:"h4" yaml:"h4"`
	H5         TypographyStyle `json:"h5" yaml:"h5"`
	H6         TypographyStyle `json:"h6" yaml:"h6"`
	Body1      TypographyStyle `json:"body1" yaml:"body1"`
	Body2      TypographyStyle `json:"body2" yaml:"body2"`
	Button     TypographyStyle `json:"button" yaml:"button"`
	Caption    TypographyStyle `json:"caption" yaml:"caption"`
	Overline   TypographyStyle `json:"overline" yaml:"overline"`
}

// NamedTypographyStyle pairs a variant name with its style.
type NamedTypographyStyle struct {
	Name  string
	Style TypographyStyle
}

// Variants lists the type scale in export order.
func (t Typography) Variants() []NamedTypographyStyle {
	return []NamedTypographyStyle{
		{Name: "h1", Style: t.H1},
		{Name: "h2", Style: t.H2},
		{Name: "h3", Style: t.H3},
		{Name: "h4", Style: t.H4},
		{Name: "h5", Style: t.H5},
		{Name: "h6", Style: t.H6},
		{Name: "body1", Style: t.Body1},
		{Name: "body2", Style: t.Body2},
		{Name: "button", Style: t.Button},
		{Name: "caption", Style: t.Caption},
		{Name: "overline", Style: t.Overline},
	}
}

// Variant looks up a type scale entry by name.
func (t Typography) Variant(name string) (TypographyStyle, bool) {
	for _, variant := range t.Variants() {
		if variant.Name == name {
			return variant.Style, true
		}
	}
	return TypographyStyle{}, false
}

// Shape holds corner constants.
type Shape struct {
	BorderRadius int `json:"borderRadius" yaml:"borderRadius"`
}

// ShadowCount is the number of elevation levels, including level 0.
const ShadowCount = 25

// Shadows is the elevation sequence; index 0 is "none".
type Shadows [ShadowCount]string

// Elevation returns the shadow for a level, clamped into range.
func (s Shadows) Elevation(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= ShadowCount {
		level = ShadowCount - 1
	}
	return s[level]
}

// StyleRecord is a nested style override. Values are scalars (string, int,
// float64, bool) or nested StyleRecords. Selector keys such as "&:hover",
// "&.Mui-selected" or "& fieldset" hold nested records.
type StyleRecord map[string]any

// Component is the override entry for one widget. StyleOverrides maps a slot
// name (root, paper, containedPrimary) to its record. A global stylesheet
// entry carries raw CSS instead of slots.
type Component struct {
	DefaultProps   StyleRecord `json:"defaultProps,omitempty" yaml:"defaultProps,omitempty"`
	StyleOverrides StyleRecord `json:"-" yaml:"-"`
	CSS            string      `json:"-" yaml:"-"`
}

// Slot returns the style record of a named slot.
func (c Component) Slot(name string) (StyleRecord, bool) {
	record, ok := asRecord(c.StyleOverrides[name])
	return record, ok
}

// SlotNames returns the slot names in sorted order.
func (c Component) SlotNames() []string {
	names := make([]string, 0, len(c.StyleOverrides))
	for name := range c.StyleOverrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone deep-copies the entry.
func (c Component) Clone() Component {
	return Component{
		DefaultProps:   c.DefaultProps.Clone(),
		StyleOverrides: c.StyleOverrides.Clone(),
		CSS:            c.CSS,
	}
}

// Components maps a component name to its override entry.
type Components map[string]Component

// ModeConfiguration is the fully resolved style configuration for one mode.
type ModeConfiguration struct {
	Mode       Mode       `json:"mode" yaml:"mode"`
	Palette    Palette    `json:"palette" yaml:"palette"`
	Typography Typography `json:"typography" yaml:"typography"`
	Shape      Shape      `json:"shape" yaml:"shape"`
	Shadows    Shadows    `json:"shadows" yaml:"shadows"`
	Components Components `json:"components" yaml:"components"`
}

// SpacingUnit is the base spacing step in pixels.
const SpacingUnit = 8

// Spacing returns n spacing units as a CSS pixel length.
func (c ModeConfiguration) Spacing(n int) string {
	return fmt.Sprintf("%dpx", n*SpacingUnit)
}

// Clone returns a deep copy that shares no mutable state with c.
func (c ModeConfiguration) Clone() ModeConfiguration {
	out := c
	out.Components = c.Components.Clone()
	return out
}

// Clone deep-copies the component table.
func (c Components) Clone() Components {
	if c == nil {
		return nil
	}
	out := make(Components, len(c))
	for name, component := range c {
		out[name] = component.Clone()
	}
	return out
}

// Clone deep-copies a style record.
func (r StyleRecord) Clone() StyleRecord {
	if r == nil {
		return nil
	}
	out := make(StyleRecord, len(r))
	for key, value := range r {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case StyleRecord:
		return v.Clone()
	case map[string]any:
		return StyleRecord(v).Clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
