package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CSSPrefix namespaces every exported custom property.
const CSSPrefix = "--folio"

// Lookup reads a value by dotted path, for example
// "palette.background.default", "typography.h1.fontSize", "shadows.3" or
// "components.Tabs.indicator". Under a component, "defaultProps" and
// "styleOverrides" address the entry's two halves; any other segment is a
// slot of its style overrides. Selector keys containing dots, such as
// "&.Mui-selected", resolve as written.
func (c ModeConfiguration) Lookup(path string) (any, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	if segments[0] == "components" {
		return c.lookupComponent(segments[1:])
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, false
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, false
	}
	delete(tree, "components")
	return walk(tree, segments)
}

func (c ModeConfiguration) lookupComponent(segments []string) (any, bool) {
	if len(segments) == 0 {
		return c.Components, true
	}
	component, ok := c.Components[segments[0]]
	if !ok {
		return nil, false
	}
	rest := segments[1:]
	if len(rest) == 0 {
		return component, true
	}

	switch rest[0] {
	case "defaultProps":
		if component.DefaultProps == nil {
			return nil, false
		}
		return walk(component.DefaultProps, rest[1:])
	case "styleOverrides":
		if component.CSS != "" {
			if len(rest) > 1 {
				return nil, false
			}
			return component.CSS, true
		}
		if component.StyleOverrides == nil {
			return nil, false
		}
		return walk(component.StyleOverrides, rest[1:])
	default:
		return walk(component.StyleOverrides, rest)
	}
}

func walk(node any, segments []string) (any, bool) {
	current := node
	for len(segments) > 0 {
		switch v := current.(type) {
		case StyleRecord:
			key, rest := matchKey(v, segments)
			next, ok := v[key]
			if !ok {
				return nil, false
			}
			current, segments = next, rest
		case map[string]any:
			next, ok := v[segments[0]]
			if !ok {
				return nil, false
			}
			current, segments = next, segments[1:]
		case []any:
			index, err := strconv.Atoi(segments[0])
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current, segments = v[index], segments[1:]
		default:
			return nil, false
		}
	}
	return current, true
}

// ToJSON renders the configuration as indented JSON.
func (c ModeConfiguration) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s theme: %w", c.Mode, err)
	}
	return data, nil
}

// ToYAML renders the configuration as YAML.
func (c ModeConfiguration) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s theme: %w", c.Mode, err)
	}
	return data, nil
}

// CSSVariable is one custom property.
type CSSVariable struct {
	Name  string
	Value string
}

// CSSVariables flattens the palette, type scale, shape and shadows into
// custom properties. Component overrides are not exported.
func (c ModeConfiguration) CSSVariables() []CSSVariable {
	vars := make([]CSSVariable, 0, 96)
	add := func(value string, parts ...string) {
		vars = append(vars, CSSVariable{Name: CSSPrefix + "-" + strings.Join(parts, "-"), Value: value})
	}

	p := c.Palette
	for _, role := range p.Roles() {
		for _, shade := range Shades() {
			add(role.Token.Shade(shade), "palette", role.Name, kebab(string(shade)))
		}
	}
	add(p.Background.Default, "palette", "background", "default")
	add(p.Background.Paper, "palette", "background", "paper")
	add(p.Text.Primary, "palette", "text", "primary")
	add(p.Text.Secondary, "palette", "text", "secondary")
	add(p.Text.Disabled, "palette", "text", "disabled")
	add(p.Divider, "palette", "divider")
	add(p.Action.Hover, "palette", "action", "hover")
	add(p.Action.Selected, "palette", "action", "selected")
	add(p.Action.Focus, "palette", "action", "focus")

	add(c.Typography.FontFamily, "font", "family")
	for _, variant := range c.Typography.Variants() {
		style := variant.Style
		add(style.FontSize, "typography", variant.Name, "font-size")
		if style.FontWeight > 0 {
			add(strconv.Itoa(style.FontWeight), "typography", variant.Name, "font-weight")
		}
		if style.LineHeight > 0 {
			add(strconv.FormatFloat(style.LineHeight, 'f', -1, 64), "typography", variant.Name, "line-height")
		}
		if style.LetterSpacing != "" {
			add(style.LetterSpacing, "typography", variant.Name, "letter-spacing")
		}
		if style.TextTransform != "" {
			add(style.TextTransform, "typography", variant.Name, "text-transform")
		}
	}

	add(fmt.Sprintf("%dpx", c.Shape.BorderRadius), "shape", "border-radius")
	add(c.Spacing(1), "spacing")
	for level, shadow := range c.Shadows {
		add(shadow, "shadow", strconv.Itoa(level))
	}

	return vars
}

// ErrInvalidSelector is returned for a selector that would break out of the
// generated rule.
var ErrInvalidSelector = errors.New("invalid CSS selector")

// ValidateSelector rejects selectors containing rule delimiters.
func ValidateSelector(selector string) error {
	if strings.ContainsAny(selector, "{};") {
		return fmt.Errorf("%w %q: must not contain '{', '}' or ';'", ErrInvalidSelector, selector)
	}
	return nil
}

// CSS renders the custom properties as a rule for selector. An empty
// selector selects the element carrying the mode's data-theme attribute.
func (c ModeConfiguration) CSS(selector string) string {
	if selector == "" {
		selector = fmt.Sprintf(`[data-theme="%s"]`, c.Mode)
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	fmt.Fprintf(&b, "  color-scheme: %s;\n", c.Mode)
	for _, v := range c.CSSVariables() {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// BaselineCSS returns the global stylesheet: selection, scrollbars and
// inline code.
func (c ModeConfiguration) BaselineCSS() string {
	return c.Components[BaselineComponent].CSS
}

// ComponentNames returns the component keys in sorted order.
func (c ModeConfiguration) ComponentNames() []string {
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func kebab(value string) string {
	var b strings.Builder
	for i, r := range value {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
