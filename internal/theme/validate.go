package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete wraps every completeness failure reported by Validate.
var ErrIncomplete = errors.New("incomplete theme configuration")

// RequiredComponents lists the component slots both configurations expose,
// since renderers read them without checks.
var RequiredComponents = []string{
	"AppBar.root",
	"Card.root",
	"Paper.root",
	"Button.containedPrimary",
	"Button.containedSecondary",
	"Button.outlined",
	"Button.outlinedPrimary",
	"Chip.filled",
	"Chip.outlined",
	"Chip.colorSuccess",
	"Chip.colorError",
	"Chip.colorWarning",
	"Link.root",
	"TextField.root",
	"Drawer.paper",
	"Alert.standardError",
	"Alert.standardSuccess",
	"Alert.standardInfo",
	"Alert.standardWarning",
	"Tooltip.tooltip",
	"Tooltip.arrow",
	"Avatar.root",
	"Pagination.root",
	"Tabs.indicator",
	"Tab.root",
	"ListItemButton.root",
	"Dialog.paper",
	"Menu.paper",
	"MenuItem.root",
	"Divider.root",
	"Skeleton.root",
	"TableCell.root",
	"TableCell.head",
	"TableRow.root",
}

// BaselineComponent carries the global stylesheet.
const BaselineComponent = "CssBaseline"

// Validate reports the first missing or empty field.
func (c ModeConfiguration) Validate() error {
	if !c.Mode.Valid() {
		return &InvalidModeError{Mode: string(c.Mode)}
	}
	if c.Palette.Mode != c.Mode {
		return fmt.Errorf("%w: palette mode %q does not match %q", ErrIncomplete, c.Palette.Mode, c.Mode)
	}

	for _, role := range c.Palette.Roles() {
		if strings.TrimSpace(role.Token.Main) == "" {
			return fmt.Errorf("%w: palette.%s.main is empty", ErrIncomplete, role.Name)
		}
		for _, shade := range Shades() {
			if _, err := ParseColor(role.Token.Shade(shade)); err != nil {
				return fmt.Errorf("%w: palette.%s.%s: %v", ErrIncomplete, role.Name, shade, err)
			}
		}
	}

	colors := map[string]string{
		"background.default": c.Palette.Background.Default,
		"background.paper":   c.Palette.Background.Paper,
		"text.primary":       c.Palette.Text.Primary,
		"text.secondary":     c.Palette.Text.Secondary,
		"text.disabled":      c.Palette.Text.Disabled,
		"divider":            c.Palette.Divider,
		"action.hover":       c.Palette.Action.Hover,
		"action.selected":    c.Palette.Action.Selected,
		"action.focus":       c.Palette.Action.Focus,
	}
	for name, value := range colors {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%w: palette.%s: %v", ErrIncomplete, name, err)
		}
	}

	if strings.TrimSpace(c.Typography.FontFamily) == "" {
		return fmt.Errorf("%w: typography.fontFamily is empty", ErrIncomplete)
	}
	for _, variant := range c.Typography.Variants() {
		if variant.Style.FontSize == "" || variant.Style.FontWeight < 0 || variant.Style.LineHeight < 0 {
			return fmt.Errorf("%w: typography.%s is incomplete", ErrIncomplete, variant.Name)
		}
	}

	if c.Shape.BorderRadius < 0 {
		return fmt.Errorf("%w: shape.borderRadius is negative", ErrIncomplete)
	}

	if c.Shadows[0] != "none" {
		return fmt.Errorf("%w: shadows[0] must be none", ErrIncomplete)
	}
	for level, shadow := range c.Shadows {
		if shadow == "" {
			return fmt.Errorf("%w: shadows[%d] is empty", ErrIncomplete, level)
		}
	}

	if strings.TrimSpace(c.Components[BaselineComponent].CSS) == "" {
		return fmt.Errorf("%w: components.%s has no stylesheet", ErrIncomplete, BaselineComponent)
	}
	for _, path := range RequiredComponents {
		value, ok := c.Lookup("components." + path)
		if !ok {
			return fmt.Errorf("%w: components.%s is missing", ErrIncomplete, path)
		}
		if record, isRecord := asRecord(value); !isRecord || len(record) == 0 {
			return fmt.Errorf("%w: components.%s is empty", ErrIncomplete, path)
		}
	}

	return nil
}
