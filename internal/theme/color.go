package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed CSS color with straight (non-premultiplied) alpha.
type Color struct {
	colorful.Color
	Alpha float64
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, rgb(r, g, b) and
// rgba(r, g, b, a).
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "#"):
		return parseHex(value)
	case strings.HasPrefix(value, "rgba(") || strings.HasPrefix(value, "rgb("):
		return parseRGBFunc(value)
	default:
		return Color{}, fmt.Errorf("unsupported color %q", value)
	}
}

// MustParseColor panics on malformed input; use it only with validated tokens.
func MustParseColor(value string) Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(value string) (Color, error) {
	hex := strings.TrimPrefix(value, "#")
	alpha := 1.0
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", value, err)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("malformed hex color %q", value)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse %q: %w", value, err)
	}
	return Color{Color: c, Alpha: alpha}, nil
}

func parseRGBFunc(value string) (Color, error) {
	open := strings.IndexByte(value, '(')
	if !strings.HasSuffix(value, ")") || open < 0 {
		return Color{}, fmt.Errorf("malformed color %q", value)
	}
	name := value[:open]
	parts := strings.Split(value[open+1:len(value)-1], ",")
	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("%s color %q needs %d components", name, value, want)
	}

	channels := make([]float64, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("channel %d of %q out of range", i, value)
		}
		channels[i] = float64(n) / 255
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("alpha of %q out of range", value)
		}
		alpha = a
	}

	return Color{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Alpha: alpha}, nil
}

// Over composites c onto an opaque background and returns the opaque result.
func (c Color) Over(background Color) Color {
	if c.Alpha >= 1 {
		return Color{Color: c.Color, Alpha: 1}
	}
	blended := background.Color.BlendRgb(c.Color, c.Alpha)
	return Color{Color: blended.Clamped(), Alpha: 1}
}

// NRGBA converts to an image/color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(c.Alpha * 255))}
}

// Hex returns #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return strings.ToUpper(c.Clamped().Hex())
}

// Flatten resolves value against background into an opaque #RRGGBB string.
// Unparseable input is returned unchanged.
func Flatten(value, background string) string {
	fg, err := ParseColor(value)
	if err != nil {
		return value
	}
	bg, err := ParseColor(background)
	if err != nil {
		return fg.Hex()
	}
	return fg.Over(bg).Hex()
}

// WithAlpha returns value with its alpha channel replaced, as
// "rgba(r, g, b, a)". Unparseable input is returned unchanged.
func WithAlpha(value string, opacity float64) string {
	c, err := ParseColor(value)
	if err != nil {
		return value
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(opacity, 'f', -1, 64))
}
