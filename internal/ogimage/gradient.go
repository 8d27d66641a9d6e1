package ogimage

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/folio/internal/theme"
)

// linearGradient is an unbounded image whose color runs left to right
// through evenly spaced stops between columns x0 and x1. Columns outside
// that span take the nearest end stop.
type linearGradient struct {
	x0, x1 int
	stops  []colorful.Color
}

func newGradient(x0, x1 int, stops ...string) (linearGradient, error) {
	if len(stops) == 0 {
		return linearGradient{}, fmt.Errorf("gradient needs at least one stop")
	}
	g := linearGradient{x0: x0, x1: x1}
	for _, stop := range stops {
		c, err := theme.ParseColor(stop)
		if err != nil {
			return linearGradient{}, fmt.Errorf("gradient stop: %w", err)
		}
		g.stops = append(g.stops, c.Color)
	}
	return g, nil
}

func (g linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g linearGradient) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (g linearGradient) At(x, _ int) color.Color {
	c := g.stops[0]
	if span := g.x1 - 1 - g.x0; len(g.stops) > 1 && span > 0 {
		t := math.Min(math.Max(float64(x-g.x0)/float64(span), 0), 1)
		pos := t * float64(len(g.stops)-1)
		i := min(int(pos), len(g.stops)-2)
		c = g.stops[i].BlendRgb(g.stops[i+1], pos-float64(i))
	}
	r, gr, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: 0xff}
}
