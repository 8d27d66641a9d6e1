// Package ogimage renders social preview cards and site icons from a theme.
package ogimage

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Weight selects the typeface.
type Weight int

const (
	Regular Weight = iota
	Bold
)

type faceKey struct {
	weight Weight
	size   float64
}

var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font
	faceCache   sync.Map // map[faceKey]font.Face
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", fontsErr)
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", fontsErr)
		}
	})
	return fontsErr
}

func faceFor(weight Weight, size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	key := faceKey{weight: weight, size: size}
	if face, ok := faceCache.Load(key); ok {
		return face.(font.Face), nil
	}

	src := regularFont
	if weight == Bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpt face: %w", size, err)
	}
	actual, _ := faceCache.LoadOrStore(key, face)
	return actual.(font.Face), nil
}

// measureText returns the advance width of text.
func measureText(face font.Face, text string) int {
	drawer := &font.Drawer{Face: face}
	return drawer.MeasureString(text).Ceil()
}

// drawText renders text with its top-left corner at (x, y) and returns the
// line height used.
func drawText(img *image.RGBA, face font.Face, x, y int, text string, col color.Color) int {
	return drawTextFrom(img, face, x, y, text, image.NewUniform(col))
}

// drawTextFrom is drawText with the glyphs filled from src, which is sampled
// in img's coordinates.
func drawTextFrom(img *image.RGBA, face font.Face, x, y int, text string, src image.Image) int {
	metrics := face.Metrics()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)
	return metrics.Height.Ceil()
}

// wrapText splits text into lines no wider than width. A single word wider
// than width is kept on its own line.
func wrapText(face font.Face, text string, width int) []string {
	var lines []string
	var current string
	for _, word := range splitWords(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && measureText(face, candidate) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func splitWords(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}
