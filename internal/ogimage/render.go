package ogimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/opencode-ai/folio/internal/theme"
)

// Social card dimensions used by Open Graph and Twitter previews.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// Icon sizes served by the site.
const (
	FaviconSize   = 32
	AppleIconSize = 180
	MaxIconSize   = 1024
)

const (
	accentBarHeight = 6
	contentPaddingX = 80
	badgeSize       = 80
	badgeRadius     = 16
	badgeBorder     = 2
	badgeGap        = 24
	initialsSize    = 36
	titleSize       = 48
	subtitleSize    = 24
	headerGap       = 30
	taglineSize     = 28
	taglineWidth    = 800
	maxTaglineLines = 3
	taglineGap      = 40
	pillSize        = 18
	pillPaddingX    = 20
	pillPaddingY    = 8
	pillRadius      = 20
	pillGap         = 12
	maxPillRows     = 2
	footerSize      = 20
	footerBottom    = 30
	iconSupersample = 4
)

// AccentGradient is the left-to-right gradient across the top edge of a
// social card. The initials badge uses its first and last stops.
var AccentGradient = []string{"#58A6FF", "#0969DA", "#8250DF"}

// ErrInvalidSize is returned for icon sizes outside (0, MaxIconSize].
var ErrInvalidSize = errors.New("invalid image size")

// Card is the content of a social preview: an initials badge beside the
// title and subtitle, a wrapped tagline, a row of pills and a footer line,
// all centered.
type Card struct {
	Title    string
	Subtitle string
	Initials string
	Tagline  string
	Pills    []string
	Footer   string
}

type palette struct {
	background color.NRGBA
	paper      color.NRGBA
	divider    color.NRGBA
	text       color.NRGBA
	muted      color.NRGBA
	faint      color.NRGBA
	accent     color.NRGBA
	onAccent   color.NRGBA
	pill       color.NRGBA
}

func paletteFor(cfg theme.ModeConfiguration) (palette, error) {
	p := cfg.Palette
	bg, err := theme.ParseColor(p.Background.Default)
	if err != nil {
		return palette{}, fmt.Errorf("background: %w", err)
	}
	parse := func(name, value string) (color.NRGBA, error) {
		c, err := theme.ParseColor(value)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%s: %w", name, err)
		}
		return c.Over(bg).NRGBA(), nil
	}

	var out palette
	out.background = bg.NRGBA()
	fields := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"background.paper", p.Background.Paper, &out.paper},
		{"divider", p.Divider, &out.divider},
		{"text.primary", p.Text.Primary, &out.text},
		{"text.secondary", p.Text.Secondary, &out.muted},
		{"text.disabled", p.Text.Disabled, &out.faint},
		{"primary.main", p.Primary.Main, &out.accent},
		{"primary.contrastText", p.Primary.Shade(theme.ShadeContrastText), &out.onAccent},
	}
	for _, field := range fields {
		c, err := parse(field.name, field.value)
		if err != nil {
			return palette{}, err
		}
		*field.dst = c
	}

	primary := theme.MustParseColor(p.Primary.Main)
	primary.Alpha *= 0.15
	out.pill = primary.Over(bg).NRGBA()
	return out, nil
}

type cardFaces struct {
	initials font.Face
	title    font.Face
	subtitle font.Face
	tagline  font.Face
	pill     font.Face
	footer   font.Face
}

func loadCardFaces() (cardFaces, error) {
	var faces cardFaces
	specs := []struct {
		dst    *font.Face
		weight Weight
		size   float64
	}{
		{&faces.initials, Bold, initialsSize},
		{&faces.title, Bold, titleSize},
		{&faces.subtitle, Regular, subtitleSize},
		{&faces.tagline, Regular, taglineSize},
		{&faces.pill, Regular, pillSize},
		{&faces.footer, Regular, footerSize},
	}
	for _, spec := range specs {
		face, err := faceFor(spec.weight, spec.size)
		if err != nil {
			return cardFaces{}, err
		}
		*spec.dst = face
	}
	return faces, nil
}

// textLine is a string and the top-left corner it is drawn at.
type textLine struct {
	text string
	at   image.Point
}

type pill struct {
	rect  image.Rectangle
	label textLine
}

// cardLayout places every element of a Card. Empty elements are omitted:
// badge is the zero rectangle without initials, and lines with no text are
// left empty.
type cardLayout struct {
	badge    image.Rectangle
	initials textLine
	title    textLine
	subtitle textLine
	tagline  []textLine
	pills    []pill
	footer   textLine
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func centered(face font.Face, text string, y int) textLine {
	return textLine{text: text, at: image.Pt((CardWidth-measureText(face, text))/2, y)}
}

func layoutCard(faces cardFaces, card Card) cardLayout {
	var out cardLayout
	contentWidth := CardWidth - 2*contentPaddingX

	initials := strings.ToUpper(strings.TrimSpace(card.Initials))
	headerTextWidth := contentWidth
	if initials != "" {
		headerTextWidth -= badgeSize + badgeGap
	}
	title := ellipsize(faces.title, strings.TrimSpace(card.Title), headerTextWidth)
	subtitle := ellipsize(faces.subtitle, strings.TrimSpace(card.Subtitle), headerTextWidth)
	if title == "…" {
		title = ""
	}
	if subtitle == "…" {
		subtitle = ""
	}

	textHeight := 0
	if title != "" {
		textHeight += lineHeight(faces.title)
	}
	if subtitle != "" {
		textHeight += lineHeight(faces.subtitle)
	}
	headerWidth := max(measureText(faces.title, title), measureText(faces.subtitle, subtitle))
	headerHeight := textHeight
	if initials != "" {
		headerWidth += badgeSize + badgeGap
		headerHeight = max(headerHeight, badgeSize)
	}

	taglineLines := wrapText(faces.tagline, strings.TrimSpace(card.Tagline), min(taglineWidth, contentWidth))
	if len(taglineLines) > maxTaglineLines {
		rest := strings.Join(taglineLines[maxTaglineLines-1:], " ")
		taglineLines = append(taglineLines[:maxTaglineLines-1], ellipsize(faces.tagline, rest, min(taglineWidth, contentWidth)))
	}
	taglineLineHeight := int(math.Round(taglineSize * 1.4))

	pillHeight := lineHeight(faces.pill) + 2*pillPaddingY
	var rows [][]pill
	rowWidth := 0
	for _, label := range card.Pills {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		label = ellipsize(faces.pill, label, contentWidth-2*pillPaddingX)
		width := measureText(faces.pill, label) + 2*pillPaddingX
		if len(rows) == 0 || rowWidth+pillGap+width > contentWidth {
			if len(rows) == maxPillRows {
				break
			}
			rows = append(rows, nil)
			rowWidth = -pillGap
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], pill{
			rect:  image.Rect(0, 0, width, pillHeight),
			label: textLine{text: label},
		})
		rowWidth += pillGap + width
	}

	total := headerHeight
	if len(taglineLines) > 0 {
		if total > 0 {
			total += headerGap
		}
		total += len(taglineLines) * taglineLineHeight
	}
	if len(rows) > 0 {
		switch {
		case len(taglineLines) > 0:
			total += taglineGap
		case total > 0:
			total += headerGap
		}
		total += len(rows)*pillHeight + (len(rows)-1)*pillGap
	}

	bottom := CardHeight
	if footer := strings.TrimSpace(card.Footer); footer != "" {
		footerY := CardHeight - footerBottom - lineHeight(faces.footer)
		out.footer = centered(faces.footer, ellipsize(faces.footer, footer, contentWidth), footerY)
		bottom = footerY
	}
	y := accentBarHeight + max(0, (bottom-accentBarHeight-total)/2)

	x := (CardWidth - headerWidth) / 2
	if initials != "" {
		badgeY := y + (headerHeight-badgeSize)/2
		out.badge = image.Rect(x, badgeY, x+badgeSize, badgeY+badgeSize)
		metrics := faces.initials.Metrics()
		glyphHeight := (metrics.Ascent + metrics.Descent).Ceil()
		out.initials = textLine{text: initials, at: image.Pt(
			x+(badgeSize-measureText(faces.initials, initials))/2,
			badgeY+(badgeSize-glyphHeight)/2,
		)}
		x += badgeSize + badgeGap
	}
	ty := y + (headerHeight-textHeight)/2
	if title != "" {
		out.title = textLine{text: title, at: image.Pt(x, ty)}
		ty += lineHeight(faces.title)
	}
	if subtitle != "" {
		out.subtitle = textLine{text: subtitle, at: image.Pt(x, ty)}
	}
	y += headerHeight

	if len(taglineLines) > 0 {
		if headerHeight > 0 {
			y += headerGap
		}
		for _, line := range taglineLines {
			out.tagline = append(out.tagline, centered(faces.tagline, line, y+(taglineLineHeight-lineHeight(faces.tagline))/2))
			y += taglineLineHeight
		}
	}

	if len(rows) > 0 {
		switch {
		case len(taglineLines) > 0:
			y += taglineGap
		case headerHeight > 0:
			y += headerGap
		}
		for _, row := range rows {
			width := -pillGap
			for _, p := range row {
				width += pillGap + p.rect.Dx()
			}
			px := (CardWidth - width) / 2
			for _, p := range row {
				p.rect = p.rect.Add(image.Pt(px, y))
				p.label.at = image.Pt(p.rect.Min.X+pillPaddingX, p.rect.Min.Y+pillPaddingY)
				out.pills = append(out.pills, p)
				px = p.rect.Max.X + pillGap
			}
			y += pillHeight + pillGap
		}
	}
	return out
}

// RenderSocialCard draws a CardWidth x CardHeight preview in the theme's
// colors under an AccentGradient bar.
func RenderSocialCard(cfg theme.ModeConfiguration, card Card) (*image.RGBA, error) {
	colors, err := paletteFor(cfg)
	if err != nil {
		return nil, err
	}
	faces, err := loadCardFaces()
	if err != nil {
		return nil, err
	}
	bar, err := newGradient(0, CardWidth, AccentGradient...)
	if err != nil {
		return nil, err
	}
	layout := layoutCard(faces, card)

	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colors.background), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, CardWidth, accentBarHeight), bar, image.Point{}, draw.Src)

	if !layout.badge.Empty() {
		fillRoundedRect(img, layout.badge, badgeRadius, colors.divider)
		fillRoundedRect(img, layout.badge.Inset(badgeBorder), badgeRadius-badgeBorder, colors.paper)
		ink, err := newGradient(layout.badge.Min.X, layout.badge.Max.X, AccentGradient[0], AccentGradient[len(AccentGradient)-1])
		if err != nil {
			return nil, err
		}
		drawTextFrom(img, faces.initials, layout.initials.at.X, layout.initials.at.Y, layout.initials.text, ink)
	}
	drawLine(img, faces.title, layout.title, colors.text)
	drawLine(img, faces.subtitle, layout.subtitle, colors.accent)
	for _, line := range layout.tagline {
		drawLine(img, faces.tagline, line, colors.muted)
	}
	for _, p := range layout.pills {
		fillRoundedRect(img, p.rect, pillRadius, colors.divider)
		fillRoundedRect(img, p.rect.Inset(1), pillRadius-1, colors.pill)
		drawLine(img, faces.pill, p.label, colors.accent)
	}
	drawLine(img, faces.footer, layout.footer, colors.faint)

	return img, nil
}

func drawLine(img *image.RGBA, face font.Face, line textLine, col color.Color) {
	if line.text == "" {
		return
	}
	drawText(img, face, line.at.X, line.at.Y, line.text, col)
}

// RenderIcon draws a square icon with the initials on the primary color.
func RenderIcon(cfg theme.ModeConfiguration, initials string, size int) (*image.RGBA, error) {
	if size <= 0 || size > MaxIconSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	colors, err := paletteFor(cfg)
	if err != nil {
		return nil, err
	}

	large := size * iconSupersample
	canvas := image.NewRGBA(image.Rect(0, 0, large, large))
	radius := large * cfg.Shape.BorderRadius / 32
	fillRoundedRect(canvas, canvas.Bounds(), radius, colors.accent)

	initials = strings.ToUpper(strings.TrimSpace(initials))
	if initials == "" {
		initials = "?"
	}
	face, err := faceFor(Bold, float64(large)*0.45)
	if err != nil {
		return nil, err
	}
	width := measureText(face, initials)
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	drawText(canvas, face, (large-width)/2, (large-height)/2, initials, colors.onAccent)

	icon := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(icon, icon.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return icon, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func ellipsize(face font.Face, text string, width int) string {
	if measureText(face, text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + "…"
		if measureText(face, candidate) <= width {
			return candidate
		}
	}
	return "…"
}

// fillRoundedRect fills r with col, leaving the corners outside radius
// untouched.
func fillRoundedRect(img *image.RGBA, r image.Rectangle, radius int, col color.Color) {
	if radius < 0 {
		radius = 0
	}
	if limit := min(r.Dx(), r.Dy()) / 2; radius > limit {
		radius = limit
	}
	src := image.NewUniform(col)
	if radius == 0 {
		draw.Draw(img, r, src, image.Point{}, draw.Over)
		return
	}

	draw.Draw(img, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y), src, image.Point{}, draw.Over)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y+radius, r.Min.X+radius, r.Max.Y-radius), src, image.Point{}, draw.Over)
	draw.Draw(img, image.Rect(r.Max.X-radius, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), src, image.Point{}, draw.Over)

	corners := []image.Point{
		{X: r.Min.X + radius, Y: r.Min.Y + radius},
		{X: r.Max.X - radius - 1, Y: r.Min.Y + radius},
		{X: r.Min.X + radius, Y: r.Max.Y - radius - 1},
		{X: r.Max.X - radius - 1, Y: r.Max.Y - radius - 1},
	}
	r2 := radius * radius
	for i, c := range corners {
		x0, y0 := r.Min.X, r.Min.Y
		if i == 1 || i == 3 {
			x0 = r.Max.X - radius
		}
		if i >= 2 {
			y0 = r.Max.Y - radius
		}
		for y := y0; y < y0+radius; y++ {
			for x := x0; x < x0+radius; x++ {
				dx, dy := x-c.X, y-c.Y
				if dx*dx+dy*dy <= r2 {
					img.Set(x, y, col)
				}
			}
		}
	}
}
