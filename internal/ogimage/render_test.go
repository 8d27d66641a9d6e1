package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/folio/internal/theme"
)

func resolve(t *testing.T, mode theme.Mode) theme.ModeConfiguration {
	t.Helper()
	registry, err := theme.NewRegistry()
	require.NoError(t, err)
	cfg, err := registry.Resolve(mode)
	require.NoError(t, err)
	return cfg
}

func sampleCard() Card {
	return Card{
		Title:    "Ada Lovelace",
		Subtitle: "Notes on analytical engines",
		Initials: "al",
		Tagline:  "Programs for a machine that does not exist yet",
		Pills:    []string{"Go", "TypeScript", "PostgreSQL"},
		Footer:   "example.com/ada",
	}
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.NRGBA, msg string) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	assert.Equal(t, [3]uint32{uint32(want.R), uint32(want.G), uint32(want.B)}, [3]uint32{r >> 8, g >> 8, b >> 8}, msg)
}

func TestRenderSocialCardUsesThemeColors(t *testing.T) {
	faces, err := loadCardFaces()
	require.NoError(t, err)

	for _, mode := range theme.Modes() {
		cfg := resolve(t, mode)
		colors, err := paletteFor(cfg)
		require.NoError(t, err)

		img, err := RenderSocialCard(cfg, sampleCard())
		require.NoError(t, err)
		assert.Equal(t, CardWidth, img.Bounds().Dx())
		assert.Equal(t, CardHeight, img.Bounds().Dy())

		bg := theme.MustParseColor(cfg.Palette.Background.Default).NRGBA()
		assertPixel(t, img, 2, CardHeight-2, bg, "background "+string(mode))

		layout := layoutCard(faces, sampleCard())
		require.False(t, layout.badge.Empty())
		assertPixel(t, img, layout.badge.Min.X+badgeBorder+2, layout.badge.Min.Y+badgeSize/2, colors.paper, "badge "+string(mode))
		assertPixel(t, img, layout.badge.Min.X+badgeSize/2, layout.badge.Min.Y, colors.divider, "badge border "+string(mode))

		require.Len(t, layout.pills, 3)
		for _, p := range layout.pills {
			assertPixel(t, img, p.rect.Min.X+pillPaddingX/2, p.rect.Min.Y+p.rect.Dy()/2, colors.pill, "pill "+p.label.text)
		}
	}
}

func TestRenderSocialCardAccentBar(t *testing.T) {
	img, err := RenderSocialCard(resolve(t, theme.ModeLight), sampleCard())
	require.NoError(t, err)

	assertPixel(t, img, 0, 0, theme.MustParseColor("#58A6FF").NRGBA(), "left stop")
	assertPixel(t, img, CardWidth-1, accentBarHeight-1, theme.MustParseColor("#8250DF").NRGBA(), "right stop")

	mid := theme.MustParseColor("#0969DA").NRGBA()
	r, g, b, _ := img.At(CardWidth/2, 1).RGBA()
	assert.InDelta(t, float64(mid.R), float64(r>>8), 3)
	assert.InDelta(t, float64(mid.G), float64(g>>8), 3)
	assert.InDelta(t, float64(mid.B), float64(b>>8), 3)

	bg := theme.MustParseColor("#FFFFFF").NRGBA()
	assertPixel(t, img, CardWidth/2, accentBarHeight, bg, "below bar")
}

func TestLayoutCardCentersContent(t *testing.T) {
	faces, err := loadCardFaces()
	require.NoError(t, err)

	layout := layoutCard(faces, sampleCard())
	assert.Equal(t, "AL", layout.initials.text)
	assert.Equal(t, badgeSize, layout.badge.Dx())
	assert.Equal(t, layout.badge.Max.X+badgeGap, layout.title.at.X)
	assert.Equal(t, layout.title.at.X, layout.subtitle.at.X)
	assert.Greater(t, layout.subtitle.at.Y, layout.title.at.Y)

	headerRight := layout.title.at.X + max(measureText(faces.title, layout.title.text), measureText(faces.subtitle, layout.subtitle.text))
	assert.InDelta(t, CardWidth-headerRight, layout.badge.Min.X, 1)

	require.Len(t, layout.tagline, 1)
	assert.Greater(t, layout.tagline[0].at.Y, layout.badge.Max.Y)

	row := layout.pills[0].rect
	for _, p := range layout.pills[1:] {
		assert.Equal(t, row.Min.Y, p.rect.Min.Y)
		assert.Equal(t, pillGap, p.rect.Min.X-row.Max.X)
		row = p.rect
	}
	assert.InDelta(t, CardWidth-row.Max.X, layout.pills[0].rect.Min.X, 1)
	assert.Greater(t, layout.pills[0].rect.Min.Y, layout.tagline[0].at.Y)

	assert.Equal(t, "example.com/ada", layout.footer.text)
	assert.Equal(t, CardHeight-footerBottom-lineHeight(faces.footer), layout.footer.at.Y)
	assert.Greater(t, layout.footer.at.Y, layout.pills[0].rect.Max.Y)
}

func TestLayoutCardOmitsEmptyParts(t *testing.T) {
	faces, err := loadCardFaces()
	require.NoError(t, err)

	layout := layoutCard(faces, Card{Title: "Ada", Pills: []string{"", "  "}})
	assert.True(t, layout.badge.Empty())
	assert.Equal(t, "Ada", layout.title.text)
	assert.Empty(t, layout.subtitle.text)
	assert.Empty(t, layout.tagline)
	assert.Empty(t, layout.pills)
	assert.Empty(t, layout.footer.text)
	assert.Equal(t, (CardWidth-measureText(faces.title, "Ada"))/2, layout.title.at.X)
}

func TestLayoutCardLimitsTaglineAndPills(t *testing.T) {
	faces, err := loadCardFaces()
	require.NoError(t, err)

	pills := make([]string, 40)
	for i := range pills {
		pills[i] = fmt.Sprintf("Technology %d", i)
	}
	layout := layoutCard(faces, Card{
		Title:   strings.Repeat("supercalifragilistic ", 30),
		Tagline: strings.Repeat("lorem ipsum dolor sit amet ", 40),
		Pills:   pills,
	})

	assert.True(t, strings.HasSuffix(layout.title.text, "…"))
	assert.LessOrEqual(t, measureText(faces.title, layout.title.text), CardWidth-2*contentPaddingX)

	require.Len(t, layout.tagline, maxTaglineLines)
	assert.True(t, strings.HasSuffix(layout.tagline[maxTaglineLines-1].text, "…"))

	rows := make(map[int]bool)
	for _, p := range layout.pills {
		rows[p.rect.Min.Y] = true
		assert.GreaterOrEqual(t, p.rect.Min.X, contentPaddingX)
		assert.LessOrEqual(t, p.rect.Max.X, CardWidth-contentPaddingX)
	}
	assert.Len(t, rows, maxPillRows)
	assert.Less(t, len(layout.pills), len(pills))
}

func TestRenderSocialCardLongTitle(t *testing.T) {
	cfg := resolve(t, theme.ModeDark)
	_, err := RenderSocialCard(cfg, Card{Title: strings.Repeat("supercalifragilistic ", 30)})
	require.NoError(t, err)
}

func TestLinearGradient(t *testing.T) {
	g, err := newGradient(10, 21, "#000000", "#FFFFFF")
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{A: 0xff}, g.At(0, 0))
	assert.Equal(t, color.NRGBA{A: 0xff}, g.At(10, 99))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, g.At(20, 0))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, g.At(500, 0))
	mid := g.At(15, 0).(color.NRGBA)
	assert.InDelta(t, 128, float64(mid.R), 1)

	single, err := newGradient(0, 0, "#0969DA")
	require.NoError(t, err)
	assert.Equal(t, theme.MustParseColor("#0969DA").NRGBA(), single.At(7, 7))

	_, err = newGradient(0, 10)
	assert.Error(t, err)
	_, err = newGradient(0, 10, "not-a-color")
	assert.Error(t, err)
}

func TestRenderIcon(t *testing.T) {
	cfg := resolve(t, theme.ModeLight)

	icon, err := RenderIcon(cfg, "al", AppleIconSize)
	require.NoError(t, err)
	assert.Equal(t, AppleIconSize, icon.Bounds().Dx())

	primary := theme.MustParseColor(cfg.Palette.Primary.Main).NRGBA()
	r, g, b, a := icon.At(AppleIconSize/2, 6).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.InDelta(t, float64(primary.R), float64(r>>8), 2)
	assert.InDelta(t, float64(primary.G), float64(g>>8), 2)
	assert.InDelta(t, float64(primary.B), float64(b>>8), 2)

	_, _, _, cornerAlpha := icon.At(0, 0).RGBA()
	assert.Less(t, cornerAlpha, uint32(0x8000), "corners stay transparent")
}

func TestRenderIconRejectsBadSize(t *testing.T) {
	cfg := resolve(t, theme.ModeDark)
	for _, size := range []int{0, -1, MaxIconSize + 1} {
		_, err := RenderIcon(cfg, "A", size)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestEncodePNG(t *testing.T) {
	icon, err := RenderIcon(resolve(t, theme.ModeDark), "", FaviconSize)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, icon))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, FaviconSize, decoded.Bounds().Dx())
}

func TestWrapText(t *testing.T) {
	face, err := faceFor(Regular, 20)
	require.NoError(t, err)

	lines := wrapText(face, "one two three four five six seven", measureText(face, "one two three"))
	require.NotEmpty(t, lines)
	assert.Equal(t, "one two three", lines[0])
	assert.Equal(t, "one two three four five six seven", strings.Join(lines, " "))

	assert.Empty(t, wrapText(face, "   ", 100))
}

func TestEllipsize(t *testing.T) {
	face, err := faceFor(Regular, 20)
	require.NoError(t, err)

	assert.Equal(t, "short", ellipsize(face, "short", 500))
	long := ellipsize(face, strings.Repeat("x", 200), 100)
	assert.True(t, strings.HasSuffix(long, "…"))
	assert.LessOrEqual(t, measureText(face, long), 100)
}
