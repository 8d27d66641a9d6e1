package web

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/opencode-ai/folio/internal/ogimage"
	"github.com/opencode-ai/folio/internal/theme"
)

const defaultImageCacheSize = 64

// Image kinds, used in cache keys and metric labels.
const (
	kindSocialCard = "opengraph"
	kindIcon       = "icon"
)

type imageEntry struct {
	body []byte
	etag string
}

// imageCache holds encoded PNGs keyed by everything that affects their bytes.
type imageCache struct {
	cache   *lru.Cache[string, imageEntry]
	metrics *Metrics
}

func newImageCache(size int, metrics *Metrics) (*imageCache, error) {
	if size <= 0 {
		size = defaultImageCacheSize
	}
	cache, err := lru.New[string, imageEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	return &imageCache{cache: cache, metrics: metrics}, nil
}

func (c *imageCache) socialCard(cfg theme.ModeConfiguration, card ogimage.Card) (imageEntry, error) {
	key := fmt.Sprintf("%s|%s|%q|%q|%q|%q|%q|%q", kindSocialCard, cfg.Mode,
		card.Title, card.Subtitle, card.Initials, card.Tagline, card.Pills, card.Footer)
	return c.get(key, kindSocialCard, cfg.Mode, func() ([]byte, error) {
		img, err := ogimage.RenderSocialCard(cfg, card)
		if err != nil {
			return nil, err
		}
		return encode(img)
	})
}

func (c *imageCache) icon(cfg theme.ModeConfiguration, initials string, size int) (imageEntry, error) {
	key := fmt.Sprintf("%s|%s|%d|%q", kindIcon, cfg.Mode, size, initials)
	return c.get(key, kindIcon, cfg.Mode, func() ([]byte, error) {
		img, err := ogimage.RenderIcon(cfg, initials, size)
		if err != nil {
			return nil, err
		}
		return encode(img)
	})
}

func (c *imageCache) get(key, kind string, mode theme.Mode, render func() ([]byte, error)) (imageEntry, error) {
	if entry, ok := c.cache.Get(key); ok {
		c.metrics.IncImageCache("hit")
		return entry, nil
	}
	c.metrics.IncImageCache("miss")

	body, err := render()
	if err != nil {
		return imageEntry{}, err
	}
	c.metrics.IncImageRender(kind, mode.String())

	entry := imageEntry{body: body, etag: etagFor(body)}
	c.cache.Add(key, entry)
	return entry, nil
}

func (c *imageCache) len() int {
	return c.cache.Len()
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ogimage.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// etagFor returns a strong ETag over the blake2b-256 digest of body.
func etagFor(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
