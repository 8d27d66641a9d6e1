package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencode-ai/folio/internal/models"
	"github.com/opencode-ai/folio/internal/ogimage"
	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
)

type iconKind int

const (
	iconFavicon iconKind = iota
	iconApple
)

func (k iconKind) size() int {
	if k == iconApple {
		return ogimage.AppleIconSize
	}
	return ogimage.FaviconSize
}

// resolveMode resolves raw, or the configured default when raw is empty. It
// writes a 400 response and returns false for an unknown mode.
func (s *Server) resolveMode(c *gin.Context, raw string) (theme.ModeConfiguration, bool) {
	var (
		cfg theme.ModeConfiguration
		err error
	)
	if strings.TrimSpace(raw) == "" {
		cfg, err = s.registry.Resolve(s.cfg.DefaultMode())
	} else {
		cfg, err = s.registry.ResolveString(raw)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"modes": theme.Modes(),
		})
		return theme.ModeConfiguration{}, false
	}
	return cfg, true
}

func (s *Server) loadAuthor(c *gin.Context) (site.Author, bool) {
	author, err := site.LoadAuthor(c.Request.Context(), s.settings)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load author settings"})
		return site.Author{}, false
	}
	return author.WithDefaults(), true
}

func (s *Server) siteTitle(c *gin.Context) string {
	if title, ok, err := s.settings.Setting(c.Request.Context(), models.SettingSiteTitle); err == nil && ok {
		return title
	}
	if s.cfg.Site.Title != "" {
		return s.cfg.Site.Title
	}
	return "Personal Site"
}

func (s *Server) handleAbout(c *gin.Context) {
	cfg, ok := s.resolveMode(c, c.Query("mode"))
	if !ok {
		return
	}
	author, ok := s.loadAuthor(c)
	if !ok {
		return
	}

	css, err := themeStylesheet(s.registry)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render theme"})
		return
	}

	body, err := renderPage(pageData{
		SiteTitle: s.siteTitle(c),
		Mode:      cfg.Mode,
		Opposite:  cfg.Mode.Opposite(),
		ThemeCSS:  template.CSS(css),
		Baseline:  template.CSS(cfg.BaselineCSS()),
		Author:    author,
		Initials:  author.Initials(),
		About:     s.about,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) handleModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"modes":   theme.Modes(),
		"default": s.cfg.DefaultMode(),
	})
}

func (s *Server) handleTheme(c *gin.Context) {
	cfg, ok := s.resolveMode(c, c.Param("mode"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) handleThemeCSS(c *gin.Context) {
	file := c.Param("file")
	raw, found := strings.CutSuffix(file, ".css")
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no stylesheet %q", file)})
		return
	}
	selector := c.Query("selector")
	if err := theme.ValidateSelector(selector); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, ok := s.resolveMode(c, raw)
	if !ok {
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(cfg.CSS(selector)))
}

func (s *Server) handleSocialCard(c *gin.Context) {
	cfg, ok := s.resolveMode(c, c.Query("mode"))
	if !ok {
		return
	}
	author, ok := s.loadAuthor(c)
	if !ok {
		return
	}

	entry, err := s.images.socialCard(cfg, ogimage.Card{
		Title:    author.Name,
		Subtitle: author.Headline,
		Initials: author.Initials(),
		Tagline:  s.about.Summary(),
		Pills:    s.about.SkillNames(),
		Footer:   site.DisplayURL(s.cfg.Site.URL),
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render image"})
		return
	}
	writeImage(c, entry)
}

func (s *Server) handleIcon(kind iconKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := s.resolveMode(c, c.Query("mode"))
		if !ok {
			return
		}
		author, ok := s.loadAuthor(c)
		if !ok {
			return
		}

		entry, err := s.images.icon(cfg, author.Initials(), kind.size())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render image"})
			return
		}
		writeImage(c, entry)
	}
}

func writeImage(c *gin.Context, entry imageEntry) {
	c.Header("ETag", entry.etag)
	c.Header("Cache-Control", "public, max-age=86400")
	if match := c.GetHeader("If-None-Match"); match != "" && match == entry.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "image/png", entry.body)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
		"images":  s.images.len(),
	})
}
