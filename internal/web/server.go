// Package web serves the About page, theme exports and generated images.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/models"
	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end.
type Server struct {
	cfg      *config.Config
	registry *theme.Registry
	settings site.SettingsProvider
	about    site.About
	logger   zerolog.Logger
	version  string

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	metrics    *Metrics
	images     *imageCache

	engine    *gin.Engine
	startedAt time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithVersion sets the version reported by /healthz.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithSettings sets the provider consulted for author settings. The default
// reads the author section of the config.
func WithSettings(provider site.SettingsProvider) Option {
	return func(s *Server) {
		s.settings = provider
	}
}

// WithAbout replaces the About page content.
func WithAbout(about site.About) Option {
	return func(s *Server) {
		s.about = about
	}
}

// WithRegistry registers metrics on reg and serves them from gatherer.
func WithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.registerer = reg
		s.gatherer = gatherer
	}
}

// NewServer builds the gin engine and routes.
func NewServer(cfg *config.Config, registry *theme.Registry, logger zerolog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if registry == nil {
		return nil, errors.New("theme registry is required")
	}

	s := &Server{
		cfg:       cfg,
		registry:  registry,
		settings:  ConfigSettings(cfg),
		about:     site.DefaultAbout(),
		logger:    logger,
		version:   "dev",
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registerer == nil || s.gatherer == nil {
		reg := prometheus.NewRegistry()
		s.registerer, s.gatherer = reg, reg
	}

	s.metrics = MustNewMetrics(s.registerer)
	images, err := newImageCache(cfg.Images.CacheSize, s.metrics)
	if err != nil {
		return nil, err
	}
	s.images = images

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger(logger))
	s.engine.Use(s.metrics.middleware())
	if cfg.Server.CORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "If-None-Match"}
		corsConfig.ExposeHeaders = []string{"ETag"}
		s.engine.Use(cors.New(corsConfig))
	}

	s.setupRoutes()
	return s, nil
}

// ConfigSettings exposes the config author section as a SettingsProvider.
func ConfigSettings(cfg *config.Config) site.StaticProvider {
	return site.StaticProvider{
		models.SettingAuthorName:      cfg.Author.Name,
		models.SettingAuthorAvatarURL: cfg.Author.AvatarURL,
		models.SettingAuthorHeadline:  cfg.Author.Headline,
		models.SettingSiteTitle:       cfg.Site.Title,
	}
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleAbout)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := s.engine.Group("/api")
	{
		api.GET("/theme", s.handleModes)
		api.GET("/theme/:mode", s.handleTheme)
	}

	s.engine.GET("/theme/:file", s.handleThemeCSS)
	s.engine.GET("/opengraph-image.png", s.handleSocialCard)
	s.engine.GET("/icon.png", s.handleIcon(iconFavicon))
	s.engine.GET("/apple-icon.png", s.handleIcon(iconApple))
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on server.http_addr until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.HTTPAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	s.logger.Info().Str("bind", listener.Addr().String()).Msg("http server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("http server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}

	s.logger.Info().Msg("http server shutdown complete")
	return nil
}
