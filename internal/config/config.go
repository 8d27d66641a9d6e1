// Package config loads site and server settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/folio/internal/theme"
)

// EnvPrefix is the environment variable prefix (FOLIO_SERVER_HTTP_ADDR, ...).
const EnvPrefix = "FOLIO"

// Config is the full application configuration.
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	Author   AuthorConfig   `mapstructure:"author"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Images   ImagesConfig   `mapstructure:"images"`
}

// SiteConfig describes the published site.
type SiteConfig struct {
	Title       string `mapstructure:"title"`
	URL         string `mapstructure:"url"`
	DefaultMode string `mapstructure:"default_mode"`
}

// AuthorConfig holds author settings. Empty values are substituted by callers.
type AuthorConfig struct {
	Name      string `mapstructure:"name"`
	AvatarURL string `mapstructure:"avatar_url"`
	Headline  string `mapstructure:"headline"`
}

// ServerConfig configures the HTTP and gRPC listeners.
type ServerConfig struct {
	HTTPAddr  string          `mapstructure:"http_addr"`
	GRPCAddr  string          `mapstructure:"grpc_addr"`
	CORS      bool            `mapstructure:"cors"`
	Debug     bool            `mapstructure:"debug"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig configures the gRPC token buckets.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// DatabaseConfig locates the settings database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ImagesConfig configures generated images.
type ImagesConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "Personal Site",
			URL:         "http://localhost:8080",
			DefaultMode: string(theme.ModeDark),
		},
		Server: ServerConfig{
			HTTPAddr: "127.0.0.1:8080",
			GRPCAddr: "127.0.0.1:50151",
			CORS:     false,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 200,
				BurstSize:         400,
			},
		},
		Database: DatabaseConfig{
			Path: DefaultDatabasePath(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Images: ImagesConfig{
			CacheSize: 64,
		},
	}
}

// DefaultDatabasePath places the settings database under the user's data dir.
func DefaultDatabasePath() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", "folio", "folio.db")
	}
	return "folio.db"
}

// SearchPaths returns config directories in precedence order.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "folio"))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "etc", "folio"))
	return paths
}

// Load reads configuration from file and environment on top of defaults.
// An explicit path must exist; otherwise a missing folio.yaml is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("site.title", cfg.Site.Title)
	v.SetDefault("site.url", cfg.Site.URL)
	v.SetDefault("site.default_mode", cfg.Site.DefaultMode)
	v.SetDefault("author.name", cfg.Author.Name)
	v.SetDefault("author.avatar_url", cfg.Author.AvatarURL)
	v.SetDefault("author.headline", cfg.Author.Headline)
	v.SetDefault("server.http_addr", cfg.Server.HTTPAddr)
	v.SetDefault("server.grpc_addr", cfg.Server.GRPCAddr)
	v.SetDefault("server.cors", cfg.Server.CORS)
	v.SetDefault("server.debug", cfg.Server.Debug)
	v.SetDefault("server.rate_limit.enabled", cfg.Server.RateLimit.Enabled)
	v.SetDefault("server.rate_limit.requests_per_second", cfg.Server.RateLimit.RequestsPerSecond)
	v.SetDefault("server.rate_limit.burst_size", cfg.Server.RateLimit.BurstSize)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("images.cache_size", cfg.Images.CacheSize)
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	if _, err := theme.ParseMode(c.Site.DefaultMode); err != nil {
		return fmt.Errorf("site.default_mode: %w", err)
	}
	if strings.TrimSpace(c.Server.HTTPAddr) == "" {
		return errors.New("server.http_addr is required")
	}
	if strings.TrimSpace(c.Server.GRPCAddr) == "" {
		return errors.New("server.grpc_addr is required")
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RequestsPerSecond <= 0 || c.Server.RateLimit.BurstSize <= 0) {
		return errors.New("server.rate_limit needs positive requests_per_second and burst_size")
	}
	if c.Images.CacheSize <= 0 {
		return errors.New("images.cache_size must be positive")
	}
	return nil
}

// DefaultMode returns the parsed site default mode.
func (c *Config) DefaultMode() theme.Mode {
	mode, err := theme.ParseMode(c.Site.DefaultMode)
	if err != nil {
		return theme.ModeDark
	}
	return mode
}
