// Package cli implements the folio command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/theme"
)

var (
	configFile     string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	jsonlOutput    bool
	noProgress     bool
	nonInteractive bool

	appConfig   *config.Config
	appRegistry *theme.Registry

	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "Personal site theme and content server",
	Long:          "folio resolves the site's light and dark theme, serves the About page and generated images, and manages author settings.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./folio.yaml, ~/.config/folio/folio.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the terminal UI")
}

// SetVersion records build metadata shown by `folio version`.
func SetVersion(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func initApp() error {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return &PreflightError{
			Message:  fmt.Sprintf("failed to load configuration: %v", err),
			Hint:     "Check the file passed with --config and the FOLIO_* environment variables",
			NextStep: "folio --help",
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return err
	}

	registry, err := theme.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to build theme registry: %w", err)
	}

	appConfig = cfg
	appRegistry = registry
	logger := logging.Component("cli")
	logger.Debug().Str("default_mode", cfg.Site.DefaultMode).Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return appConfig
}

// GetRegistry returns the theme registry built at startup.
func GetRegistry() *theme.Registry {
	return appRegistry
}

func printError(err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintln(os.Stderr, preflight.Detailed())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
