package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/folio/internal/db"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/web"
)

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	database, err := db.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, &PreflightError{
			Message:  fmt.Sprintf("failed to open settings database %s: %v", cfg.Database.Path, err),
			Hint:     "Set database.path in folio.yaml or FOLIO_DATABASE_PATH to a writable location",
			NextStep: "folio settings list",
		}
	}
	return database, nil
}

// settingsProvider returns the stored settings backed by the config author
// section. When the database cannot be opened only the config is used. The
// returned close function is never nil.
func settingsProvider(ctx context.Context) (site.SettingsProvider, func()) {
	cfg := GetConfig()
	fallback := web.ConfigSettings(cfg)

	database, err := openDatabase(ctx)
	if err != nil {
		logger := logging.Component("cli")
		logger.Warn().Err(err).Msg("settings database unavailable, using config only")
		return fallback, func() {}
	}
	provider := site.ChainProvider{db.NewSettingsRepository(database), fallback}
	return provider, func() { database.Close() }
}

func loadAuthor(ctx context.Context) (site.Author, error) {
	provider, closeFn := settingsProvider(ctx)
	defer closeFn()

	author, err := site.LoadAuthor(ctx, provider)
	if err != nil {
		return site.Author{}, fmt.Errorf("failed to load author: %w", err)
	}
	return author, nil
}
