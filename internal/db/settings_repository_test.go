package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/opencode-ai/folio/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(context.Background(), filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSettingsSetAndGet(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Set(ctx, models.SettingAuthorName, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.Get(ctx, models.SettingAuthorName)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != "Ada Lovelace" {
		t.Fatalf("expected value Ada Lovelace, got %q", got.Value)
	}

	updated, err := repo.Set(ctx, models.SettingAuthorName, "Ada")
	if err != nil {
		t.Fatalf("Set update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert changed id from %s to %s", created.ID, updated.ID)
	}
	if updated.Value != "Ada" {
		t.Fatalf("expected updated value, got %q", updated.Value)
	}
}

func TestSettingsGetMissing(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))

	if _, err := repo.Get(context.Background(), "missing"); err != ErrSettingNotFound {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}

	value, ok, err := repo.Setting(context.Background(), "missing")
	if err != nil || ok || value != "" {
		t.Fatalf("Setting(missing) = %q, %v, %v", value, ok, err)
	}
}

func TestSettingsRejectsEmptyKey(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))

	if _, err := repo.Set(context.Background(), "  ", "x"); err != ErrInvalidSetting {
		t.Fatalf("expected ErrInvalidSetting, got %v", err)
	}
}

func TestSettingsListAndDelete(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	for key, value := range map[string]string{
		models.SettingSiteTitle:       "Notes",
		models.SettingAuthorAvatarURL: "/me.png",
	} {
		if _, err := repo.Set(ctx, key, value); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	settings, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(settings))
	}
	if settings[0].Key != models.SettingAuthorAvatarURL {
		t.Fatalf("expected sorted keys, got %q first", settings[0].Key)
	}

	if err := repo.Delete(ctx, models.SettingSiteTitle); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, models.SettingSiteTitle); err != ErrSettingNotFound {
		t.Fatalf("expected ErrSettingNotFound on second delete, got %v", err)
	}
}

func TestOpenInMemory(t *testing.T) {
	database, err := OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer database.Close()

	if _, err := NewSettingsRepository(database).Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestSettingChangeCommitsWithEvent(t *testing.T) {
	database := setupTestDB(t)
	settings := NewSettingsRepository(database)
	events := NewEventRepository(database)
	ctx := context.Background()

	err := database.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := settings.SetWithTx(ctx, tx, models.SettingSiteTitle, "Folio"); err != nil {
			return err
		}
		return events.WithTx(tx).Create(ctx, &models.Event{
			Type:       models.EventTypeSettingUpdated,
			EntityType: models.EntityTypeSetting,
			EntityID:   models.SettingSiteTitle,
		})
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	if got, err := settings.Get(ctx, models.SettingSiteTitle); err != nil || got.Value != "Folio" {
		t.Fatalf("expected committed setting, got %v, %v", got, err)
	}
	recorded, err := events.ListByEntity(ctx, models.EntityTypeSetting, models.SettingSiteTitle, 10)
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorded))
	}
}

func TestSettingChangeRollsBackWhenEventFails(t *testing.T) {
	database := setupTestDB(t)
	settings := NewSettingsRepository(database)
	events := NewEventRepository(database)
	ctx := context.Background()

	if _, err := settings.Set(ctx, models.SettingAuthorName, "Ada"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := database.ExecContext(ctx, `
		CREATE TRIGGER reject_events BEFORE INSERT ON events
		BEGIN SELECT RAISE(ABORT, 'events are read-only'); END
	`); err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	err := database.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := settings.SetWithTx(ctx, tx, models.SettingAuthorName, "Grace"); err != nil {
			return err
		}
		return events.WithTx(tx).Create(ctx, &models.Event{
			Type:       models.EventTypeSettingUpdated,
			EntityType: models.EntityTypeSetting,
			EntityID:   models.SettingAuthorName,
		})
	})
	if err == nil {
		t.Fatal("expected event insert to fail")
	}

	got, err := settings.Get(ctx, models.SettingAuthorName)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != "Ada" {
		t.Fatalf("expected rolled back value Ada, got %q", got.Value)
	}

	err = database.WithTx(ctx, func(tx *sql.Tx) error {
		if err := settings.DeleteWithTx(ctx, tx, models.SettingAuthorName); err != nil {
			return err
		}
		return events.WithTx(tx).Create(ctx, &models.Event{})
	})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
	if _, err := settings.Get(ctx, models.SettingAuthorName); err != nil {
		t.Fatalf("delete should have rolled back: %v", err)
	}
}
