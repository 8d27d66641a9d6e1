package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/opencode-ai/folio/internal/models"
)

type fakeRepo struct {
	last *models.Event
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return nil
}

func TestLogSettingUpdated(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogSettingUpdated(context.Background(), repo, models.SettingAuthorName, "Ada", "Ada Lovelace"); err != nil {
		t.Fatalf("LogSettingUpdated failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeSettingUpdated {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityID != models.SettingAuthorName {
		t.Fatalf("unexpected entity id: %q", repo.last.EntityID)
	}

	var payload models.SettingChangedPayload
	if err := json.Unmarshal(repo.last.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.OldValue != "Ada" || payload.NewValue != "Ada Lovelace" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogSettingDeleted(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogSettingDeleted(context.Background(), repo, models.SettingSiteTitle, "Notes"); err != nil {
		t.Fatalf("LogSettingDeleted failed: %v", err)
	}
	if repo.last.Type != models.EventTypeSettingDeleted {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityType != models.EntityTypeSetting {
		t.Fatalf("unexpected entity type: %q", repo.last.EntityType)
	}
}

func TestLogSettingRequiresKeyAndRepo(t *testing.T) {
	if err := LogSettingUpdated(context.Background(), nil, "k", "", "v"); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogSettingUpdated(context.Background(), &fakeRepo{}, " ", "", "v"); err == nil {
		t.Fatal("expected error for empty key")
	}
}
