package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opencode-ai/folio/internal/models"
)

func TestEventCreateAndGet(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	event := &models.Event{
		Type:       models.EventTypeSettingUpdated,
		EntityType: models.EntityTypeSetting,
		EntityID:   models.SettingAuthorName,
		Payload:    []byte(`{"key":"author.name","new_value":"Ada"}`),
		Metadata:   map[string]string{"source": "cli"},
	}
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if event.ID == "" || event.Timestamp.IsZero() {
		t.Fatal("expected generated id and timestamp")
	}

	got, err := repo.Get(ctx, event.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != models.EventTypeSettingUpdated || got.EntityID != models.SettingAuthorName {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Metadata["source"] != "cli" {
		t.Fatalf("metadata not round-tripped: %v", got.Metadata)
	}
	if string(got.Payload) != string(event.Payload) {
		t.Fatalf("payload = %s, want %s", got.Payload, event.Payload)
	}
}

func TestEventGetMissing(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventCreateRejectsInvalid(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.Event{Type: models.EventTypeSettingUpdated})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestEventQueryPaginationAndFilters(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	keys := []string{models.SettingAuthorName, models.SettingSiteTitle, models.SettingAuthorName}
	for i, key := range keys {
		event := &models.Event{
			Timestamp:  base.Add(time.Duration(i) * time.Millisecond),
			Type:       models.EventTypeSettingUpdated,
			EntityType: models.EntityTypeSetting,
			EntityID:   key,
		}
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	page, err := repo.Query(ctx, EventQuery{Limit: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(page.Events) != 2 || page.NextCursor == "" {
		t.Fatalf("expected 2 events and a cursor, got %d / %q", len(page.Events), page.NextCursor)
	}

	next, err := repo.Query(ctx, EventQuery{Limit: 2, Cursor: page.NextCursor})
	if err != nil {
		t.Fatalf("Query next: %v", err)
	}
	if len(next.Events) != 1 || next.NextCursor != "" {
		t.Fatalf("expected final page of 1, got %d / %q", len(next.Events), next.NextCursor)
	}

	byKey, err := repo.ListByEntity(ctx, models.EntityTypeSetting, models.SettingAuthorName, 10)
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(byKey) != 2 {
		t.Fatalf("expected 2 events for %s, got %d", models.SettingAuthorName, len(byKey))
	}
	if !byKey[0].Timestamp.Before(byKey[1].Timestamp) {
		t.Fatal("expected events oldest first")
	}

	since := base.Add(time.Millisecond)
	recent, err := repo.Query(ctx, EventQuery{Since: &since})
	if err != nil {
		t.Fatalf("Query since: %v", err)
	}
	if len(recent.Events) != 2 {
		t.Fatalf("expected 2 events since %s, got %d", since, len(recent.Events))
	}
}
