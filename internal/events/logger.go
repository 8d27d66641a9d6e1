// Package events records settings changes in the audit log.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogSettingUpdated records that key changed from oldValue to newValue.
func LogSettingUpdated(ctx context.Context, repo Repository, key, oldValue, newValue string) error {
	return logSetting(ctx, repo, models.EventTypeSettingUpdated, models.SettingChangedPayload{
		Key:      key,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

// LogSettingDeleted records that key was removed.
func LogSettingDeleted(ctx context.Context, repo Repository, key, oldValue string) error {
	return logSetting(ctx, repo, models.EventTypeSettingDeleted, models.SettingChangedPayload{
		Key:      key,
		OldValue: oldValue,
	})
}

func logSetting(ctx context.Context, repo Repository, eventType models.EventType, payload models.SettingChangedPayload) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if strings.TrimSpace(payload.Key) == "" {
		return fmt.Errorf("setting key is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal setting payload: %w", err)
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeSetting,
		EntityID:   payload.Key,
		Payload:    data,
	}

	return repo.Create(ctx, event)
}
