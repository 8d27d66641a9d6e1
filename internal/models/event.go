package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the audit log.
type EventType string

const (
	EventTypeSettingUpdated EventType = "setting.updated"
	EventTypeSettingDeleted EventType = "setting.deleted"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSetting EntityType = "setting"
)

// Event is an append-only audit log entry.
type Event struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Type       EventType         `json:"type"`
	EntityType EntityType        `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Payload    json.RawMessage   `json:"payload,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Validate checks the required fields.
func (e *Event) Validate() error {
	var errs []error
	if strings.TrimSpace(string(e.Type)) == "" {
		errs = append(errs, errors.New("type: event type is required"))
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		errs = append(errs, errors.New("entity_type: entity_type is required"))
	}
	if strings.TrimSpace(e.EntityID) == "" {
		errs = append(errs, errors.New("entity_id: entity_id is required"))
	}
	return errors.Join(errs...)
}

// SettingChangedPayload is the payload for setting.updated and
// setting.deleted events. OldValue is empty when the key was unset.
type SettingChangedPayload struct {
	Key      string `json:"key"`
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}
