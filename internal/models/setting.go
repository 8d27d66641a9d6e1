// Package models defines persisted data types.
package models

import "time"

// Well-known setting keys read by the site.
const (
	SettingAuthorName      = "author.name"
	SettingAuthorAvatarURL = "author.avatarUrl"
	SettingAuthorHeadline  = "author.headline"
	SettingSiteTitle       = "site.title"
)

// Setting is a single site setting stored as a key-value pair.
type Setting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
