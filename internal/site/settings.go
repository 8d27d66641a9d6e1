// Package site holds the page content and author settings for the site.
package site

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/opencode-ai/folio/internal/models"
)

// Author fallbacks substituted when no provider has a value. There is no
// avatar fallback; renderers draw the initials instead.
const (
	DefaultAuthorName     = "Developer"
	DefaultAuthorHeadline = DefaultTagline
)

// SettingsProvider is an opaque key-value source. A missing key is reported
// with ok=false, not an error.
type SettingsProvider interface {
	Setting(ctx context.Context, key string) (value string, ok bool, err error)
}

// StaticProvider serves settings from a fixed map.
type StaticProvider map[string]string

// Setting implements SettingsProvider.
func (p StaticProvider) Setting(_ context.Context, key string) (string, bool, error) {
	value, ok := p[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return value, true, nil
}

// ChainProvider consults providers in order and returns the first hit.
type ChainProvider []SettingsProvider

// Setting implements SettingsProvider.
func (c ChainProvider) Setting(ctx context.Context, key string) (string, bool, error) {
	for _, provider := range c {
		if provider == nil {
			continue
		}
		value, ok, err := provider.Setting(ctx, key)
		if err != nil {
			return "", false, fmt.Errorf("read setting %q: %w", key, err)
		}
		if ok {
			return value, true, nil
		}
	}
	return "", false, nil
}

// Author describes the site owner. Fields may be empty when unset.
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Headline  string `json:"headline"`
}

// LoadAuthor reads the author settings. Absent values stay empty.
func LoadAuthor(ctx context.Context, provider SettingsProvider) (Author, error) {
	var author Author
	if provider == nil {
		return author, nil
	}

	fields := []struct {
		key string
		dst *string
	}{
		{key: models.SettingAuthorName, dst: &author.Name},
		{key: models.SettingAuthorAvatarURL, dst: &author.AvatarURL},
		{key: models.SettingAuthorHeadline, dst: &author.Headline},
	}
	for _, field := range fields {
		value, ok, err := provider.Setting(ctx, field.key)
		if err != nil {
			return Author{}, err
		}
		if ok {
			*field.dst = strings.TrimSpace(value)
		}
	}
	return author, nil
}

// WithDefaults fills an empty name and headline with the site fallbacks.
// AvatarURL stays empty when unset.
func (a Author) WithDefaults() Author {
	if a.Name == "" {
		a.Name = DefaultAuthorName
	}
	if a.Headline == "" {
		a.Headline = DefaultAuthorHeadline
	}
	return a
}

// HasAvatar reports whether an avatar image is configured.
func (a Author) HasAvatar() bool {
	return a.AvatarURL != ""
}

// Initials returns the uppercase initials of the first and last name.
func (a Author) Initials() string {
	fields := strings.Fields(a.Name)
	if len(fields) == 0 {
		return "?"
	}
	initials := firstRune(fields[0])
	if len(fields) > 1 {
		initials += firstRune(fields[len(fields)-1])
	}
	return strings.ToUpper(initials)
}

func firstRune(value string) string {
	for _, r := range value {
		return string(r)
	}
	return ""
}

// DisplayURL strips the scheme, query and trailing slash from a site URL for
// printing, "https://example.com/ada/" becoming "example.com/ada".
func DisplayURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.TrimSpace(raw), "/")
	}
	return strings.TrimSuffix(u.Host+u.EscapedPath(), "/")
}
