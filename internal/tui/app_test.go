package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, author site.Author) model {
	t.Helper()
	registry, err := theme.NewRegistry()
	require.NoError(t, err)
	m, err := newModel(Config{Registry: registry, Author: author})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func TestNewModelRequiresRegistry(t *testing.T) {
	_, err := newModel(Config{})
	assert.Error(t, err)
}

func TestModeToggle(t *testing.T) {
	m := newTestModel(t, site.Author{})
	assert.Equal(t, theme.ModeDark, m.mode)

	m = update(t, m, runes("m"))
	assert.Equal(t, theme.ModeLight, m.mode)
	assert.Equal(t, "#FFFFFF", m.config.Palette.Background.Default)
	assert.Contains(t, m.View(), "Light")

	m = update(t, m, runes("m"))
	assert.Equal(t, theme.ModeDark, m.mode)
}

func TestViewNavigation(t *testing.T) {
	m := newTestModel(t, site.Author{})

	m = update(t, m, runes("2"))
	assert.Contains(t, m.View(), "2.5rem")

	m = update(t, m, runes("3"))
	assert.Contains(t, m.View(), "ListItemButton")

	m = update(t, m, runes("g"))
	assert.Equal(t, viewSite, m.view)
	m = update(t, m, runes("g"))
	assert.Equal(t, viewPalette, m.view)
}

func TestComponentFilter(t *testing.T) {
	m := newTestModel(t, site.Author{})

	m = update(t, m, runes("/"))
	require.True(t, m.filtering)
	assert.Equal(t, viewComponents, m.view)

	for _, r := range "tab" {
		m = update(t, m, runes(string(r)))
	}
	view := m.View()
	assert.Contains(t, view, "Tabs")
	assert.Contains(t, view, "TableCell")
	assert.NotContains(t, view, "Dialog")

	m = update(t, m, runes("m"))
	assert.Equal(t, theme.ModeDark, m.mode, "keys go to the filter while filtering")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.Empty(t, m.filter.Value())
}

func TestComponentFilterNoMatch(t *testing.T) {
	m := newTestModel(t, site.Author{})
	m = update(t, m, runes("/"))
	for _, r := range "zzz" {
		m = update(t, m, runes(string(r)))
	}
	assert.Contains(t, m.View(), "No components match 'zzz'")
}

func TestSiteView(t *testing.T) {
	m := newTestModel(t, site.Author{})
	m = update(t, m, runes("4"))
	assert.Contains(t, m.View(), "No author configured")

	m = newTestModel(t, site.Author{Name: "Ada Lovelace"})
	m = update(t, m, runes("4"))
	view := m.View()
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "initials avatar")
	assert.Contains(t, view, "AL")
	assert.Contains(t, view, "TypeScript")

	m = newTestModel(t, site.Author{Name: "Ada Lovelace", AvatarURL: "/ada.png"})
	m = update(t, m, runes("4"))
	assert.Contains(t, m.View(), "/ada.png")
}

func TestSmallTerminal(t *testing.T) {
	m := newTestModel(t, site.Author{})
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.True(t, strings.HasPrefix(stripANSI(m.View()), "Terminal too small"))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, site.Author{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
