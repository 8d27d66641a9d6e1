package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/folio/internal/config"
	"github.com/opencode-ai/folio/internal/db"
	"github.com/opencode-ai/folio/internal/models"
	"github.com/opencode-ai/folio/internal/ogimage"
	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/themed"
)

func resetFlags() {
	configFile, logLevel, logFormat = "", "error", ""
	jsonOutput, jsonlOutput, noProgress, nonInteractive = false, false, true, false
	themePath, themeRemote = "", ""
	exportFormat, exportOutput, cssSelector = "json", "", ""
	imageMode, imageOutput, imageTitle, imageSubtitle, imageFooter, imageInitials = "", "", "", "", "", ""
	imageTagline, imagePills = "", nil
	imageSize = ogimage.FaviconSize
	previewMode = ""
	serveHTTPAddr, serveGRPCAddr, serveNoGRPC = "", "", false
	historyLimit, historySince = 50, ""
}

// executeCommand runs the root command with an isolated database.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Setenv("FOLIO_DATABASE_PATH", filepath.Join(t.TempDir(), "folio.db"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestThemeShowJSON(t *testing.T) {
	out, err := executeCommand(t, "theme", "show", "dark", "--json")
	require.NoError(t, err)

	var cfg theme.ModeConfiguration
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, theme.ModeDark, cfg.Mode)
	assert.Equal(t, "#0D1117", cfg.Palette.Background.Default)
}

func TestThemeShowTable(t *testing.T) {
	out, err := executeCommand(t, "theme", "show", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "TOKEN")
	assert.Contains(t, out, "#FFFFFF")
	assert.Contains(t, out, "2.5rem / 600")
}

func TestThemeShowPath(t *testing.T) {
	out, err := executeCommand(t, "theme", "show", "light", "--path", "palette.background.default")
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF\n", out)

	out, err = executeCommand(t, "theme", "show", "dark", "--path", "components.Tabs.indicator")
	require.NoError(t, err)
	assert.Contains(t, out, `"height": 2`)
	assert.Contains(t, out, `"backgroundColor": "#F78166"`)

	out, err = executeCommand(t, "theme", "show", "dark", "--path", "components.Paper.defaultProps.elevation")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = executeCommand(t, "theme", "show", "dark", "--path", "palette.nope")
	assert.Error(t, err)
}

func TestThemeShowInvalidMode(t *testing.T) {
	_, err := executeCommand(t, "theme", "show", "sepia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrInvalidMode))
}

func TestThemeShowDefaultModeFromEnv(t *testing.T) {
	t.Setenv("FOLIO_SITE_DEFAULT_MODE", "light")
	out, err := executeCommand(t, "theme", "show", "--path", "mode")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeShowRemote(t *testing.T) {
	daemon, err := themed.New(config.DefaultConfig(), theme.MustRegistry(), zerolog.Nop(), themed.Options{})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- daemon.Serve(ctx, lis) }()
	defer func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("daemon did not stop")
		}
	}()

	out, err := executeCommand(t, "theme", "show", "light", "--remote", lis.Addr().String(), "--path", "palette.background.default")
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF\n", out)
}

func TestThemeExport(t *testing.T) {
	out, err := executeCommand(t, "theme", "export", "light", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: light")

	path := filepath.Join(t.TempDir(), "dark.css")
	_, err = executeCommand(t, "theme", "export", "dark", "-f", "css", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `[data-theme="dark"] {`))

	_, err = executeCommand(t, "theme", "export", "dark", "-f", "toml")
	assert.Error(t, err)
}

func TestThemeCSSBothModes(t *testing.T) {
	out, err := executeCommand(t, "theme", "css")
	require.NoError(t, err)
	assert.Contains(t, out, `[data-theme="dark"] {`)
	assert.Contains(t, out, `[data-theme="light"] {`)

	out, err = executeCommand(t, "theme", "css", "light", "--selector", ":root")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {"))
	assert.NotContains(t, out, "data-theme")

	_, err = executeCommand(t, "theme", "css", "light", "--selector", "body{}")
	assert.ErrorIs(t, err, theme.ErrInvalidSelector)
}

func TestThemeOverrides(t *testing.T) {
	out, err := executeCommand(t, "theme", "overrides", "--json")
	require.NoError(t, err)

	var rows []overrideRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(theme.Overrides()))
	assert.Equal(t, "palette", rows[0].Path)

	paths := make([]string, 0, len(rows))
	for _, row := range rows {
		paths = append(paths, row.Path)
	}
	assert.Contains(t, paths, "components.Button")
	assert.NotContains(t, paths, "components.Tabs")

	for _, row := range rows {
		switch row.Path {
		case "components.CssBaseline":
			assert.Equal(t, "stylesheet", row.Kind)
		case "components.Button":
			assert.Equal(t, "component", row.Kind)
			assert.Equal(t, []string{"containedPrimary", "containedSecondary", "outlined", "outlinedPrimary"}, row.Keys)
		}
	}
}

func TestThemeModes(t *testing.T) {
	out, err := executeCommand(t, "theme", "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "light")
}

func TestSettingsLifecycle(t *testing.T) {
	t.Setenv("FOLIO_DATABASE_PATH", filepath.Join(t.TempDir(), "settings.db"))
	run := func(args ...string) (string, error) {
		resetFlags()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
		err := rootCmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("settings", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No settings stored.")

	_, err = run("settings", "set", models.SettingAuthorName, "Ada Lovelace")
	require.NoError(t, err)

	out, err = run("settings", "get", models.SettingAuthorName)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	out, err = run("settings", "list", "--json")
	require.NoError(t, err)
	var settings []models.Setting
	require.NoError(t, json.Unmarshal([]byte(out), &settings))
	require.Len(t, settings, 1)
	assert.Equal(t, models.SettingAuthorName, settings[0].Key)

	_, err = run("settings", "delete", models.SettingAuthorName)
	require.NoError(t, err)

	_, err = run("settings", "get", models.SettingAuthorName)
	assert.Error(t, err)
	_, err = run("settings", "delete", models.SettingAuthorName)
	assert.Error(t, err)
}

func TestServeFailsBeforeListening(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpAddr := free.Addr().String()
	require.NoError(t, free.Close())

	_, err = executeCommand(t, "serve", "--http-addr", httpAddr, "--grpc-addr", "no-port")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create theme daemon")

	lis, err := net.Listen("tcp", httpAddr)
	require.NoError(t, err, "http listener should never have been started")
	require.NoError(t, lis.Close())
}

func TestSettingsChangeRollsBackWithoutAuditEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	t.Setenv("FOLIO_DATABASE_PATH", path)
	run := func(args ...string) (string, error) {
		resetFlags()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
		err := rootCmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	_, err := run("settings", "set", models.SettingSiteTitle, "Folio")
	require.NoError(t, err)

	database, err := db.Open(context.Background(), path)
	require.NoError(t, err)
	_, err = database.ExecContext(context.Background(), `
		CREATE TRIGGER reject_events BEFORE INSERT ON events
		BEGIN SELECT RAISE(ABORT, 'events are read-only'); END
	`)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	_, err = run("settings", "set", models.SettingSiteTitle, "Changed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record setting change")

	_, err = run("settings", "delete", models.SettingSiteTitle)
	require.Error(t, err)

	out, err := run("settings", "get", models.SettingSiteTitle)
	require.NoError(t, err)
	assert.Equal(t, "Folio\n", out)
}

func TestSettingsHistory(t *testing.T) {
	t.Setenv("FOLIO_DATABASE_PATH", filepath.Join(t.TempDir(), "history.db"))
	run := func(args ...string) (string, error) {
		resetFlags()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
		err := rootCmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("settings", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No setting changes recorded.")

	_, err = run("settings", "set", models.SettingAuthorName, "Ada")
	require.NoError(t, err)
	_, err = run("settings", "set", models.SettingAuthorName, "Ada Lovelace")
	require.NoError(t, err)
	_, err = run("settings", "set", models.SettingAuthorHeadline, "Analyst")
	require.NoError(t, err)
	_, err = run("settings", "delete", models.SettingAuthorName)
	require.NoError(t, err)

	out, err = run("settings", "history", models.SettingAuthorName, "--json")
	require.NoError(t, err)
	var events []models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 3)
	assert.Equal(t, models.EventTypeSettingUpdated, events[0].Type)
	assert.Equal(t, models.EventTypeSettingDeleted, events[2].Type)

	var payload models.SettingChangedPayload
	require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
	assert.Equal(t, "Ada", payload.OldValue)
	assert.Equal(t, "Ada Lovelace", payload.NewValue)

	out, err = run("settings", "history", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "EVENT")
	assert.Contains(t, out, string(models.EventTypeSettingUpdated))

	_, err = run("settings", "history", "--since", "yesterday")
	assert.Error(t, err)
}

func TestImageIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	_, err := executeCommand(t, "image", "icon", "--size", "64", "--mode", "light", "-o", path)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestImageOGToStdout(t *testing.T) {
	out, err := executeCommand(t, "image", "og", "--title", "Hello", "--subtitle", "World", "-o", "-")
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, ogimage.CardWidth, img.Bounds().Dx())
	assert.Equal(t, ogimage.CardHeight, img.Bounds().Dy())
}

func TestImageOGCustomContent(t *testing.T) {
	out, err := executeCommand(t, "image", "og", "--title", "Hello", "--subtitle", "World",
		"--initials", "hw", "--tagline", "A greeting", "--pill", "Go", "--pill", "Rust", "--footer", "example.com", "-o", "-")
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, ogimage.CardWidth, img.Bounds().Dx())
	assert.Equal(t, []string{"Go", "Rust"}, imagePills)
}

func TestImageRequiresOutput(t *testing.T) {
	_, err := executeCommand(t, "image", "og")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Contains(t, preflight.Detailed(), "--output")
}

func TestImageInvalidMode(t *testing.T) {
	_, err := executeCommand(t, "image", "icon", "--mode", "blue", "-o", "-")
	assert.True(t, errors.Is(err, theme.ErrInvalidMode))
}

func TestPreviewNonInteractive(t *testing.T) {
	_, err := executeCommand(t, "preview", "--non-interactive")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
	assert.Equal(t, "folio theme show", preflight.NextStep)
}

func TestVersionJSON(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	out, err := executeCommand(t, "version", "--json")
	require.NoError(t, err)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abc123", info.Commit)
}

func TestBadConfigFile(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
}

func TestWriteOutputJSONL(t *testing.T) {
	resetFlags()
	jsonlOutput = true
	defer resetFlags()

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []string{"dark", "light"}))
	assert.Equal(t, "\"dark\"\n\"light\"\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestPreflightErrorDetailed(t *testing.T) {
	err := &PreflightError{Message: "boom", Hint: "try again", NextStep: "folio --help"}
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "Error: boom\nHint: try again\nNext: folio --help", err.Detailed())
}
