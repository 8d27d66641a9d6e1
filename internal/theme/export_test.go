package theme

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLookup(t *testing.T) {
	cfg := DarkConfiguration()

	value, ok := cfg.Lookup("palette.background.default")
	require.True(t, ok)
	assert.Equal(t, "#0D1117", value)

	value, ok = cfg.Lookup("typography.h1.fontSize")
	require.True(t, ok)
	assert.Equal(t, "2.5rem", value)

	value, ok = cfg.Lookup("shadows.0")
	require.True(t, ok)
	assert.Equal(t, "none", value)

	value, ok = cfg.Lookup("components.Tabs.indicator.height")
	require.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = cfg.Lookup("components.Tabs.styleOverrides.indicator.height")
	require.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = cfg.Lookup("components.ListItemButton.root.&.Mui-selected.&:hover.backgroundColor")
	require.True(t, ok)
	assert.Equal(t, "rgba(9, 105, 218, 0.2)", value)

	value, ok = cfg.Lookup("components.CssBaseline.styleOverrides")
	require.True(t, ok)
	assert.Equal(t, cfg.BaselineCSS(), value)

	value, ok = cfg.Lookup("components.Paper")
	require.True(t, ok)
	assert.IsType(t, Component{}, value)

	for _, missing := range []string{
		"", "palette.nope", "shadows.25", "components.Nope",
		"components.Tabs.indicator.height.x", "components.Tabs.defaultProps",
		"components.CssBaseline.styleOverrides.body", "components.Tab.root.&.Mui-focused",
	} {
		_, ok := cfg.Lookup(missing)
		assert.False(t, ok, missing)
	}
}

func TestToJSONUsesTokenNames(t *testing.T) {
	data, err := DarkConfiguration().ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	palette := decoded["palette"].(map[string]any)
	primary := palette["primary"].(map[string]any)
	assert.Equal(t, "#0969DA", primary["main"])
	assert.Equal(t, "#FFFFFF", primary["contrastText"])
	assert.Len(t, decoded["shadows"], ShadowCount)

	components := decoded["components"].(map[string]any)
	baseline := components["CssBaseline"].(map[string]any)
	assert.Contains(t, baseline["styleOverrides"], "::selection")
	paper := components["Paper"].(map[string]any)
	assert.Equal(t, map[string]any{"elevation": float64(0)}, paper["defaultProps"])

	standardError := components["Alert"].(map[string]any)["styleOverrides"].(map[string]any)["standardError"].(map[string]any)
	assert.Equal(t, "rgba(207, 34, 46, 0.3)", standardError["borderColor"])
}

func TestComponentsRoundTripKeepsTypes(t *testing.T) {
	registry := newTestRegistry(t)

	for _, mode := range Modes() {
		cfg, err := registry.Resolve(mode)
		require.NoError(t, err)

		data, err := cfg.ToJSON()
		require.NoError(t, err)
		var fromJSON ModeConfiguration
		require.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.Equal(t, cfg, fromJSON, "json %s", mode)

		data, err = cfg.ToYAML()
		require.NoError(t, err)
		var fromYAML ModeConfiguration
		require.NoError(t, yaml.Unmarshal(data, &fromYAML))
		assert.Equal(t, cfg.Components, fromYAML.Components, "yaml %s", mode)
	}
}

func TestToYAML(t *testing.T) {
	registry := newTestRegistry(t)
	light, err := registry.Resolve(ModeLight)
	require.NoError(t, err)

	data, err := light.ToYAML()
	require.NoError(t, err)

	var decoded struct {
		Mode    string `yaml:"mode"`
		Palette struct {
			Background struct {
				Default string `yaml:"default"`
			} `yaml:"background"`
		} `yaml:"palette"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "light", decoded.Mode)
	assert.Equal(t, "#FFFFFF", decoded.Palette.Background.Default)
}

func TestCSSVariables(t *testing.T) {
	cfg := DarkConfiguration()

	vars := make(map[string]string)
	for _, v := range cfg.CSSVariables() {
		vars[v.Name] = v.Value
	}

	assert.Equal(t, "#0D1117", vars["--folio-palette-background-default"])
	assert.Equal(t, "#FFFFFF", vars["--folio-palette-primary-contrast-text"])
	assert.Equal(t, "#CF222E", vars["--folio-palette-error-contrast-text"])
	assert.Equal(t, "2.5rem", vars["--folio-typography-h1-font-size"])
	assert.Equal(t, "1.25", vars["--folio-typography-h1-line-height"])
	assert.Equal(t, "600", vars["--folio-typography-h1-font-weight"])
	assert.Equal(t, "uppercase", vars["--folio-typography-overline-text-transform"])
	assert.Equal(t, "6px", vars["--folio-shape-border-radius"])
	assert.Equal(t, "none", vars["--folio-shadow-0"])
	assert.NotContains(t, vars, "--folio-typography-h3-letter-spacing")
	assert.NotContains(t, vars, "--folio-typography-body1-font-weight")
	assert.NotContains(t, vars, "--folio-typography-overline-line-height")
}

func TestCSSRule(t *testing.T) {
	registry := newTestRegistry(t)
	light, err := registry.Resolve(ModeLight)
	require.NoError(t, err)

	css := light.CSS("")
	assert.True(t, strings.HasPrefix(css, `[data-theme="light"] {`))
	assert.Contains(t, css, "color-scheme: light;")
	assert.Contains(t, css, "--folio-palette-background-default: #FFFFFF;")

	root := light.CSS(":root")
	assert.True(t, strings.HasPrefix(root, ":root {"))
}

func TestComponentNamesSorted(t *testing.T) {
	names := DarkConfiguration().ComponentNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "Alert", names[0])
	assert.Contains(t, names, "Tabs")
}

func TestValidateSelector(t *testing.T) {
	for _, ok := range []string{"", ":root", `[data-theme="dark"]`, "html.dark body"} {
		assert.NoError(t, ValidateSelector(ok), ok)
	}
	for _, bad := range []string{"a{", "}", "body;", ":root { color: red }"} {
		assert.ErrorIs(t, ValidateSelector(bad), ErrInvalidSelector, bad)
	}
}
