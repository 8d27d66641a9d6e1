package theme

import "fmt"

// Registry holds the two immutable mode configurations. Build it once at
// startup and share it; Resolve never mutates it.
type Registry struct {
	configs map[Mode]ModeConfiguration
}

// NewRegistry builds the dark base, derives light from it through Overrides
// and validates both.
func NewRegistry() (*Registry, error) {
	dark := DarkConfiguration()
	light, err := Apply(dark, Overrides())
	if err != nil {
		return nil, fmt.Errorf("build light theme: %w", err)
	}
	light.Mode = ModeLight

	configs := map[Mode]ModeConfiguration{
		ModeDark:  dark,
		ModeLight: light,
	}
	for mode, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s theme: %w", mode, err)
		}
	}

	return &Registry{configs: configs}, nil
}

// MustRegistry is NewRegistry for program initialization; it panics on a
// malformed built-in table.
func MustRegistry() *Registry {
	registry, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Resolve returns a deep copy of the configuration for mode. Repeated calls
// return value-equal results, and changes to a result never reach the
// registry.
func (r *Registry) Resolve(mode Mode) (ModeConfiguration, error) {
	cfg, ok := r.configs[mode]
	if !ok {
		return ModeConfiguration{}, &InvalidModeError{Mode: string(mode)}
	}
	return cfg.Clone(), nil
}

// ResolveString parses value with ParseMode and resolves it.
func (r *Registry) ResolveString(value string) (ModeConfiguration, error) {
	mode, err := ParseMode(value)
	if err != nil {
		return ModeConfiguration{}, err
	}
	return r.Resolve(mode)
}

// DarkConfiguration builds the base configuration from the literal token
// tables. Each call returns a fresh value.
func DarkConfiguration() ModeConfiguration {
	return ModeConfiguration{
		Mode:       ModeDark,
		Palette:    darkPalette(),
		Typography: baseTypography(),
		Shape:      Shape{BorderRadius: 6},
		Shadows:    buildShadows(DarkScheme().Border.Default),
		Components: darkComponents(),
	}
}
