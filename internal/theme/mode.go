// Package theme resolves the site's light and dark design-system configurations.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects one of the two visual variants.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ErrInvalidMode is matched by every InvalidModeError.
var ErrInvalidMode = errors.New("invalid theme mode")

// InvalidModeError reports a mode outside {light, dark}. It indicates a caller
// defect and is never retried.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid theme mode %q: want %q or %q", e.Mode, ModeLight, ModeDark)
}

// Is lets errors.Is(err, ErrInvalidMode) match.
func (e *InvalidModeError) Is(target error) bool {
	return target == ErrInvalidMode
}

// Modes lists the supported modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeDark, ModeLight}
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	return m == ModeDark || m == ModeLight
}

func (m Mode) String() string {
	return string(m)
}

// Opposite returns the other mode. Invalid modes map to dark.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseMode normalizes user input into a Mode.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if !mode.Valid() {
		return "", &InvalidModeError{Mode: value}
	}
	return mode, nil
}
