package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// componentWire is the serialized shape of a Component: styleOverrides is
// either a slot object or a CSS string.
type componentWire struct {
	DefaultProps   map[string]any `json:"defaultProps,omitempty" yaml:"defaultProps,omitempty"`
	StyleOverrides any            `json:"styleOverrides,omitempty" yaml:"styleOverrides,omitempty"`
}

func (c Component) wire() componentWire {
	w := componentWire{DefaultProps: c.DefaultProps}
	switch {
	case c.CSS != "":
		w.StyleOverrides = c.CSS
	case c.StyleOverrides != nil:
		w.StyleOverrides = map[string]any(c.StyleOverrides)
	}
	return w
}

func (c *Component) fromWire(w componentWire) error {
	*c = Component{}
	if w.DefaultProps != nil {
		c.DefaultProps = normalizeRecord(w.DefaultProps)
	}
	switch v := w.StyleOverrides.(type) {
	case nil:
	case string:
		c.CSS = v
	case map[string]any:
		c.StyleOverrides = normalizeRecord(v)
	default:
		return fmt.Errorf("styleOverrides: want object or string, got %T", v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// UnmarshalJSON implements json.Unmarshaler. Integral numbers decode as int
// and nested objects as StyleRecord, so a decoded table compares equal to
// the one that was encoded.
func (c *Component) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var w componentWire
	if err := decoder.Decode(&w); err != nil {
		return err
	}
	return c.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler.
func (c Component) MarshalYAML() (any, error) {
	return c.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Component) UnmarshalYAML(node *yaml.Node) error {
	var w componentWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return c.fromWire(w)
}

func normalizeRecord(in map[string]any) StyleRecord {
	out := make(StyleRecord, len(in))
	for key, value := range in {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeRecord(v)
	case StyleRecord:
		return normalizeRecord(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return f
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int(v)
		}
		return v
	default:
		return v
	}
}
