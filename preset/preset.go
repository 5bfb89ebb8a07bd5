// Package preset loads named analog channels from a YAML channel map.
package preset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"analogtv/frontend"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a channel name is not in the map.
var ErrNotFound = errors.New("channel not found")

// Channel is one entry of the channel map. Signal and Sif hold enumerant names
// ("PAL", "BG_NICAM") or raw HAL integers.
type Channel struct {
	Name         string  `yaml:"name"`
	FrequencyMHz float64 `yaml:"frequency_mhz"`
	Signal       string  `yaml:"signal"`
	Sif          string  `yaml:"sif"`
}

// Map is a parsed channel map file.
type Map struct {
	Channels []Channel `yaml:"channels"`
}

// Load reads and parses the channel map at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channel map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a channel map and checks names are present and unique.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse channel map: %w", err)
	}
	seen := make(map[string]bool, len(m.Channels))
	for i, c := range m.Channels {
		key := strings.ToLower(c.Name)
		if key == "" {
			return nil, fmt.Errorf("channel %d has no name", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate channel %q", c.Name)
		}
		seen[key] = true
	}
	return &m, nil
}

// Find looks a channel up by case-insensitive name.
func (m *Map) Find(name string) (Channel, error) {
	for _, c := range m.Channels {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Channel{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Build acquires a builder from auth and builds the named channel's settings.
func (m *Map) Build(ctx context.Context, auth frontend.Authorizer, name string) (*frontend.AnalogSettings, error) {
	c, err := m.Find(name)
	if err != nil {
		return nil, err
	}
	b, err := frontend.NewAnalogBuilder(ctx, auth)
	if err != nil {
		return nil, err
	}
	return c.Apply(b)
}

// Apply stages the channel on b and builds it.
func (c Channel) Apply(b *frontend.AnalogBuilder) (*frontend.AnalogSettings, error) {
	signal, err := ParseSignal(c.Signal)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", c.Name, err)
	}
	standard, err := ParseSif(c.Sif)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", c.Name, err)
	}
	return b.SetFrequency(int(math.Round(c.FrequencyMHz * 1_000_000))).
		SetSignalType(signal).
		SetSifStandard(standard).
		Build(), nil
}

// ParseSignal accepts a signal type name or a raw integer. Empty is UNDEFINED.
func ParseSignal(s string) (frontend.SignalType, error) {
	if strings.TrimSpace(s) == "" {
		return frontend.SignalTypeUndefined, nil
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64); err == nil {
		return frontend.SignalType(n), nil
	}
	return frontend.ParseSignalType(s)
}

// ParseSif accepts a SIF standard name or a raw integer. Empty is UNDEFINED.
func ParseSif(s string) (frontend.SifStandard, error) {
	if strings.TrimSpace(s) == "" {
		return frontend.SifUndefined, nil
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64); err == nil {
		return frontend.SifStandard(n), nil
	}
	return frontend.ParseSifStandard(s)
}
