// Package config loads composer settings and the seed composition from a
// YAML or TOML file. Files are only ever read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/composer/internal/dto"
	"github.com/aretw0/composer/pkg/domain"
	"github.com/aretw0/composer/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load reads the settings file at path. The format follows the extension.
func Load(path string) (*dto.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes settings from raw bytes. ext is ".yaml", ".yml" or ".toml".
func Parse(data []byte, ext string) (*dto.Settings, error) {
	raw := make(map[string]any)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	var settings dto.Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &settings,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &settings, nil
}

// BuildComposition turns a seed into a composition.
// A nil seed yields nil without error.
func BuildComposition(seed *dto.CompositionSeed) (*domain.Composition, error) {
	if seed == nil {
		return nil, nil
	}

	b := dsl.New(seed.Name)
	for _, sc := range seed.Components {
		cb := b.Component(sc.Name, sc.Type)
		for _, p := range sc.Ports {
			cb.Port(p.Name, domain.Direction(p.Direction))
		}
		for _, r := range sc.Runnables {
			cb.Runnable(r.Name, r.Trigger, r.Period)
		}
	}
	return b.Build()
}

// Demo returns the sample composition the console starts with in demo mode:
// three empty components in "Compo21".
func Demo() *domain.Composition {
	k, err := dsl.New("Compo21").
		Component("swc1", "application").
		Component("swc2", "application").
		Component("swc3", "Sensor").
		Build()
	if err != nil {
		panic(err) // static data
	}
	return k
}
