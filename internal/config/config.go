// Package config loads the optional marker and cache settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"climb-routes/internal/render"
	"climb-routes/pkg/colorutil"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfig is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedConfig = errors.New("unsupported config format")

// Config holds settings shared by the commands.
type Config struct {
	Renderer string `toml:"renderer" yaml:"renderer"`
	Cache    string `toml:"cache" yaml:"cache"`
	Marker   Marker `toml:"marker" yaml:"marker"`
}

// Marker configures the hold ring.
type Marker struct {
	Radius      int    `toml:"radius" yaml:"radius"`
	StrokeWidth int    `toml:"stroke_width" yaml:"stroke_width"`
	Color       string `toml:"color" yaml:"color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Renderer: render.DefaultRenderer,
		Marker: Marker{
			Radius:      render.DefaultRadius,
			StrokeWidth: render.DefaultStrokeWidth,
			Color:       colorutil.Hex(colorutil.Red),
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values. The format follows the extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}

	if _, err := cfg.Style(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Style converts the marker settings into a validated render.Style.
func (c Config) Style() (render.Style, error) {
	col, err := colorutil.Parse(c.Marker.Color)
	if err != nil {
		return render.Style{}, err
	}
	s := render.Style{
		Radius:      c.Marker.Radius,
		StrokeWidth: c.Marker.StrokeWidth,
		Color:       col,
	}
	if err := s.Validate(); err != nil {
		return render.Style{}, err
	}
	return s, nil
}

// NewRenderer returns the configured marker backend.
func (c Config) NewRenderer() (render.Renderer, error) {
	return render.New(c.Renderer)
}
