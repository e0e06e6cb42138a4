// Package config loads gamekit definitions — physical attributes,
// sprite sheet layouts with named clips, and timer schedules — from
// JSON or YAML files, selected by extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-gamekit/pkg/animation"
	"github.com/opd-ai/go-gamekit/pkg/physics"
)

// Config is the root of a gamekit definition file.
type Config struct {
	Physics    PhysicsConfig     `json:"physics" yaml:"physics"`
	Animations []AnimationConfig `json:"animations" yaml:"animations"`
	Timers     []TimerConfig     `json:"timers" yaml:"timers"`
}

// PhysicsConfig contains the physical attributes applied to bodies.
type PhysicsConfig struct {
	MaxVelocity float64 `json:"maxVelocity" yaml:"max_velocity"`
	Mass        float64 `json:"mass" yaml:"mass"`
	Radius      float64 `json:"radius" yaml:"radius"`
}

// AnimationConfig describes one sprite sheet and its named clips.
type AnimationConfig struct {
	Name        string       `json:"name" yaml:"name"`
	SheetWidth  int          `json:"sheetWidth" yaml:"sheet_width"`
	SheetHeight int          `json:"sheetHeight" yaml:"sheet_height"`
	TileWidth   int          `json:"tileWidth" yaml:"tile_width"`
	TileHeight  int          `json:"tileHeight" yaml:"tile_height"`
	FPS         float64      `json:"fps" yaml:"fps"`
	Clips       []ClipConfig `json:"clips" yaml:"clips"`
}

// ClipConfig is a named frame range within a sheet.
type ClipConfig struct {
	Name  string `json:"name" yaml:"name"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// TimerConfig describes a scheduled timer trigger.
type TimerConfig struct {
	Name      string  `json:"name" yaml:"name"`
	Delay     float64 `json:"delay" yaml:"delay"`
	Recurring bool    `json:"recurring" yaml:"recurring"`
}

// Load reads a configuration from a .json, .yaml or .yml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return &config, nil
}

// Save writes a configuration to a file, in the format matching its
// extension.
func Save(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Default returns a configuration with the package default physics and
// no animations or timers.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			MaxVelocity: physics.DefaultMaxVelocity,
			Mass:        physics.DefaultMass,
			Radius:      physics.DefaultRadius,
		},
	}
}

// Attributes converts the physics section into physics.Attributes.
func (c *Config) Attributes() physics.Attributes {
	return physics.Attributes{
		MaxVelocity: c.Physics.MaxVelocity,
		Mass:        c.Physics.Mass,
		Radius:      c.Physics.Radius,
	}
}

// AnimationSet builds the named animation set, including its clips.
func (c *Config) AnimationSet(name string) (*animation.Set, error) {
	for _, ac := range c.Animations {
		if ac.Name != name {
			continue
		}
		grid, err := animation.NewTileGrid(ac.SheetWidth, ac.SheetHeight, ac.TileWidth, ac.TileHeight)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		set := animation.NewSet(grid)
		for _, clip := range ac.Clips {
			if err := set.Add(clip.Name, clip.Start, clip.End); err != nil {
				return nil, fmt.Errorf("animation %q: %w", name, err)
			}
		}
		return set, nil
	}
	return nil, fmt.Errorf("animation %q not defined", name)
}
