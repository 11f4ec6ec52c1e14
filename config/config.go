package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all mapper configuration
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
}

// GridConfig holds hex layout settings
type GridConfig struct {
	HexSize float64 `yaml:"hex_size"` // corner radius in world units
}

// TerrainConfig holds boundary-walk settings
type TerrainConfig struct {
	RadiusWeight float64       `yaml:"radius_weight"`
	Bounds       *BoundsConfig `yaml:"bounds"`
}

// BoundsConfig holds the optional axis-aligned segment filter
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Grid.HexSize == 0 {
		cfg.Grid.HexSize = 1.0
	}
	if cfg.Terrain.RadiusWeight == 0 {
		cfg.Terrain.RadiusWeight = 1.0
	}

	return &cfg, nil
}
