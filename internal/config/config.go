// Package config loads the configuration of the pathsample command.
package config

import (
	"fmt"

	"github.com/fieldkit/curve"
	"github.com/fieldkit/curve/internal/shapes"
)

// Config is the configuration file's content.
type Config struct {
	// Segments is the sample resolution of paths that don't set their own.
	Segments int `yaml:"segments" toml:"segments" validate:"gte=1"`
	// Accuracy is the accuracy of arc length measurements.
	Accuracy float64 `yaml:"accuracy" toml:"accuracy" validate:"gt=0"`
	// Tolerance is the accuracy of Bézier approximations of built-in shapes.
	Tolerance float64      `yaml:"tolerance" toml:"tolerance" validate:"gt=0"`
	Log       Log          `yaml:"log" toml:"log"`
	Paths     []PathConfig `yaml:"paths" toml:"paths" validate:"dive"`
}

type Log struct {
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human" toml:"human"`
}

// PathConfig names a path, given either as SVG path data or as the name of a
// built-in shape.
type PathConfig struct {
	Name  string `yaml:"name" toml:"name" validate:"required,path_name"`
	SVG   string `yaml:"svg" toml:"svg" validate:"omitempty,svgpath"`
	Shape string `yaml:"shape" toml:"shape" validate:"omitempty,shape"`
	// Segments overrides the sample resolution. 0 means the default.
	Segments int `yaml:"segments" toml:"segments" validate:"gte=0"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Segments:  curve.DefaultSegments,
		Accuracy:  curve.DefaultAccuracy,
		Tolerance: 0.1,
		Log:       Log{Level: "info"},
	}
}

// Path returns the path with the given name.
func (c *Config) Path(name string) (PathConfig, bool) {
	for _, p := range c.Paths {
		if p.Name == name {
			return p, true
		}
	}
	return PathConfig{}, false
}

// SegmentsFor returns the sample resolution for p.
func (c *Config) SegmentsFor(p PathConfig) int {
	if p.Segments > 0 {
		return p.Segments
	}
	return c.Segments
}

// Build returns the path p describes.
func (p PathConfig) Build(tolerance float64) (curve.BezPath, error) {
	if p.SVG != "" {
		path, err := curve.ParseSVG(p.SVG)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p.Name, err)
		}
		return path, nil
	}
	path, err := shapes.Path(p.Shape, tolerance)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", p.Name, err)
	}
	return path, nil
}
