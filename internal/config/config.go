// Package config loads the tool's TOML settings and watches the file for
// edits while the app runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sketch3d/internal/sketch"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is looked up in the working directory.
const DefaultFile = "sketch3d.toml"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	ExtrudeHeight    float32 `toml:"extrude_height"`
	VertexPrecision  int     `toml:"vertex_precision"`
	PointLift        float32 `toml:"point_lift"`
	GroundSize       float32 `toml:"ground_size"`
	MarkerSize       float32 `toml:"marker_size"`
	VertexMarkerSize float32 `toml:"vertex_marker_size"`
	LogLevel         string  `toml:"log_level"`
	WindowWidth      int32   `toml:"window_width"`
	WindowHeight     int32   `toml:"window_height"`
	TargetFPS        int32   `toml:"target_fps"`
}

func Default() Config {
	opts := sketch.DefaultOptions()
	return Config{
		ExtrudeHeight:    opts.ExtrudeHeight,
		VertexPrecision:  opts.Precision,
		PointLift:        opts.PointLift,
		GroundSize:       20,
		MarkerSize:       opts.MarkerSize,
		VertexMarkerSize: opts.VertexMarkerSize,
		LogLevel:         "info",
		WindowWidth:      1280,
		WindowHeight:     720,
		TargetFPS:        60,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.ExtrudeHeight <= 0:
		return fmt.Errorf("%w: extrude_height must be positive, got %g", ErrInvalid, c.ExtrudeHeight)
	case c.VertexPrecision < 0 || c.VertexPrecision > 6:
		return fmt.Errorf("%w: vertex_precision must be in [0, 6], got %d", ErrInvalid, c.VertexPrecision)
	case c.PointLift < 0:
		return fmt.Errorf("%w: point_lift must not be negative, got %g", ErrInvalid, c.PointLift)
	case c.GroundSize <= 0:
		return fmt.Errorf("%w: ground_size must be positive, got %g", ErrInvalid, c.GroundSize)
	case c.MarkerSize <= 0 || c.VertexMarkerSize <= 0:
		return fmt.Errorf("%w: marker sizes must be positive", ErrInvalid)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Options returns the sketch tunables carried by c.
func (c Config) Options() sketch.Options {
	return sketch.Options{
		ExtrudeHeight:    c.ExtrudeHeight,
		Precision:        c.VertexPrecision,
		PointLift:        c.PointLift,
		MarkerSize:       c.MarkerSize,
		VertexMarkerSize: c.VertexMarkerSize,
	}
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
