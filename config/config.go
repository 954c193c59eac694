// Package config loads the demo settings shared by the originshift commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/origin-shift/maze"
)

const (
	DefaultRows          = 12
	DefaultColumns       = 24
	DefaultFPS           = 30
	DefaultStepsPerFrame = 4
	MaxFPS               = 240
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds maze and animation settings
// Seed 0 means a time-based seed; Iterations below 0 means the maze default heuristic
type Config struct {
	Rows       int    `yaml:"rows"`
	Columns    int    `yaml:"columns"`
	Seed       uint64 `yaml:"seed"`
	Iterations int    `yaml:"iterations"`

	Arrows bool `yaml:"arrows"`

	Animation Animation `yaml:"animation"`
}

// Animation holds settings for the terminal animator
type Animation struct {
	FPS           int  `yaml:"fps"`
	StepsPerFrame int  `yaml:"steps_per_frame"`
	Sound         bool `yaml:"sound"`
	// Start from the seed tree instead of a mixed maze
	FromSeed bool `yaml:"from_seed"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Rows:       DefaultRows,
		Columns:    DefaultColumns,
		Iterations: maze.DefaultIterations,
		Animation: Animation{
			FPS:           DefaultFPS,
			StepsPerFrame: DefaultStepsPerFrame,
		},
	}
}

// Load reads and validates a YAML file, see Read
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Read decodes a YAML file over the defaults without validating it
// Keys absent from the file keep their default; callers layering overrides validate afterwards
func Read(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.Rows < maze.MinDimension || c.Columns < maze.MinDimension {
		return fmt.Errorf("%w: maze must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, maze.MinDimension, maze.MinDimension, c.Rows, c.Columns)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside 1..%d", ErrInvalidConfig, c.Animation.FPS, MaxFPS)
	}
	if c.Animation.StepsPerFrame < 0 {
		return fmt.Errorf("%w: negative steps_per_frame %d", ErrInvalidConfig, c.Animation.StepsPerFrame)
	}
	return nil
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// FrameInterval is the delay between animation frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FPS)
}
