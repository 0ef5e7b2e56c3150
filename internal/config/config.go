// Package config loads runtime settings for the bhtsne command.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/born-ml/bhtsne/internal/parallel"
)

// Config holds all runtime settings.
type Config struct {
	Parallel Parallel `toml:"parallel"`
	Log      Log      `toml:"log"`
}

// Parallel controls the worker split of the parallel kernels.
type Parallel struct {
	Enabled      bool `toml:"enabled"`
	Workers      int  `toml:"workers"`
	MinChunkSize int  `toml:"min_chunk_size"`
}

// Log controls diagnostic output.
type Log struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// Default returns the built-in settings.
func Default() Config {
	p := parallel.DefaultConfig()
	return Config{
		Parallel: Parallel{
			Enabled:      p.Enabled,
			Workers:      p.NumWorkers,
			MinChunkSize: p.MinChunkSize,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and normalizes the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces non-positive sizes with defaults.
func (c *Config) normalize() {
	def := parallel.DefaultConfig()
	if c.Parallel.Workers <= 0 {
		c.Parallel.Workers = def.NumWorkers
	}
	if c.Parallel.MinChunkSize <= 0 {
		c.Parallel.MinChunkSize = def.MinChunkSize
	}
}

// ParallelConfig converts the settings to a parallel.Config.
func (c Config) ParallelConfig() parallel.Config {
	return parallel.Config{
		Enabled:      c.Parallel.Enabled,
		NumWorkers:   c.Parallel.Workers,
		MinChunkSize: c.Parallel.MinChunkSize,
	}
}

// SlogLevel parses the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Encode returns the settings as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
