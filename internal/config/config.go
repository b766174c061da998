// Package config provides YAML-based configuration loading for t2048,
// with .env and environment overrides.
package config

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/t2048/internal/core"
)

// Config contains all configuration for a t2048 session.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Files   FilesConfig   `yaml:"files"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the randomness of tile spawns.
type GameConfig struct {
	Seed       int64   `yaml:"seed"`        // 0 = seed from time
	Spawn4Prob float64 `yaml:"spawn4_prob"` // 0.0-1.0
}

// FilesConfig defines the CSV files read and written by a session.
type FilesConfig struct {
	Input  string `yaml:"input"`  // Initial board
	Output string `yaml:"output"` // Snapshot log
}

// StorageConfig defines where snapshots and scores go.
type StorageConfig struct {
	DBPath     string   `yaml:"db_path"`
	Sinks      []string `yaml:"sinks"` // Snapshot sinks: "csv", "sqlite"
	SaveScores bool     `yaml:"save_scores"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Runtime returns the game runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:       c.Game.Seed,
		Spawn4Prob: c.Game.Spawn4Prob,
	}
}

// HasSink reports whether the named snapshot sink is enabled.
func (c Config) HasSink(name string) bool {
	return slices.Contains(c.Storage.Sinks, name)
}

// Validate checks the config for values a session cannot run with.
func (c Config) Validate() error {
	if c.Game.Spawn4Prob < 0 || c.Game.Spawn4Prob > 1 {
		return fmt.Errorf("config: spawn4_prob %.2f out of range [0,1]", c.Game.Spawn4Prob)
	}
	if c.HasSink("csv") && c.Files.Output == "" {
		return fmt.Errorf("config: csv sink enabled without an output file")
	}
	if (c.HasSink("sqlite") || c.Storage.SaveScores) && c.Storage.DBPath == "" {
		return fmt.Errorf("config: sqlite storage enabled without db_path")
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
