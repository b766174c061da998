package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Seed:       42,
			Spawn4Prob: 0.10,
		},
		Files: FilesConfig{
			Input:  "game_input.csv",
			Output: "game_output.csv",
		},
		Storage: StorageConfig{
			DBPath:     "~/.t2048/scores.db",
			Sinks:      []string{"csv"},
			SaveScores: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
