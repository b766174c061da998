package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override config fields.
const (
	EnvSeed       = "T2048_SEED"
	EnvSpawn4Prob = "T2048_SPAWN4_PROB"
	EnvInput      = "T2048_INPUT"
	EnvOutput     = "T2048_OUTPUT"
	EnvDBPath     = "T2048_DB"
	EnvSinks      = "T2048_SINKS"
	EnvLogLevel   = "T2048_LOG_LEVEL"
)

// Load loads the t2048 configuration, then applies .env and environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
func Load(customPath string) (Config, error) {
	return load(customPath, ".env")
}

func load(customPath, dotenvPath string) (Config, error) {
	cfg, err := loadYAML(customPath)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, dotenvPath); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadYAML decodes the first config file found on top of the defaults.
func loadYAML(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "t2048.yaml")} {
		if path == "" {
			continue
		}
		fileCfg, found, err := readYAML(path)
		if err != nil {
			return cfg, err
		}
		if found {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := Config{}
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// readYAML decodes the file at path over the defaults.
// A missing file reports found=false; unreadable or malformed files are errors.
func readYAML(path string) (cfg Config, found bool, err error) {
	cfg = DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// applyEnv overrides fields from the process environment, falling back to
// the .env file at dotenvPath. Process variables win over the file.
func applyEnv(cfg *Config, dotenvPath string) error {
	fileVars := map[string]string{}
	if dotenvPath != "" {
		vars, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("config: failed to read %s: %w", dotenvPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Game.Seed = seed
	}
	if v, ok := lookup(EnvSpawn4Prob); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvSpawn4Prob, v, err)
		}
		cfg.Game.Spawn4Prob = p
	}
	if v, ok := lookup(EnvInput); ok {
		cfg.Files.Input = v
	}
	if v, ok := lookup(EnvOutput); ok {
		cfg.Files.Output = v
	}
	if v, ok := lookup(EnvDBPath); ok {
		cfg.Storage.DBPath = v
	}
	if v, ok := lookup(EnvSinks); ok {
		cfg.Storage.Sinks = SplitList(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
