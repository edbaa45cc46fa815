package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded file.
const (
	EnvDB       = "GAMEMAKER_DB"
	EnvLibrary  = "GAMEMAKER_LIBRARY"
	EnvSeed     = "GAMEMAKER_SEED"
	EnvLogLevel = "GAMEMAKER_LOG_LEVEL"
)

// LoadEngine loads the engine configuration. Keys missing from the file keep
// their default values.
// Search order: customPath -> ~/.gamemaker/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func LoadEngine(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("engine.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "engine.yaml")); err == nil {
		if parsed, ok := parse(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(defaultEngineYAML); ok {
		return parsed, nil
	}
	return DefaultEngineConfig(), nil // Fallback to hardcoded if embed fails
}

func parse(data []byte) (EngineConfig, bool) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamemaker", "configs", filename)
}

// ApplyEnv overrides cfg with the GAMEMAKER_* variables that getenv returns.
// Pass os.Getenv in production.
func ApplyEnv(cfg *EngineConfig, getenv func(string) string) error {
	if v := getenv(EnvDB); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := getenv(EnvLibrary); v != "" {
		cfg.Library.Root = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: bad %s %q: %w", EnvSeed, v, err)
		}
		cfg.Engine.Seed = seed
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
