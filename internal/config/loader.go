package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the session configuration.
// Search order: customPath -> ~/.levelrun/session.yaml -> ./configs/session.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Files
// found on the search path are skipped when they are broken.
func Load(customPath string) (SessionConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("session.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "session.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSessionYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSessionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a session configuration from YAML. Fields missing from data
// keep their zero value.
func Parse(data []byte) (SessionConfig, error) {
	var cfg SessionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg back to YAML.
func Marshal(cfg SessionConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadFile(path string) (SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SessionConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".levelrun", filename)
}
