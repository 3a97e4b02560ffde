package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the configuration source when no file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default.
// It returns the configuration together with the path it came from.
// A file that exists but cannot be parsed or fails validation is an error.
func Load() (DragonConfig, string, error) {
	candidates := []string{"configs/dragon.yaml"}
	if userCfgPath := userConfigPath("dragon.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		return cfg, path, err
	}

	cfg, err := Parse(defaultDragonYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken
		return DefaultDragonConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (DragonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DragonConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DragonConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults, so partial files only
// override the keys they name, then validates the result.
func Parse(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DragonConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DragonConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "configs", filename)
}
