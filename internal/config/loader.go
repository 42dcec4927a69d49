package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the non-file configuration sources
// reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const configFileName = "wallbreaker.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.wallbreaker/configs/wallbreaker.yaml ->
// ./configs/wallbreaker.yaml -> embedded default -> built-in defaults.
//
// Files are decoded on top of the built-in defaults, so a file only needs
// the keys it changes. An unreadable or malformed customPath is an error;
// problems with the implicit locations fall through to the next source.
// The returned config is always validated.
func Load(customPath string) (GameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GameConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wallbreaker", "configs", filename)
}
