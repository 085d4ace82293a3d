package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when the embedded defaults were used.
const SourceEmbedded = "embedded"

// Load loads the Fight Kokaton configuration and reports where it came from.
// Search order: customPath -> ~/.kokaton/configs/kokaton.yaml -> ./configs/kokaton.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; broken
// files further down the search order are skipped.
func Load(customPath string) (KokatonConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("kokaton.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "kokaton.yaml")
	if cfg, err := LoadFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg, err := Parse(defaultKokatonYAML)
	if err != nil {
		return DefaultKokatonConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads, parses and validates a configuration file.
func LoadFile(path string) (KokatonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KokatonConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so partial files only override
// the keys they set, and validates the result.
func Parse(data []byte) (KokatonConfig, error) {
	cfg := DefaultKokatonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kokaton", "configs", filename)
}
