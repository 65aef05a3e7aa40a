package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config dirs.
const configFile = "2048.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.twenty48/configs/2048.yaml -> ./configs/2048.yaml -> embedded default.
// Files are applied over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data, base)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, base); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// parse applies YAML data over base and validates the result.
func parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func embeddedDefault() Config {
	cfg, err := parse(defaultYAML, Default())
	if err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".twenty48", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}
