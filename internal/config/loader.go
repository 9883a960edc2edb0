package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelPath is the config file location relative to the XDG config directories.
const RelPath = "arka/arka.yaml"

// LocalPath is the config file checked in the working directory.
const LocalPath = "configs/arka.yaml"

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/arka/arka.yaml -> ./configs/arka.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it changes.
// The result is validated.
func Load(customPath string) (ArkaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ArkaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath, err := xdg.SearchConfigFile(RelPath); err == nil {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (ArkaConfig, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArkaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ArkaConfig{}, err
	}
	return cfg, nil
}

// Embedded returns the configuration shipped inside the binary.
func Embedded() ArkaConfig {
	cfg := DefaultArkaConfig()
	if err := yaml.Unmarshal(defaultArkaYAML, &cfg); err != nil {
		return DefaultArkaConfig()
	}
	return cfg
}
