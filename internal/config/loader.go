package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHopper loads the hopper configuration.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default
func LoadHopper(customPath string) (HopperConfig, error) {
	var cfg HopperConfig

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
	if userCfgPath := userConfigPath("hopper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/hopper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHopperYAML, &cfg); err != nil {
		return DefaultHopperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}

// ApplyHopperPreset modifies the config based on a difficulty preset.
// Presets change the launch/gravity feel without touching the geometric
// constraints the generator relies on.
func ApplyHopperPreset(cfg *HopperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.85
		cfg.Launch.MaxChargeSeconds *= 1.1
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.15
		cfg.Platforms.MinWidthFrac *= 0.85
		cfg.Platforms.MaxWidthFrac *= 0.85
	case DifficultyNormal:
		// Defaults are normal
	}
}
