package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "leopard.yaml"

// Load loads the Ninja Leopard configuration.
// Search order: customPath -> ~/.leopard/configs/leopard.yaml ->
// ./configs/leopard.yaml -> embedded default.
// Files are merged over the defaults, so a file may set only a few keys.
// The result is validated; an invalid file is a configuration error.
func Load(customPath string) (LeopardConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (LeopardConfig, error) {
	cfg := DefaultLeopardConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFileName), localConfigPath()} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			candidate := DefaultLeopardConfig()
			if err := decode(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Use embedded default YAML
	if err := decode(defaultLeopardYAML, &cfg); err != nil {
		return DefaultLeopardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML over cfg. A spawns list in the file replaces the
// default list rather than being merged element-wise.
func decode(data []byte, cfg *LeopardConfig) error {
	var probe struct {
		Spawns *[]SpawnPoint `yaml:"spawns"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Spawns != nil {
		cfg.Spawns = nil
	}
	return yaml.Unmarshal(data, cfg)
}

// ResolvePath returns the file Load would read for customPath, or "" when
// only the embedded default would be used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(configFileName), localConfigPath()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leopard", "configs", filename)
}

func localConfigPath() string {
	return filepath.Join("configs", configFileName)
}
