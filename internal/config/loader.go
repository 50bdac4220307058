package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension.
// Anything that is not .toml is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the game configuration.
// Search order: customPath -> ~/.paints/paints.yaml -> ./configs/paints.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are
// skipped when missing or broken. The result is always validated.
func Load(customPath string) (PaintsConfig, error) {
	cfg, err := find(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func find(customPath string) (PaintsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PaintsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatFromPath(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("paints.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Decode(data, FormatYAML); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "paints.yaml")); err == nil {
		if cfg, err := Decode(data, FormatYAML); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultPaintsYAML, FormatYAML)
	if err != nil {
		return DefaultPaintsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data in the given format on top of the built-in defaults,
// so a file only needs to mention the fields it changes. Nozzle lists are
// replaced as a whole.
func Decode(data []byte, format Format) (PaintsConfig, error) {
	cfg := DefaultPaintsConfig()
	cfg.Nozzles.List = nil

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}

	if cfg.Nozzles.List == nil {
		cfg.Nozzles.List = DefaultPaintsConfig().Nozzles.List
	}
	return cfg, nil
}

// Encode serializes cfg in the given format.
func Encode(cfg PaintsConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: toml encode: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: yaml encode: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paints", filename)
}
