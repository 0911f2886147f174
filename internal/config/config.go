package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/center-window/internal/dialog"
)

const (
	DefaultConfigDir  = "center-window"
	DefaultConfigFile = "config.yaml"

	DefaultPollInterval = 50 * time.Millisecond
	DefaultCaption      = "center-window"
	DefaultLogLevel     = "info"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Settings: Settings{
			PollInterval: Duration(DefaultPollInterval),
			Dialog:       defaultDialog(),
			Caption:      DefaultCaption,
			Topmost:      true,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

func defaultDialog() string {
	if runtime.GOOS == "windows" {
		return dialog.KindMessageBox
	}
	return dialog.KindConsole
}

// configDir returns <user config dir>/center-window
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, DefaultConfigDir), nil
}

// LoadConfig loads configuration from the specified path or default location.
// With an empty path, config.yaml and then config.json are tried in the user
// config directory, and built-in defaults are used when neither exists. An
// explicit path must exist. Fields missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return Default(), nil
		}
		// Try YAML first, then JSON
		yamlPath := filepath.Join(dir, "config.yaml")
		jsonPath := filepath.Join(dir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := LoadConfigFromBytes(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(dir, DefaultConfigFile)
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
