package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Settings Settings      `yaml:"settings" json:"settings"`
	Logging  LoggingConfig `yaml:"logging" json:"logging"`
}

// Settings controls the centering loop
type Settings struct {
	PollInterval Duration `yaml:"pollInterval" json:"pollInterval"` // Button sampling interval, e.g. "50ms"
	Dialog       string   `yaml:"dialog" json:"dialog"`             // "messagebox" or "console"
	Caption      string   `yaml:"caption" json:"caption"`           // Message box caption
	Topmost      bool     `yaml:"topmost" json:"topmost"`           // Keep the click prompt above other windows
	DryRun       bool     `yaml:"dryRun,omitempty" json:"dryRun,omitempty"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	File  string `yaml:"file,omitempty" json:"file,omitempty"` // Defaults to the user cache dir
	Level string `yaml:"level" json:"level"`                   // debug, info, warn or error
}

// Duration is a time.Duration written as a Go duration string in config files.
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func parseDuration(s string) (Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return Duration(v), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := parseDuration(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"50ms\": %w", err)
	}
	v, err := parseDuration(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
