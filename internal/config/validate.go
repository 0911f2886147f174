package config

import (
	"fmt"
	"time"

	"github.com/yourusername/center-window/internal/dialog"
)

const (
	MinPollInterval = 5 * time.Millisecond
	MaxPollInterval = time.Second
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := validateLogging(&c.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func validateSettings(s *Settings) error {
	if d := s.PollInterval.Std(); d < MinPollInterval || d > MaxPollInterval {
		return fmt.Errorf("pollInterval %s out of range [%s, %s]", d, MinPollInterval, MaxPollInterval)
	}

	switch s.Dialog {
	case dialog.KindMessageBox, dialog.KindConsole:
	default:
		return fmt.Errorf("invalid dialog: %q (want %q or %q)", s.Dialog, dialog.KindMessageBox, dialog.KindConsole)
	}

	if s.Caption == "" {
		return fmt.Errorf("caption must not be empty")
	}

	return nil
}

func validateLogging(l *LoggingConfig) error {
	if !validLogLevels[l.Level] {
		return fmt.Errorf("invalid level: %q", l.Level)
	}
	return nil
}
