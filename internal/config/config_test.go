package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/center-window/internal/dialog"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Settings.PollInterval.Std() != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.Settings.PollInterval, DefaultPollInterval)
	}
	if !cfg.Settings.Topmost {
		t.Error("Topmost = false, want true")
	}
}

func TestLoadConfigFromBytes_YAML(t *testing.T) {
	data := []byte(`
settings:
  pollInterval: 20ms
  dialog: console
  caption: Center it
  dryRun: true
logging:
  level: debug
  file: /tmp/cw.log
`)

	cfg, err := LoadConfigFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error = %v", err)
	}
	if cfg.Settings.PollInterval.Std() != 20*time.Millisecond {
		t.Errorf("PollInterval = %v, want 20ms", cfg.Settings.PollInterval)
	}
	if cfg.Settings.Dialog != dialog.KindConsole {
		t.Errorf("Dialog = %q, want console", cfg.Settings.Dialog)
	}
	if cfg.Settings.Caption != "Center it" {
		t.Errorf("Caption = %q", cfg.Settings.Caption)
	}
	if !cfg.Settings.DryRun {
		t.Error("DryRun = false, want true")
	}
	if !cfg.Settings.Topmost {
		t.Error("Topmost lost its default")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/cw.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadConfigFromBytes_JSON(t *testing.T) {
	data := []byte(`{"settings": {"pollInterval": "100ms", "topmost": false}}`)

	cfg, err := LoadConfigFromBytes(data, "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error = %v", err)
	}
	if cfg.Settings.PollInterval.Std() != 100*time.Millisecond {
		t.Errorf("PollInterval = %v, want 100ms", cfg.Settings.PollInterval)
	}
	if cfg.Settings.Topmost {
		t.Error("Topmost = true, want false")
	}
	if cfg.Settings.Caption != DefaultCaption {
		t.Errorf("Caption = %q, want default", cfg.Settings.Caption)
	}
}

func TestLoadConfigFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		wantErr string
	}{
		{"bad duration", "settings:\n  pollInterval: soon\n", "yaml", "invalid duration"},
		{"numeric json duration", `{"settings": {"pollInterval": 50}}`, "json", "duration must be a string"},
		{"interval too short", "settings:\n  pollInterval: 1ms\n", "yaml", "out of range"},
		{"interval too long", "settings:\n  pollInterval: 2s\n", "yaml", "out of range"},
		{"unknown dialog", "settings:\n  dialog: zenity\n", "yaml", "invalid dialog"},
		{"empty caption", "settings:\n  caption: \"\"\n", "yaml", "caption"},
		{"bad level", "logging:\n  level: loud\n", "yaml", "invalid level"},
		{"unsupported format", "a = 1", "toml", "unsupported config format"},
		{"malformed yaml", "settings: [", "yaml", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromBytes([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatalf("LoadConfigFromBytes() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "center.yml")
	if err := os.WriteFile(path, []byte("settings:\n  dialog: console\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Settings.Dialog != dialog.KindConsole {
		t.Errorf("Dialog = %q, want console", cfg.Settings.Dialog)
	}
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing explicit path")
	}
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	// os.UserConfigDir reads XDG_CONFIG_HOME on Linux and HOME on macOS.
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() with no file error = %v", err)
	}
	if cfg.Settings.Caption != DefaultCaption {
		t.Errorf("Caption = %q, want default", cfg.Settings.Caption)
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	target := filepath.Join(cfgDir, DefaultConfigDir)
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "config.json"), []byte(`{"settings": {"caption": "from json"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Settings.Caption != "from json" {
		t.Errorf("Caption = %q, want from json", cfg.Settings.Caption)
	}
	if got := GetConfigPath(); got != filepath.Join(target, DefaultConfigFile) {
		t.Errorf("GetConfigPath() = %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Settings.PollInterval = Duration(75 * time.Millisecond)

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "pollInterval: 75ms") {
		t.Errorf("Marshal() = %s", data)
	}

	back, err := LoadConfigFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error = %v", err)
	}
	if back.Settings != cfg.Settings {
		t.Errorf("round trip = %+v, want %+v", back.Settings, cfg.Settings)
	}
}
