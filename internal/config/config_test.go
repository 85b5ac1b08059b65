package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
wrk_dir: "/srv/photos"
max_size: 1024
quality: 85
test_mode: true
prefer_magick: true
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.WorkDir != "/srv/photos" {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, "/srv/photos")
	}
	if cfg.MaxSize != 1024 {
		t.Errorf("MaxSize = %d, want 1024", cfg.MaxSize)
	}
	if cfg.Quality != 85 {
		t.Errorf("Quality = %d, want 85", cfg.Quality)
	}
	if !cfg.TestMode {
		t.Error("TestMode = false, want true")
	}
	if !cfg.PreferMagick {
		t.Error("PreferMagick = false, want true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("Load of missing file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("max_size: 800\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.MaxSize != 800 {
		t.Errorf("MaxSize = %d, want 800", cfg.MaxSize)
	}
	// Unset keys keep their defaults.
	if cfg.WorkDir != "/tmp" {
		t.Errorf("WorkDir = %q, want default /tmp", cfg.WorkDir)
	}
	if cfg.Quality != 97 {
		t.Errorf("Quality = %d, want default 97", cfg.Quality)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("max_size: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configFile); err == nil {
		t.Error("Load of invalid YAML returned nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero max size", func(c *Config) { c.MaxSize = 0 }, true},
		{"negative max size", func(c *Config) { c.MaxSize = -5 }, true},
		{"quality too low", func(c *Config) { c.Quality = 0 }, true},
		{"quality too high", func(c *Config) { c.Quality = 101 }, true},
		{"empty work dir", func(c *Config) { c.WorkDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
