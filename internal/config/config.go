package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config file is given on the
// command line.
const DefaultPath = "etc/config.yaml"

// Config holds the scalar settings the conversion core runs with.
type Config struct {
	WorkDir      string `yaml:"wrk_dir"`
	MaxSize      int    `yaml:"max_size"`
	Quality      int    `yaml:"quality"`
	TestMode     bool   `yaml:"test_mode"`
	PreferMagick bool   `yaml:"prefer_magick"`
}

// Default returns the built-in configuration used when no file or flag
// says otherwise.
func Default() Config {
	return Config{
		WorkDir: "/tmp",
		MaxSize: 1920,
		Quality: 97,
	}
}

// Load reads the YAML config at path on top of the defaults. A missing
// file is not an error: defaults are returned unchanged. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the value ranges the converters rely on.
func (c Config) Validate() error {
	if c.WorkDir == "" {
		return fmt.Errorf("work directory must not be empty")
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive, got %d", c.MaxSize)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	return nil
}
