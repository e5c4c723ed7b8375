// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "100ms" or "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(v)
	return nil
}

// Config represents the root configuration file structure.
type Config struct {
	// Projection names the target planar reference system.
	Projection string    `yaml:"projection"`
	HeightAPI  HeightAPI `yaml:"height_api"`
}

// HeightAPI configures the external elevation lookup service.
type HeightAPI struct {
	URL      string   `yaml:"url"`
	SR       int      `yaml:"sr"` // spatial reference id passed to the service
	Timeout  Duration `yaml:"timeout"`
	Interval Duration `yaml:"interval"` // minimum spacing between lookup calls
}

// Default returns the built-in configuration: LV95 output and the
// swisstopo height service.
func Default() *Config {
	return &Config{
		Projection: "lv95",
		HeightAPI: HeightAPI{
			URL:      "https://api3.geo.admin.ch/rest/services/height",
			SR:       2056,
			Timeout:  Duration(10 * time.Second),
			Interval: Duration(100 * time.Millisecond),
		},
	}
}

// Load reads and parses the YAML configuration file from the specified
// path. An empty path yields the defaults; fields absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.HeightAPI.Timeout <= 0 {
		cfg.HeightAPI.Timeout = Default().HeightAPI.Timeout
	}
	if cfg.HeightAPI.Interval <= 0 {
		cfg.HeightAPI.Interval = Default().HeightAPI.Interval
	}

	return cfg, nil
}
