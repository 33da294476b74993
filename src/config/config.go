package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".extkit.yml"

// Config is the top-level extkit configuration.
type Config struct {
	Host     HostConfig     `yaml:"host"`
	Units    UnitsConfig    `yaml:"units"`
	Fixtures FixturesConfig `yaml:"fixtures"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Host:     DefaultHostConfig(),
		Units:    DefaultUnitsConfig(),
		Fixtures: DefaultFixturesConfig(),
	}
}
