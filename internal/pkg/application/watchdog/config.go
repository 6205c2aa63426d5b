package watchdog

import (
	"fmt"
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultInterval   = 15 * time.Minute
	DefaultStaleAfter = 24 * time.Hour
	DefaultWorkspace  = "default"
)

type Config struct {
	Enabled    bool
	Interval   time.Duration
	StaleAfter time.Duration
	Workspace  string
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Interval:   DefaultInterval,
		StaleAfter: DefaultStaleAfter,
		Workspace:  DefaultWorkspace,
	}
}

type configFile struct {
	Watchdog struct {
		Enabled    *bool  `yaml:"enabled"`
		Interval   string `yaml:"interval"`
		StaleAfter string `yaml:"staleAfter"`
		Workspace  string `yaml:"workspace"`
	} `yaml:"watchdog"`
}

// LoadConfiguration reads the watchdog section from the application config
// file. Missing keys keep their defaults.
func LoadConfiguration(data io.Reader) (Config, error) {
	cfg := DefaultConfig()

	buf, err := io.ReadAll(data)
	if err != nil {
		return cfg, err
	}

	file := configFile{}
	err = yaml.Unmarshal(buf, &file)
	if err != nil {
		return cfg, err
	}

	if file.Watchdog.Enabled != nil {
		cfg.Enabled = *file.Watchdog.Enabled
	}
	if file.Watchdog.Interval != "" {
		cfg.Interval, err = time.ParseDuration(file.Watchdog.Interval)
		if err != nil {
			return cfg, fmt.Errorf("invalid watchdog interval: %w", err)
		}
	}
	if file.Watchdog.StaleAfter != "" {
		cfg.StaleAfter, err = time.ParseDuration(file.Watchdog.StaleAfter)
		if err != nil {
			return cfg, fmt.Errorf("invalid watchdog staleAfter: %w", err)
		}
	}
	if file.Watchdog.Workspace != "" {
		cfg.Workspace = file.Watchdog.Workspace
	}

	return cfg, nil
}
