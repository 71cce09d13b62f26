package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "waste_tracker.yaml"

// Config holds runtime configuration for the tracker window.
// Fields may be loaded from a YAML file and overridden by command-line flags.
type Config struct {
	Debug bool `yaml:"debug"`

	// Persistence
	DataPath string `yaml:"data_path"`

	// Window
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	DarkMode bool `yaml:"dark_mode"`

	// Timing
	Tick           time.Duration `yaml:"tick"`
	FocusDebounce  time.Duration `yaml:"focus_debounce"`
	DistractedLock time.Duration `yaml:"distracted_lock"`
	WelcomeLock    time.Duration `yaml:"welcome_lock"`
	StatsInterval  time.Duration `yaml:"stats_interval"`

	// AutoPause pauses a running session when the window loses focus.
	AutoPause bool `yaml:"auto_pause"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		DataPath:       "waste_data.json",
		Width:          400,
		Height:         300,
		DarkMode:       true,
		Tick:           time.Second,
		FocusDebounce:  50 * time.Millisecond,
		DistractedLock: 8 * time.Second,
		WelcomeLock:    6 * time.Second,
		StatsInterval:  30 * time.Second,
		AutoPause:      true,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.DataPath == "" {
		c.DataPath = d.DataPath
	}
	if c.Width < 200 {
		c.Width = d.Width
	}
	if c.Height < 150 {
		c.Height = d.Height
	}
	if c.Tick < 100*time.Millisecond || c.Tick > 10*time.Second {
		c.Tick = d.Tick
	}
	if c.FocusDebounce <= 0 || c.FocusDebounce > time.Second {
		c.FocusDebounce = d.FocusDebounce
	}
	if c.DistractedLock < 0 {
		c.DistractedLock = d.DistractedLock
	}
	if c.WelcomeLock < 0 {
		c.WelcomeLock = d.WelcomeLock
	}
	if c.StatsInterval < time.Second {
		c.StatsInterval = d.StatsInterval
	}
	return nil
}

// Load attempts to read configuration from the given YAML file path. If the file does not
// exist it returns DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in YAML format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
