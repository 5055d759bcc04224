// Package config assembles the validated configuration the clock runs with:
// defaults, overridden by an optional yaml file, overridden by flags. The
// rest of the program trusts a Config that passed Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/bigtick/bigtick/internal/validate"
)

// DefaultPath is the config file location, tilde-expanded at load time.
const DefaultPath = "~/.config/bigtick/config.yaml"

const (
	defaultRefreshInterval = 250 * time.Millisecond
	minRefreshInterval     = 50 * time.Millisecond
	defaultHighlightFor    = 10 * time.Second
)

// Duration wraps time.Duration so yaml values can be written as "1m30s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string such as "1m30s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Theme holds the terminal color palette. Values are lipgloss color
// strings (ANSI index or hex).
type Theme struct {
	Digit     string `yaml:"digit"`
	Separator string `yaml:"separator"`
	Highlight string `yaml:"highlight"`
	Date      string `yaml:"date"`
}

// Config is the full runtime configuration.
type Config struct {
	Mode            string   `yaml:"mode"             validate:"omitempty,oneof=clock countdown stopwatch"`
	Target          Duration `yaml:"target"`
	RefreshInterval Duration `yaml:"refresh_interval"`
	HighlightFor    Duration `yaml:"alarm_highlight"`
	Sound           bool     `yaml:"sound"`
	Notify          bool     `yaml:"notify"`
	ShowDate        bool     `yaml:"show_date"`
	Theme           Theme    `yaml:"theme"`
}

// Default returns the configuration used when no file and no flags are set.
func Default() Config {
	return Config{
		Mode:            "clock",
		RefreshInterval: Duration(defaultRefreshInterval),
		HighlightFor:    Duration(defaultHighlightFor),
		Sound:           true,
		Notify:          true,
		ShowDate:        true,
		Theme: Theme{
			Digit:     "203",
			Separator: "69",
			Highlight: "220",
			Date:      "69",
		},
	}
}

// Load reads the yaml file at path over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}
	raw, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Debugf("no config file at %s, using defaults", expanded)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", expanded, err)
	}
	logrus.Debugf("loaded config from %s", expanded)
	return cfg, nil
}

// Validate checks the assembled configuration. The core trusts a Config
// that passed here.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.RefreshInterval.Std() < minRefreshInterval {
		return fmt.Errorf("config: refresh_interval %s below minimum %s", c.RefreshInterval.Std(), minRefreshInterval)
	}
	if c.HighlightFor.Std() < 0 {
		return fmt.Errorf("config: alarm_highlight must not be negative")
	}
	if c.Mode == "countdown" && c.Target.Std() <= 0 {
		return fmt.Errorf("config: countdown mode requires a positive target")
	}
	return nil
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
