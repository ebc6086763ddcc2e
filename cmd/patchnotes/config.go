package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/fwojciec/patchnotes"
)

// AppName names the XDG config and data subdirectories.
const AppName = "patchnotes"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config is the optional YAML configuration file.
type Config struct {
	Root      string        `yaml:"root"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Browser   bool          `yaml:"browser"`
	Retries   int           `yaml:"retries"`
	Rate      float64       `yaml:"rate"`
	DB        string        `yaml:"db"`
}

// LoadConfig reads a YAML config file.
// Returns ErrConfigNotFound if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, patchnotes.Errorf(patchnotes.EINVALID, "invalid config %s: %v", path, err)
	}
	return &cfg, nil
}

// DefaultConfigPath returns the config file path under the XDG config home.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultDBPath returns the history database path under the XDG data home,
// creating its directory.
func DefaultDBPath() string {
	path, err := xdg.DataFile(filepath.Join(AppName, "history.db"))
	if err != nil {
		return "patchnotes.db"
	}
	return path
}

// Settings are the effective options after merging flags, config and defaults.
type Settings struct {
	Root      string
	Timeout   time.Duration
	UserAgent string
	Browser   bool
	Retries   int
	Rate      float64
	DB        string
}

// Resolve merges cli flags over cfg over built-in defaults. cfg may be nil.
func Resolve(cli *CLI, cfg *Config, defaultDB string) Settings {
	if cfg == nil {
		cfg = &Config{}
	}
	return Settings{
		Root:      first(cli.Root, cfg.Root, patchnotes.DefaultRootURL),
		Timeout:   first(cli.Timeout, cfg.Timeout, patchnotes.DefaultTimeout),
		UserAgent: first(cli.UserAgent, cfg.UserAgent, patchnotes.DefaultUserAgent),
		Browser:   cli.Browser || cfg.Browser,
		Retries:   first(cli.Retries, cfg.Retries),
		Rate:      first(cli.Rate, cfg.Rate),
		DB:        first(cli.DB, cfg.DB, defaultDB),
	}
}

// first returns the first non-zero value.
func first[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
