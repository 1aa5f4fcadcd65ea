// Package config loads the advent CLI configuration from TOML.
//
// A config file is optional. When present it may set any subset of:
//
//	input_dir     = "data"
//	input_pattern = "%d.txt"
//	cache         = true
//	cache_ttl     = "720h"
//	format        = "text"
//
// Unknown keys are rejected so that typos surface instead of being ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	aerrors "github.com/matzehuels/advent/pkg/errors"
)

// Output formats accepted by Format.
var Formats = []string{"text", "json", "yaml"}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "720h" or "90m".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds user settings.
type Config struct {
	// InputDir is where puzzle inputs live.
	InputDir string `toml:"input_dir"`
	// InputPattern is a fmt pattern taking the day number, e.g. "%d.txt".
	InputPattern string `toml:"input_pattern"`
	// Cache enables the answer cache.
	Cache bool `toml:"cache"`
	// CacheTTL bounds how long answers are cached.
	CacheTTL Duration `toml:"cache_ttl"`
	// Format is the default output format.
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputDir:     "data",
		InputPattern: "%d.txt",
		Cache:        true,
		CacheTTL:     Duration{720 * time.Hour},
		Format:       "text",
	}
}

// InputPath returns the input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return aerrors.New(aerrors.ErrCodeInvalidConfig, "input_dir cannot be empty")
	}
	if strings.Count(c.InputPattern, "%d") != 1 || strings.Count(c.InputPattern, "%") != 1 {
		return aerrors.New(aerrors.ErrCodeInvalidConfig, "input_pattern %q must contain exactly one %%d", c.InputPattern)
	}
	if c.CacheTTL.Duration < 0 {
		return aerrors.New(aerrors.ErrCodeInvalidConfig, "cache_ttl cannot be negative")
	}
	if !slices.Contains(Formats, c.Format) {
		return aerrors.New(aerrors.ErrCodeInvalidConfig, "format %q must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// Parse decodes TOML over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, aerrors.Wrap(aerrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, aerrors.New(aerrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path falls back to
// DefaultPath, and a missing default file yields Default. An explicitly
// named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return Config{}, aerrors.Wrap(aerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, aerrors.Wrap(aerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/advent/config.toml, falling back to
// ~/.config/advent/config.toml. It returns "" when neither can be resolved.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "advent", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "advent", "config.toml")
}

// CacheDir returns $XDG_CACHE_HOME/advent, falling back to the OS user cache
// directory.
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "advent"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "advent"), nil
}
