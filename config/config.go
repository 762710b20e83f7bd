// Package config loads the mipaco command configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/mipaco/ebnf"
	"github.com/dhamidi/mipaco/format"
)

// EnvVar names the environment variable consulted for a configuration path.
const EnvVar = "MIPACO_CONFIG"

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "mipaco.toml"

var ErrInvalid = errors.New("invalid configuration")

// Config holds the complete configuration.
type Config struct {
	Parse ParseConfig `toml:"parse"`
	Log   LogConfig   `toml:"log"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `toml:"-"`
}

// ParseConfig holds defaults for the parse command.
type ParseConfig struct {
	Start      string `toml:"start"`
	Mode       string `toml:"mode"`
	Full       *bool  `toml:"full"`
	MaxResults int    `toml:"max_results"`
	Format     string `toml:"format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. A missing file is an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Source = path
	cfg.applyDefaults()
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads the configuration from path if it is set, else from $MIPACO_CONFIG,
// else from ./mipaco.toml if it exists, and otherwise returns the defaults.
func Discover(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Parse.Mode == "" {
		c.Parse.Mode = "greedy"
	}
	if c.Parse.Format == "" {
		c.Parse.Format = "text"
	}
	if c.Parse.Full == nil {
		full := true
		c.Parse.Full = &full
	}
}

// Validate reports unknown modes and formats and negative limits.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ebnf.ParseMode(c.Parse.Mode); err != nil {
		errs = append(errs, fmt.Errorf("%w: parse.mode: %w", ErrInvalid, err))
	}
	if !slices.Contains(format.Names, c.Parse.Format) {
		errs = append(errs, fmt.Errorf("%w: parse.format %q", ErrInvalid, c.Parse.Format))
	}
	if c.Parse.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("%w: parse.max_results %d", ErrInvalid, c.Parse.MaxResults))
	}
	if c.Log.Verbosity < -4 || c.Log.Verbosity > 2 {
		errs = append(errs, fmt.Errorf("%w: log.verbosity %d", ErrInvalid, c.Log.Verbosity))
	}
	return errors.Join(errs...)
}

// FullParse reports whether parses must consume the whole input.
func (c *Config) FullParse() bool {
	return c.Parse.Full == nil || *c.Parse.Full
}
