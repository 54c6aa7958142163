// Package config loads the citypaths configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/citypaths/config.toml,
// falling back to ~/.config/citypaths/config.toml:
//
//	format = "text"
//	unreachable = "-1"
//	route = false
//	memo = false
//	max_catalan = 16
//	factorial_base = 100
//	verbose = false
//
// Command-line flags override the file, and the file overrides [Default].
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/pipeline"
)

// AppName names the configuration directory.
const AppName = "citypaths"

// FileName is the configuration file inside the configuration directory.
const FileName = "config.toml"

// Config holds user preferences for citypaths.
type Config struct {
	Format        string `toml:"format"`
	Unreachable   string `toml:"unreachable"`
	Route         bool   `toml:"route"`
	Memo          bool   `toml:"memo"`
	MaxCatalan    int    `toml:"max_catalan"`
	FactorialBase int    `toml:"factorial_base"`
	Verbose       bool   `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:        pipeline.FormatText,
		Unreachable:   pipeline.DefaultUnreachable,
		MaxCatalan:    pipeline.DefaultMaxCatalan,
		FactorialBase: pipeline.DefaultFactorialBase,
	}
}

// Options converts the configuration into pipeline options.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Format:        c.Format,
		Unreachable:   c.Unreachable,
		Route:         c.Route,
		Memo:          c.Memo,
		MaxCatalan:    c.MaxCatalan,
		FactorialBase: c.FactorialBase,
	}
}

// Validate checks the configuration the same way a run would.
func (c Config) Validate() error {
	opts := c.Options()
	return opts.ValidateAndSetDefaults()
}

// Dir returns the configuration directory using the XDG convention.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration at path on top of [Default].
// An empty path means the default location, where a missing file is not an
// error. An explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of [Default].
// Unknown keys are rejected so typos do not go unnoticed.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
