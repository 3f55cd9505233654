// Package config loads jander.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"jander/internal/diagnostics"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "jander.toml"

// Output controls how diagnostics are written
type Output struct {
	Format string `toml:"format"`
}

// Config holds the settings a jander.toml may carry
type Config struct {
	Debug   bool   `toml:"debug"`
	Workers int    `toml:"workers"`
	Output  Output `toml:"output"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Debug:   false,
		Workers: runtime.NumCPU(),
		Output: Output{
			Format: string(diagnostics.FormatPlain),
		},
	}
}

// Load reads the configuration at path. With an empty path the default file
// is tried and its absence is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := diagnostics.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

// Format returns the validated output format
func (c *Config) Format() diagnostics.Format {
	format, err := diagnostics.ParseFormat(c.Output.Format)
	if err != nil {
		return diagnostics.FormatPlain
	}
	return format
}
