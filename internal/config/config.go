// Package config loads the jugglefest YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors the YAML file. Command-line flags override every field.
type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
	// Verify runs the stability check after allocation.
	Verify bool `yaml:"verify"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Output configures the assignment report.
type Output struct {
	Format string `yaml:"format"`
}

var (
	levels        = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"text", "json", "yaml"}
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    Log{Level: "error", Format: "text"},
		Output: Output{Format: "text"},
	}
}

// Load reads path over Default. Unknown keys are rejected. A file that cannot
// be opened is returned as the underlying *fs.PathError; decode and validation
// failures match ErrInvalid.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over Default and validates the result. An empty
// document yields Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated fields. Comparison ignores case.
func (c Config) Validate() error {
	if err := oneOf("log.level", c.Log.Level, levels); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, logFormats); err != nil {
		return err
	}
	return oneOf("output.format", c.Output.Format, outputFormats)
}

func oneOf(key, v string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalid, key, v, strings.Join(allowed, ", "))
}
