// Package config loads the YAML settings of the lsbsteg command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yyyoichi/lsbsteg/imagecodec"
	"github.com/yyyoichi/lsbsteg/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds defaults for flags the user did not set.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Output is the stego image path used when hide gets no -o flag.
	Output string `yaml:"output"`
	// DumpHead is the number of dump lines printed after a dump.
	DumpHead int `yaml:"dump_head"`
	// FullRescan selects the quadratic reference marker search.
	FullRescan bool `yaml:"full_rescan"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Output:   "stego_image.png",
		DumpHead: 10,
	}
}

// projectFiles are searched in the working directory, in order.
var projectFiles = []string{
	".lsbsteg.yml",
	".lsbsteg.yaml",
}

// Discover returns the first existing config file. An explicit path wins
// and must exist. An empty result means no file was found.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	candidates := append([]string{}, projectFiles...)
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "lsbsteg", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return "", nil
}

// Load discovers and parses the config file. It returns the defaults and
// an empty path when there is none.
func Load(explicit string) (*Config, string, error) {
	path, err := Discover(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Default(), "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.DumpHead < 0 {
		return fmt.Errorf("%w: dump_head must not be negative", ErrInvalidConfig)
	}
	if c.Output != "" {
		f, err := imagecodec.FormatFromPath(c.Output)
		if err != nil {
			return fmt.Errorf("%w: output: %w", ErrInvalidConfig, err)
		}
		if !f.Lossless() {
			return fmt.Errorf("%w: output %q is not a lossless format", ErrInvalidConfig, c.Output)
		}
	}
	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
