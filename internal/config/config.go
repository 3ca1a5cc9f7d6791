// Package config loads the optional configuration file of the errenum
// command.
//
//	# errenum.yaml
//	output: errenum_gen.go
//	tags: integration
//	tests: false
//	color: auto
//	packages:
//	  - ./...
//	watch:
//	  debounce: 300ms
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "errenum.yaml"

// Config represents the configuration of the errenum command. Command line
// flags override it.
type Config struct {
	Output   string      `yaml:"output"`
	Tags     string      `yaml:"tags,omitempty"`
	Tests    bool        `yaml:"tests,omitempty"`
	Color    string      `yaml:"color,omitempty"` // "auto", "always", "never"
	Verbose  bool        `yaml:"verbose,omitempty"`
	Packages []string    `yaml:"packages,omitempty"`
	Watch    WatchConfig `yaml:"watch,omitempty"`
}

// WatchConfig represents the configuration of the watch mode.
type WatchConfig struct {
	// Debounce is how long to wait for more file events before regenerating.
	Debounce Duration `yaml:"debounce,omitempty"`
}

// Duration is a [time.Duration] written as "300ms" in YAML.
type Duration time.Duration

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, s)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file. If the file does not
// exist, the error wraps [os.ErrNotExist].
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s: %w", configPath, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse parses configuration from YAML. Environment variables in the content
// are expanded. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyDefaults applies default values to configuration
func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = "errenum_gen.go"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = Duration(300 * time.Millisecond)
	}
}

func validate(cfg *Config) error {
	var errs error
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		errs = errors.Join(errs, fmt.Errorf("color must be auto, always or never: %q", cfg.Color))
	}
	if err := ValidateOutput(cfg.Output); err != nil {
		errs = errors.Join(errs, err)
	}
	if cfg.Watch.Debounce < 0 {
		errs = errors.Join(errs, fmt.Errorf("watch.debounce must not be negative: %s", time.Duration(cfg.Watch.Debounce)))
	}
	return errs
}

// ValidateOutput checks that the output is the base name of a Go file. The
// generated file is written into the directory of each package.
func ValidateOutput(output string) error {
	if output == "" || filepath.Base(output) != output {
		return fmt.Errorf("output must be a file name without directories: %q", output)
	}
	if filepath.Ext(output) != ".go" {
		return fmt.Errorf("output must be a .go file: %q", output)
	}
	return nil
}
