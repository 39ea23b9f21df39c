// Package config loads solver settings from an optional YAML file.
//
// Precedence, lowest first: Default(), the YAML file, the
// STATESPACE_LOG_LEVEL environment variable, command-line flags (applied by
// the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "STATESPACE_LOG_LEVEL"

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config holds the settings shared by every driver.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn warning error"`

	// MaxExpansions bounds the states dequeued per search; 0 disables the bound.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`

	// Timeout bounds each search; 0 disables the deadline.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// Telemetry selects the OpenTelemetry exporter: none or stdout.
	Telemetry string `yaml:"telemetry" validate:"oneof=none stdout"`

	// Color controls board highlighting: auto, always or never.
	Color string `yaml:"color" validate:"oneof=auto always never"`

	// BatchWorkers caps concurrent solves in the batch command.
	BatchWorkers int `yaml:"batch_workers" validate:"gte=1,lte=256"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "warn",
		MaxExpansions: 0,
		Timeout:       0,
		Telemetry:     "none",
		Color:         "auto",
		BatchWorkers:  4,
	}
}

// Load reads path over the defaults. An empty path yields the defaults
// (plus environment overrides).
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode rejects unknown keys so typos surface instead of being ignored.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
