package config

import (
	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/firefly-engineering/rizzo/internal/errors"
	"github.com/firefly-engineering/rizzo/internal/output"
)

// Settings controls a single rzo invocation. Values come from command-line
// flags, then RZO_* environment variables, then defaults; the first
// non-zero value wins.
type Settings struct {
	// ConfigPath is the personal config location.
	// Env: RZO_CONFIG
	ConfigPath string `env:"RZO_CONFIG"`

	// Verbose enables debug tracing of the resolution pipeline.
	// Env: RZO_VERBOSE
	Verbose bool `env:"RZO_VERBOSE"`

	// JSONLogs switches debug logs to JSON.
	// Env: RZO_JSON_LOGS
	JSONLogs bool `env:"RZO_JSON_LOGS"`

	// Output is where `rzo config` writes: STDOUT, STDERR or a file path.
	// Env: RZO_OUTPUT
	Output string `env:"RZO_OUTPUT"`

	// Format is the encoding used by `rzo config`: json, yaml or toml.
	// Env: RZO_FORMAT
	Format string `env:"RZO_FORMAT"`
}

// DefaultSettings returns the settings used when neither flags nor the
// environment set a value.
func DefaultSettings() Settings {
	return Settings{
		ConfigPath: DefaultPersonalConfig,
		Output:     output.Stdout,
		Format:     string(output.FormatJSON),
	}
}

// Names of boolean flags that can be passed to LoadSettings as explicitly set.
const (
	FlagVerbose  = "verbose"
	FlagJSONLogs = "json"
)

// LoadSettings layers flags over the environment over defaults. Zero flag
// values fall through to the next layer, except booleans named in explicit,
// which keep their flag value so --verbose=false beats RZO_VERBOSE=true.
func LoadSettings(flags Settings, explicit ...string) (*Settings, error) {
	var envSettings Settings
	if err := env.Parse(&envSettings); err != nil {
		return nil, errors.ConfigError("failed to read RZO_* environment", err)
	}

	merged := flags
	for _, layer := range []Settings{envSettings, DefaultSettings()} {
		if err := mergo.Merge(&merged, layer); err != nil {
			return nil, errors.ConfigError("failed to merge settings", err)
		}
	}

	for _, name := range explicit {
		switch name {
		case FlagVerbose:
			merged.Verbose = flags.Verbose
		case FlagJSONLogs:
			merged.JSONLogs = flags.JSONLogs
		}
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.ConfigPath == "" {
		return errors.ConfigError("personal config path is required", nil)
	}
	if _, err := output.ParseFormat(s.Format); err != nil {
		return errors.ConfigError("invalid output format", err)
	}
	return nil
}

// Paths returns the paths derived from these settings.
func (s *Settings) Paths() *Paths {
	return NewPaths(s.ConfigPath)
}
