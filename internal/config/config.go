package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const VtagConfigFile = ".vtag.yml"

// Duration unmarshals YAML scalars like "10s" or "500ms" via
// time.ParseDuration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return &InvalidDurationError{Value: value.Value, Wrapped: err}
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

type Config struct {
	Match    string   `yaml:"match"`
	Fallback string   `yaml:"fallback"`
	Timeout  Duration `yaml:"timeout"` // zero means unset; callers apply their default
}

// New reads .vtag.yml from repoDir. The file is optional: if it does
// not exist the zero-value Config is returned, so vtag works in
// unconfigured repositories.
func New(repoDir string) (*Config, error) {
	configPath := filepath.Join(repoDir, VtagConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		// Duration parse failures travel through yaml verbatim; keep
		// their specific message instead of the generic yaml one.
		var durErr *InvalidDurationError
		if errors.As(err, &durErr) {
			return nil, durErr
		}
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if vErr := config.Validate(); vErr != nil {
		return nil, vErr
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return &InvalidTimeoutError{Value: time.Duration(c.Timeout)}
	}
	return nil
}
