package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel        = "info"
	defaultInitialCapacity = 32
	defaultElements        = 1000
	defaultWorkers         = 4
	defaultUnits           = 16
	defaultDamage          = 25
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a Config with default settings.
func Default() *Config {
	return &Config{
		Logger: Logger{LogLevel: defaultLogLevel},
		Buffer: Buffer{InitialCapacity: defaultInitialCapacity},
		Bench: Bench{
			Elements:  defaultElements,
			Workers:   defaultWorkers,
			Units:     defaultUnits,
			Damage:    defaultDamage,
			Scenarios: []string{"append", "mixed", "combat"},
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := Parse(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields absent from raw, and validates it.
func Parse(raw []byte, cfg *Config) error {
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return errors.Wrap(err, "failed to decode yaml")
	}
	return cfg.Validate()
}

// Validate checks the configuration against its validate tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
