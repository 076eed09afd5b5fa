package config

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTimeoutSeconds is the search budget applied when none is configured.
const DefaultTimeoutSeconds = 3600.0

// Config holds the solver's configuration.
type Config struct {
	// Logger receives the solver's diagnostics. Verdict output never goes
	// through it.
	Logger *logrus.Logger `mapstructure:"-"`
	// TimeoutSeconds is the wall-clock budget for one Solve call.
	TimeoutSeconds float64 `mapstructure:"timeout_seconds"`
	// Verbose enables debug-level diagnostics on the logger.
	Verbose bool `mapstructure:"verbose"`
}

// New returns a config with default settings: an hour of budget and a
// warn-level logger.
func New() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	return &Config{
		Logger:         logger,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// FromMap decodes a loosely-typed option map into a config. Recognized keys
// are "timeout_seconds" and "verbose"; unknown keys are an error.
func FromMap(m map[string]any) (*Config, error) {
	c := New()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      c,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, errors.Wrap(err, "decode solver options")
	}
	if c.TimeoutSeconds <= 0 {
		return nil, errors.Errorf("timeout_seconds must be positive, got %v", c.TimeoutSeconds)
	}
	if c.Verbose {
		c.Logger.SetLevel(logrus.DebugLevel)
	}
	return c, nil
}

// Budget returns the configured timeout as a duration.
func (c *Config) Budget() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}
