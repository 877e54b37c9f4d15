package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config carries the ambient settings of the sample CLI: logging and the
// transport knobs handed to the library. All of it comes from the
// environment.
type Config struct {
	Environment string        `envconfig:"ENV" default:"production"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	APIBaseURL  string        `envconfig:"WORLDTIDES_BASE_URL" default:""`
}

// LoadFromEnv reads the configuration from environment variables, falling
// back to the defaults above.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParsedLogLevel returns the configured zerolog level, defaulting to info
// when the value does not parse.
func (c *Config) ParsedLogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// InitializeLogging sets up logging based on the configuration.
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.ParsedLogLevel())

	// Console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}
