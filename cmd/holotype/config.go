package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/holotype/pkg/binomial"
	"github.com/dmitrymomot/holotype/pkg/config"
	"github.com/dmitrymomot/holotype/pkg/logger"
	"github.com/dmitrymomot/holotype/pkg/validator"
)

const envPrefix = "HOLOTYPE_"

// appConfig is the file and environment configuration. Flags given on the
// command line take precedence.
type appConfig struct {
	binomial.Config `yaml:",inline"`

	Workers   int           `yaml:"workers"    env:"WORKERS"`
	Timeout   time.Duration `yaml:"timeout"    env:"TIMEOUT"`
	CacheSize int           `yaml:"cache_size" env:"CACHE_SIZE"`
	LogFormat string        `yaml:"log_format" env:"LOG_FORMAT"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		Config:    binomial.DefaultConfig(),
		Workers:   1,
		LogFormat: string(logger.FormatText),
	}
}

func (a *app) loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	opts := []config.Option{config.WithFile(path), config.WithPrefix(envPrefix)}
	if a.env != nil {
		opts = append(opts, config.WithEnvironment(a.env))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return cfg, fmt.Errorf("loading configuration: %w", err)
	}

	switch logger.Format(cfg.LogFormat) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return cfg, fmt.Errorf("invalid configuration: log_format must be %q or %q, got %q",
			logger.FormatText, logger.FormatJSON, cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		if errs := validator.ExtractValidationErrors(err); errs != nil {
			problems := make([]string, 0, len(errs))
			for _, e := range errs {
				problems = append(problems, e.Field+" "+e.Message)
			}
			return cfg, fmt.Errorf("invalid configuration: %s: %w", strings.Join(problems, "; "), validator.ErrValidationFailed)
		}
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
