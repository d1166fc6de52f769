package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Option configures a Load call.
type Option func(*options)

type options struct {
	file        string
	envFiles    []string
	prefix      string
	environment map[string]string
}

// WithFile decodes the YAML file at path over the current values.
// An empty path is ignored.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithEnvFiles loads the given dotenv files into the process environment
// before parsing. Variables that are already set win.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, paths...) }
}

// WithPrefix makes env tags resolve to prefix+tag, e.g. "HOLOTYPE_" + "YEAR_START".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment replaces the process environment as the variable source.
// Mostly useful in tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load fills v in three layers: the values v already holds act as defaults,
// then the optional YAML file, then environment variables named by the
// struct's env tags. Variables that are not set leave the field untouched.
//
// Example:
//
//	cfg := binomial.DefaultConfig()
//	err := config.Load(&cfg,
//		config.WithFile("holotype.yaml"),
//		config.WithPrefix("HOLOTYPE_"),
//	)
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrReadingFile, err)
		}
	}

	if o.file != "" {
		if err := decodeFile(o.file, v); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrDecodingFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}
