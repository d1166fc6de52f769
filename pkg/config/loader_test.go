package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holotype/pkg/config"
)

type testConfig struct {
	Start int     `yaml:"start" env:"START"`
	End   int     `yaml:"end"   env:"END"`
	Ratio float64 `yaml:"ratio" env:"RATIO"`
	Label string  `yaml:"label" env:"LABEL"`
}

func defaults() testConfig {
	return testConfig{Start: 2000, End: 2099, Ratio: 0.3, Label: "default"}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg := defaults()
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "start: 2010\nratio: 0.5\n")

	cfg := defaults()
	err := config.Load(&cfg, config.WithFile(path), config.WithEnvironment(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, 2010, cfg.Start)
	assert.Equal(t, 2099, cfg.End, "keys absent from the file keep their defaults")
	assert.Equal(t, 0.5, cfg.Ratio)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "start: 2010\nlabel: file\n")

	cfg := defaults()
	err := config.Load(&cfg,
		config.WithFile(path),
		config.WithPrefix("HT_"),
		config.WithEnvironment(map[string]string{
			"HT_START": "2020",
			"START":    "1999",
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, 2020, cfg.Start)
	assert.Equal(t, "file", cfg.Label)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("HOLOTYPE_TEST_END", "2050")

	cfg := defaults()
	require.NoError(t, config.Load(&cfg, config.WithPrefix("HOLOTYPE_TEST_")))
	assert.Equal(t, 2050, cfg.End)
}

func TestLoad_EnvFiles(t *testing.T) {
	path := writeFile(t, ".env", "HOLOTYPE_DOTENV_LABEL=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("HOLOTYPE_DOTENV_LABEL") })

	cfg := defaults()
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path), config.WithPrefix("HOLOTYPE_DOTENV_")))
	assert.Equal(t, "from-dotenv", cfg.Label)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := defaults()
		err := config.Load(&cfg, config.WithFile(filepath.Join(t.TempDir(), "missing.yaml")))
		assert.ErrorIs(t, err, config.ErrReadingFile)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "cfg.yaml", "strat: 2010\n")
		cfg := defaults()
		assert.ErrorIs(t, config.Load(&cfg, config.WithFile(path)), config.ErrDecodingFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "cfg.yaml", "start: [\n")
		cfg := defaults()
		assert.ErrorIs(t, config.Load(&cfg, config.WithFile(path)), config.ErrDecodingFile)
	})

	t.Run("empty file is fine", func(t *testing.T) {
		path := writeFile(t, "cfg.yaml", "\n")
		cfg := defaults()
		require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithEnvironment(map[string]string{})))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("bad env value", func(t *testing.T) {
		cfg := defaults()
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"START": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing env file", func(t *testing.T) {
		cfg := defaults()
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})
}

func TestMustLoad(t *testing.T) {
	cfg := defaults()
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"END": "never"}))
	})
	assert.NotPanics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"END": "2080"}))
	})
	assert.Equal(t, 2080, cfg.End)
}
