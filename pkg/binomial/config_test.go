package binomial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holotype/pkg/binomial"
	"github.com/dmitrymomot/holotype/pkg/validator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := binomial.DefaultConfig()

	assert.Equal(t, 2000, cfg.YearStart)
	assert.Equal(t, 2099, cfg.YearEnd)
	assert.Equal(t, uint32(1), cfg.NumberMin)
	assert.Equal(t, uint32(99), cfg.NumberMax)
	assert.Equal(t, 3, cfg.MaxConsonantCluster)
	assert.Equal(t, 0.3, cfg.MinPronounceabilityScore)
	assert.Equal(t, 18, cfg.MaxGenusLength)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*binomial.Config)
		field  string
	}{
		{"years reversed", func(c *binomial.Config) { c.YearStart, c.YearEnd = 2100, 2000 }, "year_start"},
		{"years equal", func(c *binomial.Config) { c.YearEnd = c.YearStart }, "year_start"},
		{"before epoch", func(c *binomial.Config) { c.YearStart = 1999 }, "year_start"},
		{"year end too large", func(c *binomial.Config) { c.YearEnd = 10000 }, "year_end"},
		{"numbers reversed", func(c *binomial.Config) { c.NumberMin, c.NumberMax = 10, 5 }, "number_min"},
		{"numbers equal", func(c *binomial.Config) { c.NumberMin = c.NumberMax }, "number_min"},
		{"number max overflows field", func(c *binomial.Config) { c.NumberMax = 1000 }, "number_max"},
		{"cluster too small", func(c *binomial.Config) { c.MaxConsonantCluster = 1 }, "max_consonant_cluster"},
		{"score above one", func(c *binomial.Config) { c.MinPronounceabilityScore = 1.5 }, "min_pronounceability_score"},
		{"negative score", func(c *binomial.Config) { c.MinPronounceabilityScore = -0.1 }, "min_pronounceability_score"},
		{"NaN score", func(c *binomial.Config) { c.MinPronounceabilityScore = math.NaN() }, "min_pronounceability_score"},
		{"zero genus length", func(c *binomial.Config) { c.MaxGenusLength = 0 }, "max_genus_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := binomial.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.True(t, verrs.Has(tt.field), "fields: %v", verrs.Fields())
		})
	}

	t.Run("boundaries are accepted", func(t *testing.T) {
		cfg := binomial.Config{
			YearStart:                2000,
			YearEnd:                  2001,
			NumberMin:                0,
			NumberMax:                999,
			MaxConsonantCluster:      2,
			MinPronounceabilityScore: 1,
			MaxGenusLength:           1,
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reports every failure", func(t *testing.T) {
		cfg := binomial.Config{YearStart: 2100, YearEnd: 2000, NumberMin: 5, NumberMax: 1}
		verrs := validator.ExtractValidationErrors(cfg.Validate())
		assert.Equal(t, []string{"year_start", "number_min", "max_consonant_cluster", "max_genus_length"}, verrs.Fields())
	})
}

func TestConfig_Contains(t *testing.T) {
	cfg := testConfig()

	assert.True(t, cfg.ContainsYear(2025))
	assert.True(t, cfg.ContainsYear(2027))
	assert.False(t, cfg.ContainsYear(2024))
	assert.False(t, cfg.ContainsYear(2028))

	assert.True(t, cfg.ContainsNumber(1))
	assert.True(t, cfg.ContainsNumber(50))
	assert.False(t, cfg.ContainsNumber(0))
	assert.False(t, cfg.ContainsNumber(51))
}
