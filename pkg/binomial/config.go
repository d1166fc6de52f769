package binomial

import (
	"github.com/dmitrymomot/holotype/pkg/validator"
)

// Epoch is the year encoded as offset zero. Earlier years cannot be encoded.
const Epoch = 2000

// Config bounds the generator's input domain and sets the quality gate.
type Config struct {
	YearStart int    `yaml:"year_start" env:"YEAR_START"`
	YearEnd   int    `yaml:"year_end"   env:"YEAR_END"`
	NumberMin uint32 `yaml:"number_min" env:"NUMBER_MIN"`
	NumberMax uint32 `yaml:"number_max" env:"NUMBER_MAX"`

	// MaxConsonantCluster is only enforced by the strict gate.
	MaxConsonantCluster      int     `yaml:"max_consonant_cluster"      env:"MAX_CONSONANT_CLUSTER"`
	MinPronounceabilityScore float64 `yaml:"min_pronounceability_score" env:"MIN_PRONOUNCEABILITY_SCORE"`
	MaxGenusLength           int     `yaml:"max_genus_length"           env:"MAX_GENUS_LENGTH"`
}

// DefaultConfig covers the years 2000 to 2099 and numbers 1 to 99.
func DefaultConfig() Config {
	return Config{
		YearStart:                2000,
		YearEnd:                  2099,
		NumberMin:                1,
		NumberMax:                99,
		MaxConsonantCluster:      3,
		MinPronounceabilityScore: 0.3,
		MaxGenusLength:           18,
	}
}

// Validate checks the bounds. The number range is capped at 999 and years at
// 9999 so that every field stays below its positional weight and dates stay
// printable as YYYY-MM-DD.
func (c Config) Validate() error {
	return validator.Apply(
		validator.MinNum("year_start", c.YearStart, Epoch),
		validator.Less("year_start", c.YearStart, "year_end", c.YearEnd),
		validator.MaxNum("year_end", c.YearEnd, 9999),
		validator.Less("number_min", c.NumberMin, "number_max", c.NumberMax),
		validator.MaxNum("number_max", c.NumberMax, 999),
		validator.MinNum("max_consonant_cluster", c.MaxConsonantCluster, 2),
		validator.RangeNum("min_pronounceability_score", c.MinPronounceabilityScore, 0, 1),
		validator.MinNum("max_genus_length", c.MaxGenusLength, 1),
	)
}

// ContainsYear reports whether year lies in [YearStart, YearEnd].
func (c Config) ContainsYear(year int) bool {
	return year >= c.YearStart && year <= c.YearEnd
}

// ContainsNumber reports whether n lies in [NumberMin, NumberMax].
func (c Config) ContainsNumber(n uint32) bool {
	return n >= c.NumberMin && n <= c.NumberMax
}
