package binomial_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holotype/pkg/binomial"
	"github.com/dmitrymomot/holotype/pkg/lexicon"
)

const testSalt = "test_salt"

// testConfig keeps the search space small: three years, fifty numbers.
func testConfig() binomial.Config {
	cfg := binomial.DefaultConfig()
	cfg.YearStart = 2025
	cfg.YearEnd = 2027
	cfg.NumberMin = 1
	cfg.NumberMax = 50
	return cfg
}

func newGenerator(t testing.TB, cfg binomial.Config, opts ...binomial.Option) *binomial.Generator {
	t.Helper()
	gen, err := binomial.New(lexicon.Default(), cfg, opts...)
	require.NoError(t, err)
	return gen
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type gridPoint struct {
	date   time.Time
	number uint32
}

// marchGrid is 2026-03-01..24 crossed with numbers 1..20.
func marchGrid() []gridPoint {
	points := make([]gridPoint, 0, 24*20)
	for d := 1; d <= 24; d++ {
		for n := uint32(1); n <= 20; n++ {
			points = append(points, gridPoint{date: day(2026, time.March, d), number: n})
		}
	}
	return points
}
