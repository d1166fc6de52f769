package binomial_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holotype/pkg/binomial"
	"github.com/dmitrymomot/holotype/pkg/lexicon"
	"github.com/dmitrymomot/holotype/pkg/logger"
	"github.com/dmitrymomot/holotype/pkg/phonotactics"
	"github.com/dmitrymomot/holotype/pkg/validator"
)

func TestNew(t *testing.T) {
	t.Run("nil tables", func(t *testing.T) {
		_, err := binomial.New(nil, binomial.DefaultConfig())
		assert.ErrorIs(t, err, binomial.ErrNilTables)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := binomial.DefaultConfig()
		cfg.YearStart, cfg.YearEnd = 2100, 2000
		_, err := binomial.New(lexicon.Default(), cfg)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("only vowel-stem suffixes", func(t *testing.T) {
		tables := lexicon.MustNew(
			[]lexicon.Morpheme{{Text: "Neo", Origin: lexicon.Greek, Category: lexicon.Time}},
			[]string{"morph"},
			[]string{"yx", "-ix"},
			[]lexicon.SpeciesDescriptor{{Text: "major", Affinity: lexicon.AnyCategory}},
		)
		_, err := binomial.New(tables, binomial.DefaultConfig())
		assert.ErrorIs(t, err, binomial.ErrNoUsableSuffix)
	})

	t.Run("exposes config and tables", func(t *testing.T) {
		gen := newGenerator(t, testConfig())
		assert.Equal(t, testConfig(), gen.Config())
		assert.Same(t, lexicon.Default(), gen.Tables())
	})
}

func TestGenerate_KnownNames(t *testing.T) {
	tests := []struct {
		date   time.Time
		number uint32
		salt   string
		want   string
	}{
		{day(2026, time.January, 4), 42, testSalt, "Vermigos hybridus"},
		{day(2026, time.January, 4), 42, "", "Roseospinor saxatilis"},
		{day(2000, time.January, 1), 1, "", "Macrogemmen curiosus"},
		{day(2024, time.February, 29), 7, "pepper", "Cyclostaminas audax"},
		{day(2099, time.December, 31), 99, "", "Stenocursoren ambiguus"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d/%q", tt.date.Format(time.DateOnly), tt.number, tt.salt), func(t *testing.T) {
			assert.Equal(t, tt.want, binomial.Generate(tt.date, tt.number, tt.salt))
			assert.Equal(t, tt.want, binomial.Default().Generate(tt.date, tt.number, tt.salt))
		})
	}

	t.Run("time of day and location are ignored", func(t *testing.T) {
		evening := time.Date(2026, time.January, 4, 23, 59, 0, 0, time.FixedZone("UTC+9", 9*3600))
		assert.Equal(t, "Vermigos hybridus", binomial.Generate(evening, 42, testSalt))
	})
}

func TestGenerate_Shape(t *testing.T) {
	gen := newGenerator(t, testConfig())

	for _, p := range marchGrid() {
		name := gen.Generate(p.date, p.number, testSalt)
		parts := strings.Split(name, " ")
		require.Len(t, parts, 2, name)

		genus, species := parts[0], parts[1]
		assert.Equal(t, strings.ToUpper(genus[:1]), genus[:1], name)
		assert.Equal(t, strings.ToLower(genus[1:]), genus[1:], name)
		assert.Equal(t, strings.ToLower(species), species, name)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := newGenerator(t, testConfig())
	b := newGenerator(t, testConfig())

	for _, p := range marchGrid()[:100] {
		first := a.Generate(p.date, p.number, testSalt)
		assert.Equal(t, first, a.Generate(p.date, p.number, testSalt))
		assert.Equal(t, first, b.Generate(p.date, p.number, testSalt))
	}
}

func TestGenerate_SaltSeparation(t *testing.T) {
	gen := newGenerator(t, testConfig())

	for _, p := range marchGrid() {
		assert.NotEqual(t,
			gen.Generate(p.date, p.number, "salt1"),
			gen.Generate(p.date, p.number, "salt2"),
			"%s/%d", p.date.Format(time.DateOnly), p.number,
		)
	}
}

func TestGenerate_NoCollisions(t *testing.T) {
	gen := newGenerator(t, testConfig())

	for _, salt := range []string{testSalt, ""} {
		seen := make(map[string]gridPoint)
		for _, p := range marchGrid() {
			name := gen.Generate(p.date, p.number, salt)
			prev, dup := seen[name]
			assert.False(t, dup, "%q from %v and %v", name, prev, p)
			seen[name] = p
		}
		assert.Len(t, seen, 480)
	}
}

func TestGenerate_QualityGate(t *testing.T) {
	t.Run("short genus limit forces a retry", func(t *testing.T) {
		cfg := testConfig()
		assert.Equal(t, "Heterotheriumas spurius", newGenerator(t, cfg).Generate(day(2026, time.March, 1), 1, testSalt))

		cfg.MaxGenusLength = 14
		assert.Equal(t, "Aqulithima urbanus", newGenerator(t, cfg).Generate(day(2026, time.March, 1), 1, testSalt))
	})

	t.Run("every name honours the gate", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxGenusLength = 14
		gen := newGenerator(t, cfg)

		for _, p := range marchGrid() {
			genus, _, _ := strings.Cut(gen.Generate(p.date, p.number, testSalt), " ")
			assert.LessOrEqual(t, utf8.RuneCountInString(genus), 14, genus)
			assert.GreaterOrEqual(t, phonotactics.Score(genus), cfg.MinPronounceabilityScore, genus)
			assert.True(t, gen.Acceptable(genus), genus)
		}
	})

	t.Run("falls back to the base name", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := testConfig()
		cfg.MaxGenusLength = 1
		gen := newGenerator(t, cfg, binomial.WithLogger(logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
		)))

		assert.Equal(t, "Brachyopentagonus mirabilis", gen.Generate(day(2026, time.March, 1), 1, ""))
		assert.Contains(t, buf.String(), "quality gate exhausted")
		assert.Contains(t, buf.String(), `"attempts":100`)
	})

	t.Run("strict phonotactics", func(t *testing.T) {
		cfg := testConfig()
		gen := newGenerator(t, cfg, binomial.WithStrictPhonotactics())

		for _, p := range marchGrid() {
			genus, _, _ := strings.Cut(gen.Generate(p.date, p.number, ""), " ")
			assert.True(t, phonotactics.CheckGenus(genus), genus)
			assert.LessOrEqual(t, phonotactics.LongestConsonantRun(genus), cfg.MaxConsonantCluster, genus)
		}

		assert.False(t, gen.Acceptable("Lymphnodus"))
		assert.True(t, newGenerator(t, cfg).Acceptable("Lymphnodus"))
	})
}

func TestGenerate_Cache(t *testing.T) {
	plain := newGenerator(t, testConfig())
	_, ok := plain.CacheStats()
	assert.False(t, ok)

	cached := newGenerator(t, testConfig(), binomial.WithCache(16))
	date := day(2026, time.March, 12)

	first := cached.Generate(date, 5, testSalt)
	assert.Equal(t, "Brachyosquillen insolitus", first)
	assert.Equal(t, first, cached.Generate(date, 5, testSalt))
	assert.Equal(t, plain.Generate(date, 5, testSalt), first)
	assert.NotEqual(t, first, cached.Generate(date, 5, ""), "salt is part of the key")

	stats, ok := cached.CacheStats()
	require.True(t, ok)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, 2, stats.Len)

	t.Run("concurrent callers agree", func(t *testing.T) {
		shared := newGenerator(t, testConfig(), binomial.WithCache(4))
		var wg sync.WaitGroup
		names := make([]string, 16)
		for i := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()
				names[i] = shared.Generate(date, 5, testSalt)
			}()
		}
		wg.Wait()

		for _, name := range names {
			assert.Equal(t, "Brachyosquillen insolitus", name)
		}
		stats, _ := shared.CacheStats()
		assert.Equal(t, 1, stats.Len)
		assert.Equal(t, uint64(len(names)), stats.Hits+stats.Misses)
	})
}

func BenchmarkGenerate(b *testing.B) {
	gen := newGenerator(b, binomial.DefaultConfig())
	date := day(2026, time.January, 4)

	b.Run("NoSalt", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = gen.Generate(date, 42, "")
		}
	})

	b.Run("Salt", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = gen.Generate(date, 42, testSalt)
		}
	})

	b.Run("Cached", func(b *testing.B) {
		cached := newGenerator(b, binomial.DefaultConfig(), binomial.WithCache(64))
		b.ReportAllocs()
		for b.Loop() {
			_ = cached.Generate(date, 42, testSalt)
		}
	})
}
