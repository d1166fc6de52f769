package binomial

import (
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/holotype/pkg/cache"
	"github.com/dmitrymomot/holotype/pkg/feistel"
	"github.com/dmitrymomot/holotype/pkg/lexicon"
	"github.com/dmitrymomot/holotype/pkg/logger"
	"github.com/dmitrymomot/holotype/pkg/phonotactics"
)

const (
	// MaxAttempts is the number of candidates tried against the quality gate
	// before the base name is returned as is.
	MaxAttempts = 100

	// rehashMul is 2^64 divided by the golden ratio.
	rehashMul uint64 = 0x9e3779b97f4a7c15

	halfMask uint64 = 0xFFFFFFFF
)

// Generator maps (date, number, salt) to a binomial name. It is safe for
// concurrent use.
type Generator struct {
	tables   *lexicon.Tables
	cfg      Config
	prefixes []lexicon.Morpheme
	roots    []string
	suffixes []string
	pools    [lexicon.NumCategories][]string

	strict    bool
	cacheSize int
	memo      *cache.LRU[memoKey, string]
	log       *slog.Logger
}

type memoKey struct {
	date   civil
	number uint32
	salt   string
}

// New validates cfg and prepares a generator over tables.
func New(tables *lexicon.Tables, cfg Config, opts ...Option) (*Generator, error) {
	if tables == nil {
		return nil, ErrNilTables
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		tables:   tables,
		cfg:      cfg,
		prefixes: tables.Prefixes(),
		roots:    tables.Roots(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	// Vowel-only suffixes are never picked, whatever the stem.
	for _, s := range tables.GenusSuffixes() {
		if !phonotactics.NeedsVowelStem(s) {
			g.suffixes = append(g.suffixes, s)
		}
	}
	if len(g.suffixes) == 0 {
		return nil, ErrNoUsableSuffix
	}

	for _, c := range lexicon.Categories() {
		g.pools[c] = tables.SpeciesPool(c)
	}

	if g.cacheSize > 0 {
		g.memo = cache.New[memoKey, string](g.cacheSize)
	}
	g.log = g.log.With(logger.Component("generator"))

	return g, nil
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	g, err := New(lexicon.Default(), DefaultConfig())
	if err != nil {
		panic("binomial: default generator: " + err.Error())
	}
	return g
})

// Default returns the generator over the built-in tables and DefaultConfig.
func Default() *Generator {
	return defaultGenerator()
}

// Generate is a shortcut for Default().Generate.
func Generate(date time.Time, number uint32, salt string) string {
	return Default().Generate(date, number, salt)
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Tables returns the lexical tables names are drawn from.
func (g *Generator) Tables() *lexicon.Tables { return g.tables }

// CacheStats reports memo statistics; ok is false when the memo is disabled.
func (g *Generator) CacheStats() (stats cache.Stats, ok bool) {
	if g.memo == nil {
		return cache.Stats{}, false
	}
	return g.memo.Stats(), true
}

// Generate returns the name for date, number and salt. The date is read in
// its own location. Generation never fails: when no attempt passes the
// quality gate, the first attempt's name is returned.
func (g *Generator) Generate(date time.Time, number uint32, salt string) string {
	return g.generate(civilOf(date), number, salt, feistel.HashSalt(salt))
}

func (g *Generator) generate(date civil, number uint32, salt string, key uint64) string {
	if g.memo == nil {
		return g.compose(date, number, key)
	}

	name, _ := g.memo.GetOrCompute(memoKey{date: date, number: number, salt: salt}, func() (string, error) {
		return g.compose(date, number, key), nil
	})
	return name
}

func (g *Generator) compose(date civil, number uint32, key uint64) string {
	base := encodeCivil(date, number)

	for attempt := range uint64(MaxAttempts) {
		v := base
		if attempt > 0 {
			v = base*rehashMul + attempt
		}
		genus, species := g.assemble(feistel.Permute(v, key))
		if g.Acceptable(genus) {
			return genus + " " + species
		}
	}

	genus, species := g.assemble(feistel.Permute(base, key))
	g.log.Debug("quality gate exhausted, using base name",
		logger.Date(date.date()),
		logger.Number(number),
		logger.Name(genus+" "+species),
		logger.Attempts(MaxAttempts),
	)
	return genus + " " + species
}

// assemble picks the morphemes addressed by a permuted value. The low half
// selects prefix, root and suffix; the high half selects the species.
func (g *Generator) assemble(permuted uint64) (genus, species string) {
	genusSeed := permuted & halfMask
	speciesSeed := (permuted >> 32) & halfMask

	prefix := g.prefixes[genusSeed%uint64(len(g.prefixes))]
	root := g.roots[(genusSeed>>8)%uint64(len(g.roots))]
	suffix := g.suffixes[(genusSeed>>16)%uint64(len(g.suffixes))]

	pool := g.pools[prefix.Category]
	return AssembleGenus(prefix, root, suffix), pool[speciesSeed%uint64(len(pool))]
}

// Acceptable reports whether genus passes the quality gate: it fits
// MaxGenusLength and scores at least MinPronounceabilityScore. The strict
// gate also applies the phonotactic rules.
func (g *Generator) Acceptable(genus string) bool {
	if utf8.RuneCountInString(genus) > g.cfg.MaxGenusLength {
		return false
	}
	if phonotactics.Score(genus) < g.cfg.MinPronounceabilityScore {
		return false
	}
	if g.strict {
		return phonotactics.CheckGenus(genus) &&
			phonotactics.LongestConsonantRun(genus) <= g.cfg.MaxConsonantCluster
	}
	return true
}
