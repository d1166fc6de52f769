package lexicon

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Tables is the immutable set of word lists a generator draws from.
// Accessors return copies, so a Tables value can be shared freely.
type Tables struct {
	prefixes      []Morpheme
	roots         []string
	genusSuffixes []string
	species       []SpeciesDescriptor
}

var defaultTables = MustNew(defaultPrefixes, defaultRoots, defaultGenusSuffixes, defaultSpeciesDescriptors)

// Default returns the built-in tables. They are checked once at program start.
func Default() *Tables {
	return defaultTables
}

// New builds tables from the given lists. Every list must be non-empty, texts
// must be unique within their list (compared case-insensitively), and each
// prefix category must have at least one matching species descriptor.
func New(prefixes []Morpheme, roots, genusSuffixes []string, species []SpeciesDescriptor) (*Tables, error) {
	fold := cases.Fold()

	prefixTexts := make([]string, len(prefixes))
	for i, p := range prefixes {
		prefixTexts[i] = p.Text
	}
	speciesTexts := make([]string, len(species))
	for i, s := range species {
		if s.Affinity.kind == affinityUnset {
			return nil, fmt.Errorf("%w: species %q", ErrUnsetAffinity, s.Text)
		}
		speciesTexts[i] = s.Text
	}

	for _, list := range []struct {
		name  string
		texts []string
	}{
		{"prefixes", prefixTexts},
		{"roots", roots},
		{"genus suffixes", genusSuffixes},
		{"species descriptors", speciesTexts},
	} {
		if err := checkUnique(fold, list.name, list.texts); err != nil {
			return nil, err
		}
	}

	for _, p := range prefixes {
		if !slices.ContainsFunc(species, func(s SpeciesDescriptor) bool { return s.Affinity.Matches(p.Category) }) {
			return nil, fmt.Errorf("%w: category %s", ErrEmptyPool, p.Category)
		}
	}

	return &Tables{
		prefixes:      slices.Clone(prefixes),
		roots:         slices.Clone(roots),
		genusSuffixes: slices.Clone(genusSuffixes),
		species:       slices.Clone(species),
	}, nil
}

// MustNew is like New but panics on invalid tables.
func MustNew(prefixes []Morpheme, roots, genusSuffixes []string, species []SpeciesDescriptor) *Tables {
	t, err := New(prefixes, roots, genusSuffixes, species)
	if err != nil {
		panic(fmt.Sprintf("lexicon: %v", err))
	}
	return t
}

func checkUnique(fold cases.Caser, name string, texts []string) error {
	if len(texts) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTable, name)
	}
	seen := make(map[string]int, len(texts))
	for i, text := range texts {
		key := fold.String(strings.Trim(text, "-"))
		if key == "" {
			return fmt.Errorf("%w: %s[%d]", ErrEmptyEntry, name, i)
		}
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s %q at %d and %d", ErrDuplicateEntry, name, text, j, i)
		}
		seen[key] = i
	}
	return nil
}

func (t *Tables) Prefixes() []Morpheme { return slices.Clone(t.prefixes) }

func (t *Tables) Roots() []string { return slices.Clone(t.roots) }

func (t *Tables) GenusSuffixes() []string { return slices.Clone(t.genusSuffixes) }

func (t *Tables) SpeciesDescriptors() []SpeciesDescriptor { return slices.Clone(t.species) }

// SpeciesPool returns, in table order, the descriptors allowed after a prefix
// of category c.
func (t *Tables) SpeciesPool(c Category) []string {
	pool := make([]string, 0, len(t.species))
	for _, s := range t.species {
		if s.Affinity.Matches(c) {
			pool = append(pool, s.Text)
		}
	}
	return pool
}
