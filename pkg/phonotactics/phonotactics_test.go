package phonotactics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/holotype/pkg/phonotactics"
)

func TestValid(t *testing.T) {
	t.Run("valid endings", func(t *testing.T) {
		for _, g := range []string{"Hydrocephalus", "Neuromyster", "Chronoptera", "Morphogen", "Neohelix", "Archaeoryx"} {
			assert.True(t, phonotactics.Valid(g), g)
		}
	})

	t.Run("invalid endings", func(t *testing.T) {
		for _, g := range []string{"Ectoalimentnx", "Angustirenps", "Heptalymphnx", "Gastrokt", "Morphonx", "Chronokx", "Lithomph"} {
			assert.False(t, phonotactics.Valid(g), g)
		}
	})

	t.Run("falls back to the last letter", func(t *testing.T) {
		assert.True(t, phonotactics.Valid("Tetral"))
		assert.False(t, phonotactics.Valid("Tetrab"))
		assert.False(t, phonotactics.Valid("Mesoch"))
	})

	t.Run("short words", func(t *testing.T) {
		assert.True(t, phonotactics.Valid(""))
		assert.True(t, phonotactics.Valid("x"))
	})
}

func TestSuffixCompatible(t *testing.T) {
	tests := []struct {
		stem, suffix string
		want         bool
	}{
		{"soma", "yx", true},
		{"tela", "yx", true},
		{"ren", "yx", false},
		{"aliment", "yx", false},
		{"aliment", "-ix", false},
		{"Cephal", "AX", false},
		{"ren", "us", true},
		{"aliment", "ma", true},
		{"cephal", "us", true},
	}

	for _, tt := range tests {
		t.Run(tt.stem+"+"+tt.suffix, func(t *testing.T) {
			assert.Equal(t, tt.want, phonotactics.SuffixCompatible(tt.stem, tt.suffix))
		})
	}
}

func TestNeedsVowelStem(t *testing.T) {
	for _, s := range []string{"yx", "-ix", "AX"} {
		assert.True(t, phonotactics.NeedsVowelStem(s), s)
	}
	for _, s := range []string{"us", "ex", "x", ""} {
		assert.False(t, phonotactics.NeedsVowelStem(s), s)
	}
}

func TestHasBadCluster(t *testing.T) {
	assert.True(t, phonotactics.HasBadCluster("Lymphnodus"))
	assert.True(t, phonotactics.HasBadCluster("Deutschia"))
	assert.True(t, phonotactics.HasBadCluster("Xanthoxthus"))
	assert.False(t, phonotactics.HasBadCluster("Hydrocephalus"))
	assert.False(t, phonotactics.HasBadCluster(""))

	t.Run("only three and four letter clusters count", func(t *testing.T) {
		assert.False(t, phonotactics.HasBadCluster("Fleschtus"))
		assert.True(t, phonotactics.HasBadCluster("Ritzschia"))
		assert.True(t, phonotactics.HasBadCluster("Lamphnus"))
		assert.False(t, phonotactics.HasBadCluster("ph"))
	})
}

func TestCheckGenus(t *testing.T) {
	assert.True(t, phonotactics.CheckGenus("Hydrocephalus"))
	assert.False(t, phonotactics.CheckGenus("Gastrokt"))
	assert.False(t, phonotactics.CheckGenus("Lymphnodus"))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"Homo sapiens", 0.9625},
		{"Canis lupus", 0.9625},
		{"Pterodactyl", 0.9625},
		{"Hydrocephalus", 0.9625},
		{"Strptxthclm", 0.425},
		{"Aaaaaeeeeeiiii", 0.75},
		{"Streptoschlerox", 0.7375},
		{"Chthonopsychrophthalmus", 0.3875},
		{"a", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, phonotactics.Score(tt.name), 1e-9)
		})
	}

	t.Run("hard names score lower", func(t *testing.T) {
		assert.Less(t, phonotactics.Score("Strptxthclm"), phonotactics.Score("Homo sapiens"))
		assert.Greater(t, phonotactics.Score("Felis catus"), 0.7)
		assert.Less(t, phonotactics.Score("Streptoschlerox"), 0.9)
		assert.Greater(t, phonotactics.Score("Pterodactyl"), 0.5)
	})

	t.Run("bounded", func(t *testing.T) {
		for _, s := range []string{"bcdfghjklmnpqrstvwxz", "aeiouaeiouaeiouaeiouaeiou", "xthphtchthrrhckhtzsch"} {
			score := phonotactics.Score(s)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})
}

func TestLongestConsonantRun(t *testing.T) {
	assert.Equal(t, 0, phonotactics.LongestConsonantRun(""))
	assert.Equal(t, 0, phonotactics.LongestConsonantRun("aeiouy"))
	assert.Equal(t, 2, phonotactics.LongestConsonantRun("Hydrocephalus"))
	assert.Equal(t, 4, phonotactics.LongestConsonantRun("Streptoschlerox"))
	assert.Equal(t, 3, phonotactics.LongestConsonantRun("str ptk"))
}
