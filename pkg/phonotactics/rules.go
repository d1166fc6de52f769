package phonotactics

import (
	"slices"
	"strings"
)

var (
	badEndings = []string{
		"nx", "ps", "ks", "ts", "ds", "bs", "gs", "pt", "kt", "bt", "dt", "gt",
		"px", "kx", "tx", "dx", "bx", "gx", "nk", "ng", "nq", "mph", "nph", "nth",
		"xc", "xp", "xk", "xt", "lx", "rx", "mnx", "mpx", "ntx", "nkx",
	}

	goodEndings = []string{
		"us", "os", "is", "es", "as", "um", "on", "en", "er", "or",
		"a", "e", "o", "i", "u", "n", "r", "s", "m", "l",
		"yx", "ix", "ax", "ex", "ox", "ma",
	}

	// Clusters are matched against letter windows of their own length.
	badClusters = []string{
		"nph", "mph", "nth", "nkh", "xth", "pht", "ckh", "tzs", "tsc", "psc", "chs",
		"mphn", "nthn", "tsch", "psch",
	}

	vowelOnlySuffixes = []string{"yx", "ix", "ax"}
)

const terminalLetters = "aeiounrsml"

// Valid reports whether genus has an acceptable ending. Words shorter than two
// letters are always valid.
func Valid(genus string) bool {
	lower := strings.ToLower(genus)
	if len([]rune(lower)) < 2 {
		return true
	}

	for _, e := range badEndings {
		if strings.HasSuffix(lower, e) {
			return false
		}
	}
	for _, e := range goodEndings {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}

	return strings.ContainsRune(terminalLetters, lastRune(lower))
}

// SuffixCompatible reports whether suffix may follow stem. The "yx", "ix" and
// "ax" suffixes need a vowel-final stem.
func SuffixCompatible(stem, suffix string) bool {
	if NeedsVowelStem(suffix) {
		return endsWithVowel(strings.ToLower(stem))
	}
	return true
}

// NeedsVowelStem reports whether suffix is one of the x-endings that only
// attach cleanly to a vowel. A leading hyphen is ignored.
func NeedsVowelStem(suffix string) bool {
	s := strings.ToLower(strings.TrimLeft(suffix, "-"))
	return slices.Contains(vowelOnlySuffixes, s)
}

// HasBadCluster reports whether any three or four letter window of s is a
// hard consonant cluster.
func HasBadCluster(s string) bool {
	letters := []rune(strings.ToLower(s))
	for _, c := range badClusters {
		size := len(c)
		for i := 0; i+size <= len(letters); i++ {
			if string(letters[i:i+size]) == c {
				return true
			}
		}
	}
	return false
}

// CheckGenus combines the ending and interior cluster checks.
func CheckGenus(genus string) bool {
	return Valid(genus) && !HasBadCluster(genus)
}

func endsWithVowel(s string) bool {
	switch lastRune(s) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}
