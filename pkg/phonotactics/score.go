package phonotactics

import (
	"strings"
	"unicode"
)

// Each sub-score contributes at most this much penalty.
const maxPenalty = 1.0

var difficultSubstrings = []string{
	"xth", "pht", "chth", "rrh", "ckh", "tzsch", "tsch", "psch", "chs", "ths", "scht",
}

// Score estimates how easy s is to pronounce, from 0 (hard) to 1 (easy).
// It averages four penalties: the longest consonant run, the longest run of
// same-class letters, the overall length, and known difficult substrings.
// An empty string scores 0.
func Score(s string) float64 {
	lower := strings.ToLower(s)
	chars := []rune(lower)
	if len(chars) == 0 {
		return 0
	}

	checks := []float64{
		clusterPenalty(chars),
		alternationPenalty(chars),
		lengthPenalty(len(chars)),
		difficultyPenalty(lower),
	}

	var penalty, total float64
	for _, p := range checks {
		penalty += p
		total += maxPenalty
	}
	return 1 - penalty/total
}

// LongestConsonantRun returns the length of the longest run of consonant
// letters in s. Non-letters end a run; "y" counts as a vowel.
func LongestConsonantRun(s string) int {
	longest, current := 0, 0
	for _, c := range strings.ToLower(s) {
		if unicode.IsLetter(c) && !isScoringVowel(c) {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest
}

func clusterPenalty(chars []rune) float64 {
	switch n := LongestConsonantRun(string(chars)); {
	case n <= 2:
		return 0
	case n == 3:
		return 0.3
	case n == 4:
		return 0.6
	default:
		return 1.0
	}
}

// alternationPenalty punishes runs of vowels or consonants. Non-letters are
// skipped, so a space between words does not reset the run.
func alternationPenalty(chars []rune) float64 {
	if len(chars) < 2 {
		return 0
	}

	run, longest := 0, 0
	lastVowel := isScoringVowel(chars[0])
	for _, c := range chars[1:] {
		if !unicode.IsLetter(c) {
			continue
		}
		vowel := isScoringVowel(c)
		if vowel == lastVowel {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
		lastVowel = vowel
	}

	return min(float64(longest)*0.15, maxPenalty)
}

func lengthPenalty(n int) float64 {
	switch {
	case n <= 15:
		return 0
	case n <= 18:
		return 0.2
	case n <= 22:
		return 0.4
	default:
		return 0.8
	}
}

func difficultyPenalty(lower string) float64 {
	matches := 0
	for _, d := range difficultSubstrings {
		if strings.Contains(lower, d) {
			matches++
		}
	}
	return min(float64(matches)*0.3, maxPenalty)
}

func isScoringVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
