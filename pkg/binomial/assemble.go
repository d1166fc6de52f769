package binomial

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/holotype/pkg/lexicon"
)

// AssembleGenus joins a prefix, a root and a suffix into a genus word.
//
// Hyphens are trimmed from the joining edges. The prefix's connector vowel
// (o for Greek, i for Latin) is inserted between prefix and root unless one
// side already supplies a vowel. A vowel-initial suffix replaces the stem's
// final vowel; a consonant-initial suffix after a consonant gets the
// connector. The result is lower case with a capital first letter.
func AssembleGenus(prefix lexicon.Morpheme, root, suffix string) string {
	p := strings.TrimRight(prefix.Text, "-")
	r := strings.Trim(root, "-")
	s := strings.TrimLeft(suffix, "-")
	connector := prefix.Origin.Connector()

	stem := p + r
	if !endsWithVowel(p) && !startsWithVowel(r) {
		stem = p + connector + r
	}

	var genus string
	switch {
	case startsWithVowel(s):
		if endsWithVowel(stem) && len(stem) > 1 {
			_, size := utf8.DecodeLastRuneInString(stem)
			stem = stem[:len(stem)-size]
		}
		genus = stem + s
	case endsWithVowel(stem):
		genus = stem + s
	default:
		genus = stem + connector + s
	}

	return capitalize(strings.ToLower(genus))
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func startsWithVowel(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && isVowel(r)
}

func endsWithVowel(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && isVowel(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
