// Package phonotactics judges how a generated genus sounds.
//
// Two independent checks are provided. Valid, HasBadCluster and CheckGenus
// apply rule lists: endings that never close a Greco-Latin word, endings that
// always do, and consonant clusters that are awkward anywhere in a word.
// SuffixCompatible guards the "yx", "ix" and "ax" suffixes, which need a
// vowel before them.
//
// Score is a graded heuristic in [0, 1]:
//
//	1 - (cluster + alternation + length + difficulty) / 4
//
// where every term is a penalty between 0 and 1. "Homo sapiens" scores close
// to 1, "Strptxthclm" scores below 0.5.
//
// All functions are pure and safe for concurrent use.
package phonotactics
