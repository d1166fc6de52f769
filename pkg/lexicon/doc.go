// Package lexicon holds the word lists used to build binomial names: genus
// prefixes tagged with a linguistic origin and a semantic category, genus
// roots, genus suffixes, and species descriptors with an optional category
// affinity.
//
// The built-in lists are validated once when the package is initialised;
// duplicate or empty entries make the program panic at start-up instead of
// producing skewed names later. Custom lists go through the same checks:
//
//	tables, err := lexicon.New(prefixes, roots, suffixes, descriptors)
//	if err != nil {
//		// handle errors.Is(err, lexicon.ErrDuplicateEntry) etc.
//	}
//
// A descriptor's Affinity is either AnyCategory or bound to exactly one
// Category via For. Affinity.Matches decides whether the descriptor may follow
// a given prefix.
//
// Tables never change after construction and are safe for concurrent use.
package lexicon
