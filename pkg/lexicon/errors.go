package lexicon

import "errors"

var (
	// ErrEmptyTable is returned when one of the word lists has no entries.
	ErrEmptyTable = errors.New("lexicon: empty table")

	// ErrEmptyEntry is returned for blank or hyphen-only texts.
	ErrEmptyEntry = errors.New("lexicon: empty entry")

	// ErrDuplicateEntry is returned when two texts in one list fold to the same value.
	ErrDuplicateEntry = errors.New("lexicon: duplicate entry")

	// ErrEmptyPool is returned when a prefix category has no usable species descriptor.
	ErrEmptyPool = errors.New("lexicon: no species descriptor for category")

	// ErrUnsetAffinity is returned for descriptors built from the zero Affinity.
	ErrUnsetAffinity = errors.New("lexicon: species descriptor without affinity")
)
