package binomial

import "errors"

var (
	// ErrNilTables is returned by New when no lexical tables are given.
	ErrNilTables = errors.New("binomial: nil tables")

	// ErrNoUsableSuffix is returned by New when every genus suffix is one of
	// the excluded x-endings.
	ErrNoUsableSuffix = errors.New("binomial: no usable genus suffix")

	// ErrEmptyName is returned by Decode for a blank name.
	ErrEmptyName = errors.New("binomial: empty name")

	// ErrNotFound is returned by Decode when no candidate in the configured
	// search space produces the name.
	ErrNotFound = errors.New("binomial: name not found")

	// ErrBudgetExhausted is returned by Decode when the candidate cap set with
	// WithMaxCandidates is reached before a match.
	ErrBudgetExhausted = errors.New("binomial: candidate budget exhausted")

	// ErrCancelled wraps the context error when a decode is interrupted.
	ErrCancelled = errors.New("binomial: decode cancelled")
)
