// Package binomial turns a calendar date, a small number and an optional
// salt into a reproducible two-word pseudo-Latin name, and recovers the date
// and number from such a name.
//
// # Generation
//
// A Generator packs (date, number) into an integer with Encode, permutes it
// with a salt-keyed Feistel network (see package feistel) and reads morpheme
// indices out of the result:
//
//	low 32 bits   -> prefix (bits 0..), root (bits 8..), genus suffix (bits 16..)
//	high 32 bits  -> species descriptor, drawn from the pool matching the
//	                 prefix category
//
// The genus is assembled by AssembleGenus and checked by a quality gate
// (length and pronounceability score, plus phonotactic rules with
// WithStrictPhonotactics). Rejected candidates are rehashed with a
// golden-ratio multiplier for up to MaxAttempts tries; if none passes, the
// first candidate is used anyway, so Generate never fails.
//
//	gen, err := binomial.New(lexicon.Default(), binomial.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	name := gen.Generate(time.Now(), 7, "demo")
//
// # Decoding
//
// Names are not reversible directly; a Decoder regenerates candidates until
// one matches. Candidates are tried in a fixed order: today, then the days
// around today (+1, -1, +2, -2, ... up to WithWindow), then every other day
// of the configured years. Decode accepts a context, and WithMaxCandidates
// caps the work. WithWorkers spreads the exhaustive stage across goroutines
// without changing which match is returned.
//
// The packing is not injective across year boundaries: November and December
// of one year share encodings with January and February of the next, so such
// pairs produce identical names and the decoder reports whichever comes first
// in search order.
package binomial
