package binomial

import (
	"log/slog"
	"time"
)

// Option configures a Generator.
type Option func(*Generator)

// WithStrictPhonotactics adds the phonotactic rules to the quality gate: the
// genus must have a legal ending, no forbidden cluster and no consonant run
// longer than Config.MaxConsonantCluster.
func WithStrictPhonotactics() Option {
	return func(g *Generator) { g.strict = true }
}

// WithCache memoizes generated names in an LRU of the given size.
// Non-positive sizes disable the memo.
func WithCache(size int) Option {
	return func(g *Generator) { g.cacheSize = size }
}

// WithLogger sets the logger used by the generator and its decoders.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithClock sets the source of "today" for the nearby search stages.
func WithClock(now func() time.Time) DecoderOption {
	return func(d *Decoder) {
		if now != nil {
			d.now = now
		}
	}
}

// WithWindow sets how many days either side of today are searched before
// the exhaustive scan. Negative values are treated as zero.
func WithWindow(days int) DecoderOption {
	return func(d *Decoder) { d.window = max(days, 0) }
}

// WithMaxCandidates caps the number of candidates a single Decode examines.
// Zero means no cap.
func WithMaxCandidates(n int) DecoderOption {
	return func(d *Decoder) { d.maxCandidates = max(n, 0) }
}

// WithWorkers splits the exhaustive stage by year across n goroutines.
// The match returned is still the first in canonical order.
func WithWorkers(n int) DecoderOption {
	return func(d *Decoder) { d.workers = max(n, 1) }
}
