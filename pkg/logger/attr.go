package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RunIDKey is the attribute key for invocation identifiers.
const RunIDKey = "run_id"


// Name records a generated or decoded binomial name.
func Name(name string) slog.Attr {
	return slog.String("name", name)
}

// Salt records the salt. An empty salt is logged as "-" so that it stays
// visible in text output.
func Salt(salt string) slog.Attr {
	if salt == "" {
		salt = "-"
	}
	return slog.String("salt", salt)
}

// Date records a calendar date as YYYY-MM-DD.
func Date(d time.Time) slog.Attr {
	return slog.String("date", d.Format(time.DateOnly))
}

// Number records the index paired with a date.
func Number(n uint32) slog.Attr {
	return slog.Uint64("number", uint64(n))
}

// Stage records the decoder search stage.
func Stage(stage string) slog.Attr {
	return slog.String("stage", stage)
}

// Candidates records how many candidates a search examined.
func Candidates(n int) slog.Attr {
	return slog.Int("candidates", n)
}

// Attempts records how many quality-gate attempts a generation used.
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
