// Package logger builds *slog.Logger values from functional options.
//
// New defaults to JSON records at INFO level on stdout. Options switch the
// format, level and destination, attach static attributes, and register
// context extractors that copy values from the context of InfoContext and
// friends into every record:
//
//	log := logger.New(
//		logger.WithCLI("holotype", verbose),
//		logger.WithContextValue(logger.RunIDKey, runIDKey{}),
//	)
//	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
//	log.DebugContext(ctx, "generated", logger.Name(name))
//
// The attr helpers (Name, Salt, Date, Number, Stage, Candidates, ...) keep
// attribute keys consistent across packages. Library code that accepts an
// optional logger falls back to Discard.
package logger
