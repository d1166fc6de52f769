// Package validator builds declarative validation out of small Rule values.
//
// A Rule couples a Check func with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates every failure
// into ValidationErrors, which implements error, so several field problems
// come back from a single call:
//
//	err := validator.Apply(
//		validator.Less("year_start", cfg.YearStart, "year_end", cfg.YearEnd),
//		validator.MinNum("max_consonant_cluster", cfg.MaxConsonantCluster, 2),
//		validator.RangeNum("min_pronounceability_score", cfg.MinScore, 0.0, 1.0),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		for _, field := range errs.Fields() {
//			// ...
//		}
//	}
//
// The package keeps no state and is safe for concurrent use.
package validator
