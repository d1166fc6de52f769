// Package display formats decoded names for the terminal.
//
// Relative and Dated phrase a calendar date against today ("4.1.2026
// (yesterday)"). Printer writes the name as a bold, underlined header when
// the output is a terminal, followed by a provenance line:
//
//	Vermigos hybridus
//	[test_salt] No. 42, dated 4.1.2026 (today)
//
// Names decoded without a salt use "Op." instead of a bracketed salt and
// "No.".
package display
