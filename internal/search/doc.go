// Package search implements the line scanner behind minigrep.
//
// A search runs as a short linear pipeline:
//
//	cfg, err := search.NewConfig(os.Args, os.LookupEnv)   // configuration parsing
//	contents, err := search.LoadFile(cfg.Filename)        // file loading
//	lines := search.Filter(cfg, contents)                 // substring filtering
//
// Runner ties the three stages together and prints the matching lines.
//
// # Case sensitivity
//
// Matching is case-sensitive unless the CASE_SENSITIVE environment variable
// is present. Its value is ignored. When it is present, both the query and
// each line are lowercased with strings.ToLower before comparison, and the
// original line text is returned.
//
// # Errors
//
// Every failure is reported as an *Error carrying one of two kinds:
// KindInvalidArguments for a short argument list and KindIO for anything
// that goes wrong while reading the file or writing results.
package search
