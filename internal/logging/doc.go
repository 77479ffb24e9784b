// Package logging assembles structured slog loggers and formatting helpers used
// across fixclean.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the run ID and the phase being executed. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Output defaults to stderr: stdout belongs to command results such as the
// length line printed by a clean run.
package logging
