// Package diag carries the diagnostics produced while resolving compiler
// options: a severity, a stable code and a human-readable message.
//
// Producers talk to a Reporter. The package ships a few implementations:
//
//   - Bag collects diagnostics for later inspection (tests, exit codes).
//   - WriterReporter prints them, optionally colored, to an io.Writer.
//   - SlogReporter forwards them to a *slog.Logger.
//   - DedupReporter drops exact repeats before handing them on.
//   - MultiReporter fans out to several reporters.
//
// A host usually combines a Bag (to decide whether the run failed) with a
// WriterReporter (to show the user what went wrong).
package diag
