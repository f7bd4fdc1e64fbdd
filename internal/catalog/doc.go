// Package catalog owns an advising session: one ordered course catalog, the
// two-pass loader that fills it from a line-oriented source, and the queries
// that resolve a course's prerequisites to full records.
//
// Loading always starts from an empty catalog. Pass one parses every line and
// inserts the accepted records; pass two checks every prerequisite reference
// against the complete set, which is why it cannot be folded into pass one.
// Per-line problems and dangling references are collected as Issues and
// returned together; only a source that cannot be opened or read fails the
// load as a whole.
package catalog
