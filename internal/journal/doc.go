// Package journal persists run history in a local SQLite database.
//
// The journal is optional and purely additive: a run records one row per
// invocation and one row per attempted movie, so `mkmovies history` can show
// what earlier runs produced. Pipeline behavior never depends on it.
package journal
