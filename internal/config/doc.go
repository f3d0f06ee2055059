// Package config loads, normalizes, and validates mkmovies configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MKMOVIES_FFMPEG. The Config type centralizes every knob the CLI needs:
// scan extensions, the cluster gap threshold, encoder invocation settings,
// and the optional run journal.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extensions, and clear validation errors.
package config
