// Package encode wraps ffmpeg invocations that turn an ordered list of
// images into a single movie file.
//
// The client writes each group's file list to a temporary concat-demuxer
// manifest, runs ffmpeg once per group, and removes the manifest on every
// exit path. Command execution sits behind the Executor interface so the
// grouping and driver logic stay unit-testable without a real encoder.
package encode
