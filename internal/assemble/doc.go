// Package assemble drives a full mkmovies run: discover images, cluster them
// by modification-time gaps, and encode one movie per cluster.
//
// A run holds a lock file in the target directory so two concurrent runs
// cannot race on movie numbering. Groups are processed strictly in sequence;
// by default a failed encode is recorded and the batch continues.
package assemble
