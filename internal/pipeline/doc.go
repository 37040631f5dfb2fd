// Package pipeline runs whole conversions: load a message set, assemble the
// DFDL tree, render it and write it out.
//
// A Runner is safe for concurrent use; every run works on its own trees.
// Batch runs fan out over an errgroup bounded by a worker limit, and Check
// regenerates a schema against an existing file to report drift.
package pipeline
