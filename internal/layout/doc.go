// Package layout implements the constraint arithmetic behind the tui layout
// engine: rectangles, per-axis size constraints, proportional distribution of
// a stack's primary axis, and overlay centering.
//
// The functions here are pure and work on plain integers so they can be tested
// independently of any widget tree. Types are re-exported through the root tui
// package for public consumption.
package layout
