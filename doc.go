// Package tui provides a minimal terminal UI toolkit for Go.
//
// Users import this single package for the complete public API: the widget
// tree and its size constraints, the layout engine, the double-buffered
// frame buffer with its differential renderer, and the fixed-tick frame
// driver that ties them to a terminal.
package tui
