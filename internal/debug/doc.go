// Package debug provides optional file-based debug logging.
//
// The terminal belongs to the renderer while an app runs, so log output
// cannot go to stdout or stderr. When Init is given a file path, records are
// appended to that file through a charmbracelet/log Logger. Otherwise the
// shared Logger discards everything.
//
// The MINITUI_DEBUG environment variable names a log file when no path is
// configured explicitly.
package debug
