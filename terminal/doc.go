// Package terminal switches stdin into non-canonical, non-echoing,
// non-blocking mode for the lifetime of a call and restores the original
// configuration afterwards, and provides the ANSI sequences used to redraw a
// single status line.
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
// Restoration runs on every return path of WithRawInput but is not
// signal-safe: a SIGKILL leaves the terminal as it was during the run.
package terminal
