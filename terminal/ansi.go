package terminal

import "io"

// Pre-allocated ANSI sequence fragments
var (
	csiColumnZero = []byte("\x1b[0G")
	csiClearEOL   = []byte("\x1b[K")
)

// ClearLine moves the cursor to column 0 and erases to end of line.
func ClearLine(w io.Writer) error {
	if _, err := w.Write(csiColumnZero); err != nil {
		return err
	}
	_, err := w.Write(csiClearEOL)
	return err
}
