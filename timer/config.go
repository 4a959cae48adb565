package timer

import "time"

// Timing defaults. The tick bounds display latency and the poll interval
// bounds how long a keystroke can wait in the input queue.
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultPollInterval = 50 * time.Millisecond
)
