//go:build unix

package timer

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// MonotonicClock reads CLOCK_MONOTONIC, which is immune to wall-clock
// adjustments.
type MonotonicClock struct{}

// Now implements Clock.
func (MonotonicClock) Now() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("read monotonic clock: %w", err)
	}
	return time.Duration(ts.Nano()), nil
}
