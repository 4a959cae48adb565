// Package timer contains the session clock: the monotonic start of the
// session and of the current split, and the elapsed-time arithmetic the
// render loop displays.
//
// Maintenance notes:
//   - Session is owned by the render loop goroutine and is not safe for
//     concurrent use. Commands from the keyboard reach the loop through
//     control.State, never through this package.
//   - Timestamps are offsets on a monotonic clock, never wall-clock times, so
//     elapsed values cannot jump when the system time is adjusted.
package timer

import (
	"fmt"
	"time"
)

// Clock reads a monotonic time source. The returned offset only has meaning
// relative to other readings of the same clock.
type Clock interface {
	Now() (time.Duration, error)
}

// Session tracks the start of the session and the start of the current split.
type Session struct {
	clock      Clock
	start      time.Duration
	splitStart time.Duration
}

// NewSession reads the clock once and starts both the session and the first
// split at that instant.
func NewSession(c Clock) (*Session, error) {
	now, err := c.Now()
	if err != nil {
		return nil, fmt.Errorf("read start time: %w", err)
	}
	return &Session{clock: c, start: now, splitStart: now}, nil
}

// Now reads the session's clock.
func (s *Session) Now() (time.Duration, error) {
	now, err := s.clock.Now()
	if err != nil {
		return 0, fmt.Errorf("read current time: %w", err)
	}
	return now, nil
}

// Elapsed returns the time spent in the current split and since the session
// started, both truncated to whole seconds.
func (s *Session) Elapsed(now time.Duration) (split, total time.Duration) {
	split = (now - s.splitStart).Truncate(time.Second)
	total = (now - s.start).Truncate(time.Second)
	return split, total
}

// StartSplit begins a new split at now. The session start is unaffected.
func (s *Session) StartSplit(now time.Duration) {
	s.splitStart = now
}
