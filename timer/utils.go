package timer

import (
	"fmt"
	"time"
)

// HMS is a whole-second duration split into hours, minutes and seconds.
// Hours are unbounded.
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose truncates d to whole seconds and splits it into hours, minutes and
// seconds. Negative durations are treated as zero.
func Decompose(d time.Duration) HMS {
	sec := int64(d / time.Second)
	if sec < 0 {
		sec = 0
	}
	return HMS{
		Hours:   sec / 3600,
		Minutes: (sec % 3600) / 60,
		Seconds: sec % 60,
	}
}

// FormatTime converts a duration into a HH:MM:SS string format.
func FormatTime(d time.Duration) string {
	t := Decompose(d)
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}
