// Package input runs the keystroke listener: it polls a non-blocking byte
// source and turns recognised keys into commands on the shared state.
package input

import (
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"SplitTimer/control"
	"SplitTimer/terminal"
)

// Source yields one byte per call without blocking. It returns
// terminal.ErrNoInput when nothing is waiting.
type Source interface {
	ReadByte() (byte, error)
}

// Listener translates keystrokes into state mutations.
type Listener struct {
	src   Source
	state *control.State
	poll  time.Duration
	sleep func(time.Duration)
	log   *zap.Logger
}

// NewListener creates a listener that polls src every poll interval.
func NewListener(src Source, state *control.State, poll time.Duration, log *zap.Logger) *Listener {
	return &Listener{
		src:   src,
		state: state,
		poll:  poll,
		sleep: time.Sleep,
		log:   log,
	}
}

// Run polls until it reads the quit key itself. An empty source and end of
// input are both treated as "nothing typed yet". Any other read error stops
// the listener and is returned.
func (l *Listener) Run() error {
	for {
		b, err := l.src.ReadByte()
		switch {
		case err == nil:
			cmd := control.CommandForKey(b)
			if cmd != control.CmdNone {
				l.log.Debug("key", zap.String("command", cmd.String()))
				l.state.Apply(cmd)
			}
			if cmd == control.CmdQuit {
				l.log.Debug("listener stopped")
				return nil
			}
		case errors.Is(err, terminal.ErrNoInput), errors.Is(err, io.EOF):
		default:
			return err
		}
		l.sleep(l.poll)
	}
}
