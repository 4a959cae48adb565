//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Mode holds the line discipline settings captured before the terminal was
// switched to non-canonical mode.
type Mode struct {
	fd       int
	original unix.Termios
	active   bool
}

// Acquire captures the current settings of fd and installs a copy with
// canonical mode and echo disabled, so keystrokes arrive one at a time and
// are not printed.
func Acquire(fd int) (*Mode, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get terminal attributes: %w", err)
	}

	raw := rawAttrs(*orig)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return &Mode{fd: fd, original: *orig, active: true}, nil
}

// Release restores the captured settings. Safe to call multiple times.
func (m *Mode) Release() error {
	if !m.active {
		return nil
	}
	if err := unix.IoctlSetTermios(m.fd, ioctlWriteTermios, &m.original); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	m.active = false
	return nil
}

// rawAttrs clears ICANON and ECHO only. Output processing and signal keys
// are left alone so "\n" still returns the carriage and Ctrl-C still works.
func rawAttrs(t unix.Termios) unix.Termios {
	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// WithRawInput runs fn with f in non-canonical, non-echoing, non-blocking
// mode. The descriptor flags and the terminal settings are restored when fn
// returns, whether it succeeds, fails or panics. Restore failures are joined
// with fn's error.
func WithRawInput(f *os.File, fn func(in *Input) error) (err error) {
	// Fd switches f to blocking mode, so it must come before OpenInput.
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%s is not a terminal", f.Name())
	}

	mode, err := Acquire(fd)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := mode.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	in, err := OpenInput(fd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return fn(in)
}
