//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Input reads single bytes from a descriptor in non-blocking mode.
type Input struct {
	fd     int
	flags  int
	buf    [1]byte
	closed bool
}

// OpenInput switches fd to non-blocking mode, remembering its original file
// status flags for Close.
func OpenInput(fd int) (*Input, error) {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, fmt.Errorf("get descriptor flags: %w", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, fmt.Errorf("set non-blocking mode: %w", err)
	}
	return &Input{fd: fd, flags: flags}, nil
}

// ReadByte returns the next byte, ErrNoInput if none is waiting, or io.EOF
// once the other end is closed. It never blocks.
func (in *Input) ReadByte() (byte, error) {
	for {
		n, err := unix.Read(in.fd, in.buf[:])
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN || err == unix.EWOULDBLOCK:
			return 0, ErrNoInput
		case err != nil:
			return 0, fmt.Errorf("read stdin: %w", err)
		case n == 0:
			return 0, io.EOF
		}
		return in.buf[0], nil
	}
}

// Close restores the original descriptor flags. Safe to call multiple times.
func (in *Input) Close() error {
	if in.closed {
		return nil
	}
	if _, err := unix.FcntlInt(uintptr(in.fd), unix.F_SETFL, in.flags); err != nil {
		return fmt.Errorf("restore descriptor flags: %w", err)
	}
	in.closed = true
	return nil
}
