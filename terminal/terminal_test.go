//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newPipe(t *testing.T) (r, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestClearLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ClearLine(&buf))
	assert.Equal(t, "\x1b[0G\x1b[K", buf.String())
}

func TestRawAttrsClearsOnlyCanonAndEcho(t *testing.T) {
	var orig unix.Termios
	orig.Lflag = unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	orig.Oflag = unix.OPOST
	orig.Iflag = unix.ICRNL

	raw := rawAttrs(orig)

	assert.Zero(t, raw.Lflag&unix.ICANON)
	assert.Zero(t, raw.Lflag&unix.ECHO)
	assert.NotZero(t, raw.Lflag&unix.ISIG)
	assert.NotZero(t, raw.Lflag&unix.IEXTEN)
	assert.Equal(t, orig.Oflag, raw.Oflag)
	assert.Equal(t, orig.Iflag, raw.Iflag)
	assert.EqualValues(t, 1, raw.Cc[unix.VMIN])
	assert.EqualValues(t, 0, raw.Cc[unix.VTIME])

	// The input copy is untouched.
	assert.NotZero(t, orig.Lflag&unix.ICANON)
}

func TestAcquireRejectsNonTerminal(t *testing.T) {
	r, _ := newPipe(t)
	_, err := Acquire(int(r.Fd()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get terminal attributes")
}

func TestWithRawInputRejectsNonTerminal(t *testing.T) {
	r, _ := newPipe(t)
	called := false
	err := WithRawInput(r, func(*Input) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestInputNonBlocking(t *testing.T) {
	r, w := newPipe(t)
	fd := int(r.Fd())

	before, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	require.NoError(t, err)

	in, err := OpenInput(fd)
	require.NoError(t, err)

	_, err = in.ReadByte()
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = w.Write([]byte("sq"))
	require.NoError(t, err)

	b, err := in.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('s'), b)

	b, err = in.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('q'), b)

	_, err = in.ReadByte()
	assert.ErrorIs(t, err, ErrNoInput)

	require.NoError(t, w.Close())
	_, err = in.ReadByte()
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, in.Close())
	require.NoError(t, in.Close())

	after, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	require.NoError(t, err)
	assert.Equal(t, before, after, "descriptor flags must be restored")
}

func TestAcquireRestoresExactSettings(t *testing.T) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		t.Skip("no controlling terminal")
	}
	defer tty.Close()
	fd := int(tty.Fd())

	before, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	require.NoError(t, err)

	m, err := Acquire(fd)
	require.NoError(t, err)

	during, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	require.NoError(t, err)
	assert.Zero(t, during.Lflag&(unix.ICANON|unix.ECHO))

	require.NoError(t, m.Release())
	require.NoError(t, m.Release())

	after, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
	assert.Equal(t, *before, m.original)
}
