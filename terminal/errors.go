package terminal

import "errors"

// ErrNoInput is returned by Input.ReadByte when no byte is waiting.
var ErrNoInput = errors.New("no input available")
