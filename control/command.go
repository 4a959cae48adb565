// Package control defines the commands the input listener can issue and the
// shared state word through which the render loop observes them. The listener
// only ever sets bits; the render loop is the only writer that clears or
// counts, so no lock is needed.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdNone CommandType = iota
	CmdSplit
	CmdQuit
)

// Key bindings.
const (
	KeyQuit  byte = 'q'
	KeySplit byte = 's'
)

func (c CommandType) String() string {
	switch c {
	case CmdSplit:
		return "split"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// CommandForKey maps a raw keystroke to a command. Unbound keys yield CmdNone.
func CommandForKey(b byte) CommandType {
	switch b {
	case KeyQuit:
		return CmdQuit
	case KeySplit:
		return CmdSplit
	default:
		return CmdNone
	}
}
