package control

import "sync/atomic"

// Layout of the state word.
//
//	bit 7     quit requested
//	bit 6     new split requested
//	bits 0-5  split index
const (
	quitBit   uint32 = 0x80
	splitBit  uint32 = 0x40
	indexMask uint32 = 0x3f
)

// MaxSplitIndex is the largest split index the state word can hold.
const MaxSplitIndex = int(indexMask)

// Snapshot is a point-in-time copy of the state word.
type Snapshot uint32

// QuitRequested reports whether the listener has read a quit key.
func (s Snapshot) QuitRequested() bool { return uint32(s)&quitBit != 0 }

// SplitRequested reports whether a new split is pending.
func (s Snapshot) SplitRequested() bool { return uint32(s)&splitBit != 0 }

// SplitIndex returns the zero-based index of the current split.
func (s Snapshot) SplitIndex() int { return int(uint32(s) & indexMask) }

// State is the command cell shared by the listener and the render loop.
// The zero value is ready to use and represents split 1 running.
type State struct {
	word atomic.Uint32
}

// Load returns the current state.
func (s *State) Load() Snapshot {
	return Snapshot(s.word.Load())
}

// Apply records a command. Setting an already-set flag has no effect.
func (s *State) Apply(cmd CommandType) {
	switch cmd {
	case CmdQuit:
		s.word.Or(quitBit)
	case CmdSplit:
		s.word.Or(splitBit)
	}
}

// AdvanceSplit increments the split index and clears the pending split flag in
// one step. It reports false and leaves the word untouched when the index is
// already at MaxSplitIndex. Only the render loop may call it.
func (s *State) AdvanceSplit() (int, bool) {
	for {
		old := s.word.Load()
		idx := old & indexMask
		if idx == indexMask {
			return int(idx), false
		}
		next := (old&^(indexMask|splitBit) | (idx + 1))
		if s.word.CompareAndSwap(old, next) {
			return int(idx + 1), true
		}
	}
}
