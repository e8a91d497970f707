// Package render implements the transcript rendering engine: it decides, for
// every new message or terminal-dimension change, exactly which terminal
// operations to emit so that historical output survives in native scrollback
// while the transient status footer is rewritten in place.
package render

// Op is one abstract terminal operation. Ops are produced as an ordered
// sequence by the Engine and consumed exactly once by the Executor; they
// carry no state between frames.
type Op interface {
	isOp()
}

// Write appends text at the cursor. Scrollback marks permanent transcript
// content that must remain reachable when the user scrolls up; status writes
// carry Scrollback=false and are later removed with ClearLines before any
// permanent content can push them into history. The bytes written are the
// same either way — the flag records which erase discipline applies.
type Write struct {
	Text       string
	Scrollback bool
}

// WriteErr writes text to the error stream instead of the terminal.
type WriteErr struct {
	Text string
}

// ClearLines erases Count lines ending at the cursor's current line, leaving
// the cursor at column zero of the topmost erased line.
type ClearLines struct {
	Count int
}

// ClearScreen clears the visible screen and the scrollback buffer.
type ClearScreen struct{}

// BeginSync opens a synchronized update: a compliant terminal buffers all
// writes until the matching EndSync and applies them as one visual frame.
type BeginSync struct{}

// EndSync closes a synchronized update.
type EndSync struct{}

func (Write) isOp()       {}
func (WriteErr) isOp()    {}
func (ClearLines) isOp()  {}
func (ClearScreen) isOp() {}
func (BeginSync) isOp()   {}
func (EndSync) isOp()     {}
