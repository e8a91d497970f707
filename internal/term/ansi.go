// Package term provides terminal escape-sequence primitives and dimension
// tracking for the transcript renderer. Sequences are plain ANSI/VT: the
// renderer stays on the normal screen buffer so native scrollback keeps
// working.
package term

import "strings"

const (
	// beginSync and endSync are the synchronized-update markers
	// (DECSET/DECRST 2026). A burst of writes between them is applied as
	// one visual frame. Terminals that do not implement the mode ignore
	// the sequences.
	beginSync = "\x1b[?2026h"
	endSync   = "\x1b[?2026l"

	// clearAll clears the scrollback buffer, the visible screen, and homes
	// the cursor. The scrollback clear matters: a full-history redraw must
	// not leave a stale copy reachable by scrolling up.
	clearAll = "\x1b[3J\x1b[2J\x1b[H"

	eraseLine = "\x1b[2K"
	cursorUp  = "\x1b[1A"
)

// BeginSynchronized returns the begin-atomic-update marker.
func BeginSynchronized() string { return beginSync }

// EndSynchronized returns the end-atomic-update marker.
func EndSynchronized() string { return endSync }

// ClearScreenAndScrollback returns the sequence that clears the visible
// screen and the scrollback buffer and homes the cursor.
func ClearScreenAndScrollback() string { return clearAll }

// EraseLines returns the sequence that erases count lines ending at the
// topmost of them: erase the current line, cursor up, erase, and so on,
// finishing with a carriage return. This exactly reverses a transient write
// of count lines without touching the scrollback above it.
func EraseLines(count int) string {
	if count <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(eraseLine)
		if i < count-1 {
			b.WriteString(cursorUp)
		}
	}
	b.WriteString("\r")
	return b.String()
}
