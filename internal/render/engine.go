package render

import (
	"strings"

	"github.com/bporterfield/watch-claude-think/internal/term"
)

// Frame is one render request: the newly available permanent content since
// the last frame (a delta, possibly empty), the complete current status text
// (never a delta), and the terminal dimensions at the time of the request.
type Frame struct {
	// Increment is the newly formatted message block(s) since the last
	// frame. The engine owns accumulation; callers never resend old
	// content.
	Increment string
	// Status is the full transient footer text. The engine diffs it
	// against what was last shown.
	Status string
	// Columns and Rows are the current terminal dimensions.
	Columns int
	Rows    int
}

// Engine owns the transcript render state: the accumulated permanent text
// and the status text currently on screen. Given a frame it computes the
// minimal correct operation sequence.
//
// Already-rendered history is treated as an opaque append-only string; it is
// only ever reconstructed wholesale on resize, never patched. The engine is
// not safe for concurrent use — confine all calls to one goroutine.
type Engine struct {
	interactive bool

	// history is every increment ever received, blocks separated by one
	// blank line. Grows monotonically, never mutated retroactively.
	history string
	// shownStatus is the status text currently visible, including its
	// trailing newline. Empty when no status is shown.
	shownStatus string
	cols        int
	rows        int
}

// NewEngine creates an engine for a fresh transcript view. interactive is
// determined once at startup; when false every frame degrades to plain
// streaming of the increments.
func NewEngine(cols, rows int, interactive bool) *Engine {
	return &Engine{
		interactive: interactive,
		cols:        cols,
		rows:        rows,
	}
}

// History returns the accumulated permanent text.
func (e *Engine) History() string { return e.history }

// ShownStatus returns the status text currently considered on screen,
// including its trailing newline, or "" when none is shown.
func (e *Engine) ShownStatus() string { return e.shownStatus }

// Render processes one frame and returns the operations to apply.
func (e *Engine) Render(f Frame) []Op {
	// Redirected output has no cursor: just stream new content.
	if !e.interactive {
		if f.Increment == "" {
			return nil
		}
		return []Op{Write{Text: f.Increment, Scrollback: true}}
	}

	if f.Columns != e.cols || f.Rows != e.rows {
		return e.renderResize(f)
	}

	hasIncrement := strings.TrimSpace(f.Increment) != ""

	// Idle short-circuit: nothing new and the status on screen is already
	// byte-identical. Must not touch the terminal at all.
	if !hasIncrement && f.Status+"\n" == e.shownStatus {
		return nil
	}

	var ops []Op

	// Static phase: remove the old status region before new permanent
	// content pushes it down, then append the increment to scrollback.
	tracked := e.shownStatus
	if hasIncrement {
		if tracked != "" {
			ops = append(ops, ClearLines{Count: term.LineCount(tracked, e.cols)})
			tracked = ""
		}
		separator := ""
		if e.history != "" {
			separator = "\n"
		}
		e.history += separator + f.Increment
		ops = append(ops, Write{Text: separator + f.Increment, Scrollback: true})
	}

	// Dynamic phase: rewrite the status unless the exact same text is
	// still standing from the previous frame.
	newStatus := f.Status + "\n"
	if newStatus != tracked {
		if tracked != "" {
			ops = append(ops, ClearLines{Count: term.LineCount(tracked, e.cols)})
		}
		ops = append(ops,
			Write{Text: f.Status, Scrollback: false},
			Write{Text: "\n", Scrollback: false},
		)
		e.shownStatus = newStatus
	}

	if len(ops) == 0 {
		return nil
	}
	return wrapAtomic(ops)
}

// renderResize handles a dimension change with a full redraw: clear screen
// and scrollback, then rewrite the entire accumulated history. After a full
// clear there is no previous transient region to protect, so the status is
// part of the one-shot redraw; the next non-resize frame re-establishes the
// scrollback/transient split.
func (e *Engine) renderResize(f Frame) []Op {
	if f.Increment != "" {
		separator := ""
		if e.history != "" {
			separator = "\n"
		}
		e.history += separator + f.Increment
	}

	ops := []Op{
		BeginSync{},
		ClearScreen{},
		Write{Text: e.history, Scrollback: true},
		Write{Text: f.Status, Scrollback: true},
		Write{Text: "\n", Scrollback: true},
		EndSync{},
	}

	e.shownStatus = f.Status + "\n"
	e.cols = f.Columns
	e.rows = f.Rows
	return ops
}

// wrapAtomic brackets a non-empty operation list in synchronized-update
// markers so the whole frame applies without flicker.
func wrapAtomic(ops []Op) []Op {
	wrapped := make([]Op, 0, len(ops)+2)
	wrapped = append(wrapped, BeginSync{})
	wrapped = append(wrapped, ops...)
	wrapped = append(wrapped, EndSync{})
	return wrapped
}
