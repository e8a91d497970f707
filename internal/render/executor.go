package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bporterfield/watch-claude-think/internal/term"
)

// Executor applies operation lists to the output streams. All terminal ops
// for one frame land in a single buffered flush so a partially painted frame
// is never visible; error-stream ops flush the terminal buffer first to
// preserve ordering between the two streams.
type Executor struct {
	out    *bufio.Writer
	errOut io.Writer
}

// NewExecutor creates an executor writing terminal ops to out and WriteErr
// ops to errOut.
func NewExecutor(out, errOut io.Writer) *Executor {
	return &Executor{
		out:    bufio.NewWriter(out),
		errOut: errOut,
	}
}

// Apply executes ops in order. An empty list writes nothing. A write failure
// is returned as-is: a terminal that cannot be written to has no recovery
// path, so callers treat it as fatal rather than retrying.
func (e *Executor) Apply(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	for _, op := range ops {
		var err error
		switch op := op.(type) {
		case Write:
			_, err = e.out.WriteString(op.Text)
		case WriteErr:
			if err = e.out.Flush(); err == nil {
				_, err = fmt.Fprint(e.errOut, op.Text)
			}
		case ClearLines:
			_, err = e.out.WriteString(term.EraseLines(op.Count))
		case ClearScreen:
			_, err = e.out.WriteString(term.ClearScreenAndScrollback())
		case BeginSync:
			_, err = e.out.WriteString(term.BeginSynchronized())
		case EndSync:
			_, err = e.out.WriteString(term.EndSynchronized())
		}
		if err != nil {
			return fmt.Errorf("apply render op: %w", err)
		}
	}
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("flush render ops: %w", err)
	}
	return nil
}
