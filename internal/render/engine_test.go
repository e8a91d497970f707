package render

import (
	"reflect"
	"testing"
)

func assertOps(t *testing.T, got, want []Op) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ops mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestEngineFirstFrame(t *testing.T) {
	e := NewEngine(80, 24, true)

	ops := e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	assertOps(t, ops, []Op{
		BeginSync{},
		Write{Text: "Hello\n", Scrollback: true},
		Write{Text: "footer", Scrollback: false},
		Write{Text: "\n", Scrollback: false},
		EndSync{},
	})
	if e.History() != "Hello\n" {
		t.Errorf("history = %q, want %q", e.History(), "Hello\n")
	}
	if e.ShownStatus() != "footer\n" {
		t.Errorf("shown status = %q, want %q", e.ShownStatus(), "footer\n")
	}
}

func TestEngineSecondIncrementClearsStatusFirst(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	ops := e.Render(Frame{Increment: "World\n", Status: "footer", Columns: 80, Rows: 24})

	// The status plus its trailing newline occupies two rows; both must be
	// erased before the new content lands, and the status then rewritten
	// below it.
	assertOps(t, ops, []Op{
		BeginSync{},
		ClearLines{Count: 2},
		Write{Text: "\nWorld\n", Scrollback: true},
		Write{Text: "footer", Scrollback: false},
		Write{Text: "\n", Scrollback: false},
		EndSync{},
	})
	if e.History() != "Hello\n\nWorld\n" {
		t.Errorf("history = %q, want %q", e.History(), "Hello\n\nWorld\n")
	}
}

func TestEngineStatusOnlyChange(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	ops := e.Render(Frame{Status: "footer v2", Columns: 80, Rows: 24})

	assertOps(t, ops, []Op{
		BeginSync{},
		ClearLines{Count: 2},
		Write{Text: "footer v2", Scrollback: false},
		Write{Text: "\n", Scrollback: false},
		EndSync{},
	})
}

func TestEngineIdleFrameIsNoOp(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	if ops := e.Render(Frame{Status: "footer", Columns: 80, Rows: 24}); ops != nil {
		t.Errorf("idle frame produced ops: %#v", ops)
	}
}

func TestEngineWhitespaceIncrementIsNoOp(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	if ops := e.Render(Frame{Increment: "  \n", Status: "footer", Columns: 80, Rows: 24}); ops != nil {
		t.Errorf("whitespace increment produced ops: %#v", ops)
	}
	if e.History() != "Hello\n" {
		t.Errorf("whitespace increment mutated history: %q", e.History())
	}
}

func TestEngineFirstIncrementHasNoSeparator(t *testing.T) {
	e := NewEngine(80, 24, true)

	ops := e.Render(Frame{Increment: "Hello\n", Status: "", Columns: 80, Rows: 24})

	// Empty accumulator: no leading blank line, and an empty status still
	// writes its terminating newline so the cursor rests below the region.
	assertOps(t, ops, []Op{
		BeginSync{},
		Write{Text: "Hello\n", Scrollback: true},
		Write{Text: "", Scrollback: false},
		Write{Text: "\n", Scrollback: false},
		EndSync{},
	})
}

func TestEngineMultiLineStatusClearedFully(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "line1\nline2", Columns: 80, Rows: 24})

	ops := e.Render(Frame{Increment: "World\n", Status: "line1\nline2", Columns: 80, Rows: 24})

	// Two status lines plus the trailing newline row.
	if ops[1] != (ClearLines{Count: 3}) {
		t.Errorf("expected ClearLines{3} before new content, got %#v", ops[1])
	}
}

func TestEngineWrappedStatusClearedByRows(t *testing.T) {
	e := NewEngine(10, 24, true)
	// 15 visible cells at width 10 wraps onto a second row, plus the
	// trailing newline row.
	status := "aaaaaaaaaaaaaaa"
	e.Render(Frame{Increment: "x\n", Status: status, Columns: 10, Rows: 24})

	ops := e.Render(Frame{Increment: "y\n", Status: status, Columns: 10, Rows: 24})

	if ops[1] != (ClearLines{Count: 3}) {
		t.Errorf("expected ClearLines{3} for wrapped status, got %#v", ops[1])
	}
}

func TestEngineResizeRedrawsEverything(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	ops := e.Render(Frame{Status: "footer", Columns: 100, Rows: 30})

	assertOps(t, ops, []Op{
		BeginSync{},
		ClearScreen{},
		Write{Text: "Hello\n", Scrollback: true},
		Write{Text: "footer", Scrollback: true},
		Write{Text: "\n", Scrollback: true},
		EndSync{},
	})
}

func TestEngineResizeFoldsPendingIncrement(t *testing.T) {
	e := NewEngine(80, 24, true)
	e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})

	e.Render(Frame{Increment: "World\n", Status: "footer", Columns: 100, Rows: 30})

	if e.History() != "Hello\n\nWorld\n" {
		t.Errorf("history after resize = %q, want %q", e.History(), "Hello\n\nWorld\n")
	}
}

func TestEngineAfterResizeUsesNewWidth(t *testing.T) {
	e := NewEngine(80, 24, true)
	status := "aaaaaaaaaaaaaaa" // 15 cells
	e.Render(Frame{Increment: "x\n", Status: status, Columns: 80, Rows: 24})

	// Shrink to width 10: the same status now wraps to two rows.
	e.Render(Frame{Status: status, Columns: 10, Rows: 24})
	ops := e.Render(Frame{Increment: "y\n", Status: status, Columns: 10, Rows: 24})

	if ops[1] != (ClearLines{Count: 3}) {
		t.Errorf("expected post-resize clear of 3 rows, got %#v", ops[1])
	}
}

func TestEngineNonInteractiveStreamsOnly(t *testing.T) {
	e := NewEngine(80, 24, false)

	ops := e.Render(Frame{Increment: "Hello\n", Status: "footer", Columns: 80, Rows: 24})
	assertOps(t, ops, []Op{Write{Text: "Hello\n", Scrollback: true}})

	// Status churn alone emits nothing on a pipe.
	if ops := e.Render(Frame{Status: "footer v2", Columns: 80, Rows: 24}); ops != nil {
		t.Errorf("non-interactive status frame produced ops: %#v", ops)
	}

	// Dimension changes are meaningless without a terminal.
	if ops := e.Render(Frame{Status: "footer v2", Columns: 120, Rows: 40}); ops != nil {
		t.Errorf("non-interactive resize produced ops: %#v", ops)
	}
}

func TestEngineHistoryGrowsMonotonically(t *testing.T) {
	e := NewEngine(80, 24, true)
	increments := []string{"one\n", "two\n", "three\n"}
	for _, inc := range increments {
		e.Render(Frame{Increment: inc, Status: "s", Columns: 80, Rows: 24})
	}

	want := "one\n\ntwo\n\nthree\n"
	if e.History() != want {
		t.Errorf("history = %q, want %q", e.History(), want)
	}
}

func TestEngineFramesAreAtomic(t *testing.T) {
	e := NewEngine(80, 24, true)

	frames := []Frame{
		{Increment: "a\n", Status: "s", Columns: 80, Rows: 24},
		{Increment: "b\n", Status: "s", Columns: 80, Rows: 24},
		{Status: "s2", Columns: 80, Rows: 24},
		{Status: "s2", Columns: 90, Rows: 24},
	}
	for i, f := range frames {
		ops := e.Render(f)
		if len(ops) == 0 {
			t.Fatalf("frame %d unexpectedly empty", i)
		}
		if _, ok := ops[0].(BeginSync); !ok {
			t.Errorf("frame %d does not begin with BeginSync: %#v", i, ops[0])
		}
		if _, ok := ops[len(ops)-1].(EndSync); !ok {
			t.Errorf("frame %d does not end with EndSync: %#v", i, ops[len(ops)-1])
		}
	}
}
