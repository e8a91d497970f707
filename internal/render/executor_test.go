package render

import (
	"bytes"
	"errors"
	"testing"
)

func TestExecutorWritesOpsInOrder(t *testing.T) {
	var out, errOut bytes.Buffer
	ex := NewExecutor(&out, &errOut)

	err := ex.Apply([]Op{
		BeginSync{},
		ClearLines{Count: 2},
		Write{Text: "hello\n", Scrollback: true},
		Write{Text: "status", Scrollback: false},
		EndSync{},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := "\x1b[?2026h" +
		"\x1b[2K\x1b[1A\x1b[2K\r" +
		"hello\n" +
		"status" +
		"\x1b[?2026l"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}
}

func TestExecutorEmptyListWritesNothing(t *testing.T) {
	var out bytes.Buffer
	ex := NewExecutor(&out, &out)

	if err := ex.Apply(nil); err != nil {
		t.Fatalf("Apply(nil): %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty op list wrote %q", out.String())
	}
}

func TestExecutorErrStreamOrdering(t *testing.T) {
	// Both streams share one buffer so interleaving is observable: the
	// pending terminal bytes must flush before the error text.
	var shared bytes.Buffer
	ex := NewExecutor(&shared, &shared)

	err := ex.Apply([]Op{
		Write{Text: "before ", Scrollback: true},
		WriteErr{Text: "warn "},
		Write{Text: "after", Scrollback: true},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if shared.String() != "before warn after" {
		t.Errorf("interleaved output = %q, want %q", shared.String(), "before warn after")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestExecutorPropagatesWriteFailure(t *testing.T) {
	ex := NewExecutor(failingWriter{}, failingWriter{})

	err := ex.Apply([]Op{Write{Text: "x", Scrollback: true}})
	if err == nil {
		t.Fatal("expected error from failing writer")
	}
}
