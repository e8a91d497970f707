package format

import (
	"strings"
	"testing"
	"time"

	"github.com/bporterfield/watch-claude-think/internal/term"
)

func TestStatusLineContents(t *testing.T) {
	f := testFormatter()
	line := f.StatusLine(StatusInfo{
		SessionName:  "Watcher rework",
		ProjectName:  "my-app",
		Messages:     5,
		LastActivity: time.Now(),
		Width:        120,
	})

	for _, want := range []string{"Watcher rework", "my-app", "5 messages", "ctrl+c quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "\n") {
		t.Errorf("status contains newline: %q", line)
	}
}

func TestStatusLineFitsWidth(t *testing.T) {
	f := testFormatter()
	for _, width := range []int{40, 80, 120, 200} {
		line := f.StatusLine(StatusInfo{
			SessionName: "A session with a reasonably long name",
			ProjectName: "project",
			Messages:    12,
			Width:       width,
		})
		if got := term.VisibleWidth(line); got > width {
			t.Errorf("width %d: status occupies %d cells", width, got)
		}
	}
}

func TestStatusLineSingularMessage(t *testing.T) {
	f := testFormatter()
	line := f.StatusLine(StatusInfo{SessionName: "s", Messages: 1, Width: 120})
	if !strings.Contains(line, "1 message") || strings.Contains(line, "1 messages") {
		t.Errorf("singular form wrong: %q", line)
	}
}

func TestStatusLineNarrowTerminal(t *testing.T) {
	f := testFormatter()
	line := f.StatusLine(StatusInfo{
		SessionName: strings.Repeat("long name ", 10),
		Messages:    3,
		Width:       20,
	})
	if got := term.VisibleWidth(line); got > 20 {
		t.Errorf("narrow status occupies %d cells", got)
	}
}

func TestStatusLineDefaultsName(t *testing.T) {
	f := testFormatter()
	line := f.StatusLine(StatusInfo{Width: 80})
	if !strings.Contains(line, "session") {
		t.Errorf("fallback name missing: %q", line)
	}
}
