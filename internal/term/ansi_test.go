package term

import (
	"strings"
	"testing"
)

func TestEraseLines(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"zero is empty", 0, ""},
		{"negative is empty", -3, ""},
		{"one line", 1, "\x1b[2K\r"},
		{"two lines", 2, "\x1b[2K\x1b[1A\x1b[2K\r"},
		{"three lines", 3, "\x1b[2K\x1b[1A\x1b[2K\x1b[1A\x1b[2K\r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EraseLines(tt.count); got != tt.want {
				t.Errorf("EraseLines(%d) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}

func TestEraseLinesMovesUpOneLessThanCount(t *testing.T) {
	// Erasing n lines must move the cursor up exactly n-1 times, or the
	// erase would eat into scrollback content above the transient region.
	for n := 1; n <= 5; n++ {
		got := strings.Count(EraseLines(n), "\x1b[1A")
		if got != n-1 {
			t.Errorf("EraseLines(%d) moves up %d times, want %d", n, got, n-1)
		}
	}
}

func TestClearScreenAndScrollback(t *testing.T) {
	seq := ClearScreenAndScrollback()
	for _, part := range []string{"\x1b[3J", "\x1b[2J", "\x1b[H"} {
		if !strings.Contains(seq, part) {
			t.Errorf("clear sequence %q missing %q", seq, part)
		}
	}
}

func TestSynchronizedMarkers(t *testing.T) {
	if BeginSynchronized() != "\x1b[?2026h" {
		t.Errorf("unexpected begin marker %q", BeginSynchronized())
	}
	if EndSynchronized() != "\x1b[?2026l" {
		t.Errorf("unexpected end marker %q", EndSynchronized())
	}
}
