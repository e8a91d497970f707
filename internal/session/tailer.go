package session

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Tailer reads complete lines appended to a file since the previous read. It
// remembers its byte offset between calls and carries a partial trailing line
// until the writer finishes it, so a fragment mid-write is never parsed.
type Tailer struct {
	path    string
	offset  int64
	partial []byte
}

// NewTailer creates a tailer positioned at the start of the file.
func NewTailer(path string) *Tailer {
	return &Tailer{path: path}
}

// Offset returns the byte position of the next read.
func (t *Tailer) Offset() int64 { return t.offset }

// Next returns the complete lines appended since the last call, without their
// trailing newlines, and whether the file shrank since the previous read. It
// returns no lines when nothing new is available. A file smaller than the
// stored offset means the log was truncated or replaced; the tailer resets to
// the start and rereads.
func (t *Tailer) Next() (lines [][]byte, truncated bool, err error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, false, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, false, fmt.Errorf("stat session log: %w", err)
	}
	if info.Size() < t.offset {
		t.offset = 0
		t.partial = nil
		truncated = true
	}
	if info.Size() == t.offset {
		return nil, truncated, nil
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return nil, truncated, fmt.Errorf("seek session log: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, truncated, fmt.Errorf("read session log: %w", err)
	}
	t.offset += int64(len(data))

	buf := append(t.partial, data...)
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		line := buf[:i]
		buf = buf[i+1:]
		if len(bytes.TrimSpace(line)) > 0 {
			lines = append(lines, append([]byte(nil), line...))
		}
	}
	t.partial = append([]byte(nil), buf...)
	return lines, truncated, nil
}
