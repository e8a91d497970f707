package session

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// maxNameLength caps derived session names for list and status display.
const maxNameLength = 60

// Namer derives a display name for a session as records arrive. A summary
// record wins outright; otherwise the first human prompt stands in, truncated
// to a single readable line.
type Namer struct {
	summary string
	prompt  string
}

// Observe feeds one parsed line result into the namer.
func (n *Namer) Observe(res LineResult) {
	if res.Summary != "" {
		n.summary = res.Summary
	}
	if n.prompt == "" {
		for _, m := range res.Messages {
			if m.Kind == models.KindUserPrompt && strings.TrimSpace(m.Text) != "" {
				n.prompt = m.Text
				break
			}
		}
	}
}

// Name returns the best name derived so far, or "" when nothing usable has
// been seen.
func (n *Namer) Name() string {
	if n.summary != "" {
		return clipName(n.summary)
	}
	return clipName(n.prompt)
}

// DeriveName reads a session log and returns its display name. It stops as
// soon as a summary record appears; otherwise it settles for the first human
// prompt after scanning the file.
func DeriveName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	var namer Namer
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		res, err := ParseLine(scanner.Bytes())
		if err != nil {
			continue
		}
		namer.Observe(res)
		if namer.summary != "" {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return namer.Name(), fmt.Errorf("scan session log: %w", err)
	}
	return namer.Name(), nil
}

// clipName flattens a candidate name to one truncated line.
func clipName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return ansi.Truncate(s, maxNameLength, "…")
}
