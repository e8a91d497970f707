package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/bporterfield/watch-claude-think/internal/term"
)

// StatusInfo is everything the status line displays. It is recomputed from
// scratch for every frame; the renderer diffs the resulting string.
type StatusInfo struct {
	// SessionName is the derived session title.
	SessionName string
	// ProjectName is the display name of the owning project.
	ProjectName string
	// Messages is the number of fragments shown so far.
	Messages int
	// LastActivity is when the log file last grew.
	LastActivity time.Time
	// Width is the terminal width the line must fit.
	Width int
}

// StatusLine renders the transient footer: watched session on the left,
// counters and key hints on the right, separated by gap fill.
func (f *Formatter) StatusLine(info StatusInfo) string {
	width := info.Width
	if width <= 0 {
		width = 80
	}

	name := info.SessionName
	if name == "" {
		name = "session"
	}
	left := f.theme.Accent.Render("⏵ "+name) + pieceIf(info.ProjectName != "", f.theme.Dim.Render(" · "+info.ProjectName))

	var parts []string
	if info.Messages > 0 {
		label := "messages"
		if info.Messages == 1 {
			label = "message"
		}
		parts = append(parts, fmt.Sprintf("%d %s", info.Messages, label))
	}
	if !info.LastActivity.IsZero() {
		parts = append(parts, info.LastActivity.Local().Format("15:04:05"))
	}
	parts = append(parts, "ctrl+c quit")
	right := f.theme.Dim.Render(strings.Join(parts, " │ "))

	gap := width - term.VisibleWidth(left) - term.VisibleWidth(right)
	if gap < 2 {
		// Too narrow for both sides: keep the session name, drop the rest.
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func pieceIf(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
