package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// DefaultMaxWidth caps the formatted width so very wide terminals keep
// readable line lengths.
const DefaultMaxWidth = 120

const bodyIndent = "  "

// Formatter renders message fragments at a given terminal width. It carries
// no mutable state; every method is a pure function of its inputs and the
// settings supplied at construction.
type Formatter struct {
	theme      Theme
	timestamps bool
	maxWidth   int
}

// NewFormatter creates a formatter with the given theme. When timestamps is
// true, headers include the fragment's wall-clock time.
func NewFormatter(theme Theme, timestamps bool) *Formatter {
	return &Formatter{theme: theme, timestamps: timestamps, maxWidth: DefaultMaxWidth}
}

// SetMaxWidth overrides the content width cap. Non-positive values keep the
// default.
func (f *Formatter) SetMaxWidth(w int) {
	if w > 0 {
		f.maxWidth = w
	}
}

// Message formats a single fragment for display at the given terminal width.
// The result carries no trailing newline.
func (f *Formatter) Message(msg models.Message, width int) string {
	width = f.contentWidth(width)

	switch msg.Kind {
	case models.KindThinking:
		return f.block("✻", "Thinking", msg, f.theme.Thinking, width)
	case models.KindText:
		return f.block("⏺", "Claude", msg, f.theme.Assistant, width)
	case models.KindUserPrompt:
		return f.block("❯", "You", msg, f.theme.User, width)
	case models.KindToolUse:
		return f.toolLine(msg, width)
	case models.KindSystem:
		return f.theme.Dim.Render("· " + firstLine(msg.Text))
	default:
		return msg.Text
	}
}

// JoinBlocks combines the blocks of one frame increment: blocks separated by
// one blank line, with a single trailing newline. The renderer's separator
// rule then keeps one blank line between consecutive increments too.
func JoinBlocks(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// SessionBanner formats the header block shown when a watch begins.
func (f *Formatter) SessionBanner(session models.Session, width int) string {
	width = f.contentWidth(width)
	title := session.Name
	if title == "" {
		title = session.ID
	}
	var b strings.Builder
	b.WriteString(f.theme.Header.Render("◉ " + title))
	if session.ProjectPath != "" {
		b.WriteString("\n")
		b.WriteString(f.theme.Dim.Render(ansi.Truncate(session.ProjectPath, width, "…")))
	}
	return b.String()
}

// block renders a header line followed by the indented, wrapped body.
func (f *Formatter) block(icon, label string, msg models.Message, bodyStyle lipgloss.Style, width int) string {
	var b strings.Builder
	b.WriteString(f.theme.Header.Render(icon + " " + label))
	if f.timestamps && !msg.Timestamp.IsZero() {
		b.WriteString(" " + f.theme.Dim.Render(msg.Timestamp.Local().Format("15:04:05")))
	}

	body := strings.TrimRight(msg.Text, "\n")
	if body == "" {
		return b.String()
	}

	wrapWidth := width - len(bodyIndent)
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	for _, line := range strings.Split(ansi.Wordwrap(body, wrapWidth, ""), "\n") {
		b.WriteString("\n")
		b.WriteString(bodyIndent)
		b.WriteString(bodyStyle.Render(line))
	}
	return b.String()
}

// toolLine renders a tool invocation as a single truncated line.
func (f *Formatter) toolLine(msg models.Message, width int) string {
	name := msg.ToolName
	if name == "" {
		name = "Tool"
	}
	line := "⚙ " + name
	if summary := firstLine(msg.Text); summary != "" {
		line += " · " + summary
	}
	return f.theme.Tool.Render(ansi.Truncate(line, width, "…"))
}

// Note renders a dimmed one-off line, used for watch lifecycle remarks.
func (f *Formatter) Note(text string) string {
	return f.theme.Dim.Render(text)
}

// contentWidth clamps a terminal width to the usable formatting range.
func (f *Formatter) contentWidth(width int) int {
	if width <= 0 || width > f.maxWidth {
		return f.maxWidth
	}
	return width
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
