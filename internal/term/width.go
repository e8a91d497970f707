package term

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// LineCount returns the number of terminal rows text occupies at the given
// width, accounting for soft wrapping. Embedded SGR/escape sequences are
// ignored when measuring. An empty line still occupies one row.
//
// A non-positive width cannot wrap anything, so the count degrades to the
// number of explicit lines rather than dividing by zero.
func LineCount(text string, width int) int {
	lines := strings.Split(text, "\n")
	if width <= 0 {
		return len(lines)
	}
	total := 0
	for _, line := range lines {
		w := ansi.StringWidth(line)
		if w == 0 {
			total++
			continue
		}
		total += (w + width - 1) / width
	}
	return total
}

// VisibleWidth returns the display width of a string, ignoring ANSI escape
// sequences and accounting for wide characters.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}
