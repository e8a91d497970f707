package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether f is attached to an interactive terminal.
// Redirected output (pipes, files) has no cursor concept, so the renderer
// falls back to plain streaming when this is false.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
