// Package format turns message fragments and watch state into styled display
// strings. Formatting is pure: the same fragment at the same width always
// yields the same string, because the renderer stores formatted text and
// never re-derives it.
package format

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds every style the formatters use. It is passed explicitly to
// formatting calls instead of living in process-wide registries, which keeps
// the producers pure and testable in isolation.
type Theme struct {
	Thinking  lipgloss.Style
	Assistant lipgloss.Style
	User      lipgloss.Style
	Tool      lipgloss.Style
	Header    lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
}

// themeFile is the on-disk schema: ANSI color numbers or hex strings.
type themeFile struct {
	Thinking  string `yaml:"thinking"`
	Assistant string `yaml:"assistant"`
	User      string `yaml:"user"`
	Tool      string `yaml:"tool"`
	Header    string `yaml:"header"`
	Dim       string `yaml:"dim"`
	Accent    string `yaml:"accent"`
	Error     string `yaml:"error"`
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Thinking:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		User:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Tool:      lipgloss.NewStyle().Foreground(lipgloss.Color("140")),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// LoadTheme reads a theme file and overlays it on the default theme.
// Missing keys keep their defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	content, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("reading theme file: %w", err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(content, &tf); err != nil {
		return theme, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	overlay := func(style *lipgloss.Style, color string) {
		if color != "" {
			*style = style.Foreground(lipgloss.Color(color))
		}
	}
	overlay(&theme.Thinking, tf.Thinking)
	overlay(&theme.Assistant, tf.Assistant)
	overlay(&theme.User, tf.User)
	overlay(&theme.Tool, tf.Tool)
	overlay(&theme.Header, tf.Header)
	overlay(&theme.Dim, tf.Dim)
	overlay(&theme.Accent, tf.Accent)
	overlay(&theme.Error, tf.Error)

	return theme, nil
}
