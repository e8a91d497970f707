package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bporterfield/watch-claude-think/internal/config"
	"github.com/bporterfield/watch-claude-think/internal/index"
	"github.com/bporterfield/watch-claude-think/internal/projects"
	"github.com/bporterfield/watch-claude-think/internal/session"
	"github.com/bporterfield/watch-claude-think/pkg/models"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects and their sessions",
	Long: `List prints every discovered Claude Code project with its sessions,
newest activity first. By default only the three most recent sessions per
project are shown; use --all for everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		root, err := claudeRoot(cfg)
		if err != nil {
			return err
		}
		found, err := projects.Discover(root)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Printf("No Claude Code sessions found under %s\n", root)
			return nil
		}
		annotateSessionNames(found)

		header := color.New(color.FgMagenta, color.Bold)
		dim := color.New(color.Faint)
		id := color.New(color.FgCyan)

		for _, p := range found {
			header.Println(p.DisplayName())
			dim.Printf("  %s\n", p.Path)

			sessions := p.Sessions
			if !listAll && len(sessions) > 3 {
				sessions = sessions[:3]
			}
			for _, s := range sessions {
				name := s.Name
				if name == "" {
					name = "(unnamed)"
				}
				fmt.Printf("  %s  %-50s %s\n", id.Sprint(shortSessionID(s.ID)), name, dim.Sprint(humanAge(s.ModTime)))
			}
			if !listAll && len(p.Sessions) > 3 {
				dim.Printf("  … %d more\n", len(p.Sessions)-3)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every session, not just the most recent")
}

// annotateSessionNames fills in display names from the metadata cache,
// deriving and caching any that are missing or stale. Cache failures are not
// fatal; names are then derived on every run.
func annotateSessionNames(found []models.Project) {
	idx, err := index.Open(index.DefaultPath())
	if err != nil {
		idx = nil
	} else {
		defer idx.Close()
	}

	for pi := range found {
		p := &found[pi]
		for si := range p.Sessions {
			s := &p.Sessions[si]
			if idx != nil {
				if entry, ok := idx.Get(s.ID, s.ModTime); ok {
					s.Name = entry.Name
					continue
				}
			}
			name, err := session.DeriveName(s.Path)
			if err != nil && name == "" {
				continue
			}
			s.Name = name
			if idx != nil && name != "" {
				_ = idx.Put(index.Entry{
					SessionID:   s.ID,
					Name:        name,
					ProjectPath: s.ProjectPath,
					ModTime:     s.ModTime,
				})
			}
		}
	}
}

func shortSessionID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// humanAge renders a coarse age for plain listings.
func humanAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}
