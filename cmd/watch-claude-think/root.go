package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bporterfield/watch-claude-think/internal/config"
	"github.com/bporterfield/watch-claude-think/internal/projects"
	"github.com/bporterfield/watch-claude-think/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "watch-claude-think",
	Short: "Live transcript viewer for Claude Code sessions",
	Long: `watch-claude-think tails a Claude Code session log and renders the
conversation as a live, ever-growing terminal transcript.

Rendered messages scroll into your terminal's native scrollback, so the full
history stays available to scroll, search, and select. A transient status
line at the bottom shows the watched session and is redrawn in place as the
session progresses.

With no arguments, an interactive picker lists your projects and sessions.
Pass a session ID (or unique prefix) to "watch" to skip the picker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var claudeDirFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&claudeDirFlag, "claude-dir", "", "Claude Code data directory (default ~/.claude)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runPicker alternates between the interactive picker and the watch loop:
// ending a watch returns to the picker, and backing out of the picker exits.
// Discovery reruns on each return so new sessions show up.
func runPicker() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root, err := claudeRoot(cfg)
	if err != nil {
		return err
	}

	for {
		found, err := projects.Discover(root)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			fmt.Printf("No Claude Code sessions found under %s\n", root)
			return nil
		}
		annotateSessionNames(found)

		session, err := tui.Run(found)
		if err != nil {
			return err
		}
		if session == nil {
			return nil
		}
		if err := watchSession(cfg, *session); err != nil {
			return err
		}
	}
}

// claudeRoot resolves the session log root: flag, then config, then the same
// environment lookup the CLI uses.
func claudeRoot(cfg *config.Config) (string, error) {
	if claudeDirFlag != "" {
		return claudeDirFlag, nil
	}
	if cfg.Claude.Dir != "" {
		return cfg.Claude.Dir, nil
	}
	return projects.DefaultRoot()
}
