package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bporterfield/watch-claude-think/internal/config"
	"github.com/bporterfield/watch-claude-think/internal/format"
	"github.com/bporterfield/watch-claude-think/internal/logging"
	"github.com/bporterfield/watch-claude-think/internal/projects"
	"github.com/bporterfield/watch-claude-think/internal/render"
	"github.com/bporterfield/watch-claude-think/internal/session"
	"github.com/bporterfield/watch-claude-think/internal/term"
	"github.com/bporterfield/watch-claude-think/internal/watcher"
	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// statusRefresh is how often the status line's clock and counters update
// while the session is idle.
const statusRefresh = time.Second

var (
	watchLatest     bool
	watchAllTypes   bool
	watchTimestamps bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [session]",
	Short: "Tail a session as a live transcript",
	Long: `Watch tails a Claude Code session log and renders new messages as
they are written. The argument is a session UUID, a unique UUID prefix, or a
path to a .jsonl log file. With no argument (or --latest) the most recently
active session is watched.

By default only thinking, assistant text, and your prompts are shown.
Use --all-types to include tool invocations and system records.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if watchAllTypes {
			cfg.Watch.AllTypes = true
		}
		if watchTimestamps {
			cfg.Display.Timestamps = true
		}

		root, err := claudeRoot(cfg)
		if err != nil {
			return err
		}

		var sess models.Session
		switch {
		case len(args) == 1 && !watchLatest:
			sess, err = resolveSession(root, args[0])
		default:
			sess, err = latestSession(root)
		}
		if err != nil {
			return err
		}
		return watchSession(cfg, sess)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchLatest, "latest", false, "Watch the most recently active session")
	watchCmd.Flags().BoolVar(&watchAllTypes, "all-types", false, "Show tool invocations and system records too")
	watchCmd.Flags().BoolVar(&watchTimestamps, "timestamps", false, "Show wall-clock times on message headers")
}

// resolveSession accepts a direct path to a log file or a session ID/prefix.
func resolveSession(root, arg string) (models.Session, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return models.Session{
			ID:      strings.TrimSuffix(filepath.Base(arg), ".jsonl"),
			Path:    arg,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		}, nil
	}
	return projects.FindSession(root, arg)
}

// latestSession returns the most recently modified session across all
// projects.
func latestSession(root string) (models.Session, error) {
	found, err := projects.Discover(root)
	if err != nil {
		return models.Session{}, err
	}
	if len(found) == 0 {
		return models.Session{}, fmt.Errorf("no Claude Code sessions found under %s", root)
	}
	latest, ok := found[0].LatestSession()
	if !ok {
		return models.Session{}, fmt.Errorf("no Claude Code sessions found under %s", root)
	}
	return latest, nil
}

// watchSession runs the tail-and-render loop until interrupted. The render
// engine is confined to this goroutine: the size watcher and file watcher
// only deliver signals over channels, and every frame is produced and applied
// here in order.
func watchSession(cfg *config.Config, sess models.Session) error {
	theme := format.DefaultTheme()
	if cfg.Display.Theme != "" {
		loaded, err := format.LoadTheme(cfg.Display.Theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			theme = loaded
		}
	}
	formatter := format.NewFormatter(theme, cfg.Display.Timestamps)
	formatter.SetMaxWidth(cfg.Display.MaxWidth)

	debug, err := logging.NewDebugLogger(cfg.Debug.LogFile)
	if err != nil {
		return err
	}
	defer debug.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resizeCh := make(chan struct{}, 1)
	sizes := term.NewSizeWatcher(func(term.Size) {
		select {
		case resizeCh <- struct{}{}:
		default:
		}
	})
	sizes.Start()
	defer sizes.Stop()

	fw, err := watcher.New(sess.Path, cfg.Watch.PollInterval)
	if err != nil {
		return fmt.Errorf("watching session log: %w", err)
	}
	go fw.Run(ctx)

	interactive := term.IsInteractive(os.Stdout)
	size := sizes.Size()
	engine := render.NewEngine(size.Columns, size.Rows, interactive)
	executor := render.NewExecutor(os.Stdout, os.Stderr)
	stream := session.NewStream(sess.Path)

	debug.Log("watching session %s at %s (interactive=%t)", sess.ID, sess.Path, interactive)

	w := watchState{
		cfg:       cfg,
		formatter: formatter,
		engine:    engine,
		executor:  executor,
		stream:    stream,
		sizes:     sizes,
		session:   sess,
		debug:     debug,
	}

	// First frame: banner plus whatever the log already holds.
	if err := w.renderNew(formatter.SessionBanner(sess, size.Columns)); err != nil {
		return err
	}

	ticker := time.NewTicker(statusRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.renderFinal()
		case <-fw.Changes():
			if err := w.renderNew(""); err != nil {
				return err
			}
		case <-resizeCh:
			if err := w.renderStatus(); err != nil {
				return err
			}
		case <-ticker.C:
			if err := w.renderStatus(); err != nil {
				return err
			}
		}
	}
}

// watchState bundles the per-watch components the render paths share.
type watchState struct {
	cfg       *config.Config
	formatter *format.Formatter
	engine    *render.Engine
	executor  *render.Executor
	stream    *session.Stream
	sizes     *term.SizeWatcher
	session   models.Session
	debug     *logging.DebugLogger

	shown        int
	lastActivity time.Time
}

// renderNew polls the log for fresh fragments and renders them, prefixed by
// extra when non-empty (used for the opening banner).
func (w *watchState) renderNew(extra string) error {
	size := w.sizes.Size()

	msgs, err := w.stream.Poll()
	if err != nil {
		// The log can briefly vanish during compaction rewrites. Report
		// on stderr and keep watching; the next change signal retries.
		w.debug.Log("poll: %v", err)
		return w.executor.Apply([]render.Op{render.WriteErr{Text: fmt.Sprintf("Warning: %v\n", err)}})
	}

	var blocks []string
	if extra != "" {
		blocks = append(blocks, extra)
	}
	for _, m := range msgs {
		if !w.cfg.Watch.AllTypes && (m.Kind == models.KindToolUse || m.Kind == models.KindSystem) {
			continue
		}
		blocks = append(blocks, w.formatter.Message(m, size.Columns))
		w.shown++
	}
	if len(msgs) > 0 {
		w.lastActivity = time.Now()
	}

	frame := render.Frame{
		Increment: format.JoinBlocks(blocks),
		Status:    w.statusLine(size.Columns),
		Columns:   size.Columns,
		Rows:      size.Rows,
	}
	return w.executor.Apply(w.engine.Render(frame))
}

// renderStatus refreshes the transient region only. Resizes also land here:
// the engine notices the new dimensions and redraws in full.
func (w *watchState) renderStatus() error {
	size := w.sizes.Size()
	frame := render.Frame{
		Status:  w.statusLine(size.Columns),
		Columns: size.Columns,
		Rows:    size.Rows,
	}
	return w.executor.Apply(w.engine.Render(frame))
}

// renderFinal retires the status region so the prompt returns cleanly, with
// the transcript left intact in scrollback.
func (w *watchState) renderFinal() error {
	size := w.sizes.Size()
	frame := render.Frame{
		Increment: format.JoinBlocks([]string{w.formatter.Note("■ watch ended")}),
		Status:    "",
		Columns:   size.Columns,
		Rows:      size.Rows,
	}
	return w.executor.Apply(w.engine.Render(frame))
}

func (w *watchState) statusLine(cols int) string {
	name := w.stream.Name()
	if name == "" {
		name = w.session.Name
	}
	if name == "" {
		name = w.session.ID
	}
	project := ""
	if w.session.ProjectPath != "" {
		project = filepath.Base(w.session.ProjectPath)
	}
	return w.formatter.StatusLine(format.StatusInfo{
		SessionName:  name,
		ProjectName:  project,
		Messages:     w.shown,
		LastActivity: w.lastActivity,
		Width:        cols,
	})
}
