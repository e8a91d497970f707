// Package projects discovers Claude Code projects and their session logs on
// the local machine. The CLI stores one directory per project under
// ~/.claude/projects/, named by dash-encoding the project's absolute path,
// with one JSONL file per session named by its UUID.
package projects

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// DefaultRoot returns the Claude Code data directory, honoring the same
// CLAUDE_CONFIG_DIR override the CLI itself reads.
func DefaultRoot() (string, error) {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// Discover scans the projects directory under root and returns every project
// that has at least one session, newest activity first.
func Discover(root string) ([]models.Project, error) {
	projectsDir := filepath.Join(root, "projects")
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading projects directory: %w", err)
	}

	var projects []models.Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(projectsDir, entry.Name())
		sessions, err := Sessions(dir)
		if err != nil || len(sessions) == 0 {
			continue
		}

		path := projectPath(entry.Name(), sessions)
		proj := models.Project{
			Name:     filepath.Base(path),
			Path:     path,
			Dir:      dir,
			Worktree: worktreeName(path),
			Sessions: sessions,
		}
		for i := range proj.Sessions {
			proj.Sessions[i].ProjectPath = path
		}
		projects = append(projects, proj)
	}

	sort.Slice(projects, func(i, j int) bool {
		a, _ := projects[i].LatestSession()
		b, _ := projects[j].LatestSession()
		return a.ModTime.After(b.ModTime)
	})
	return projects, nil
}

// Sessions lists the session logs in one project directory, newest first.
// Only files named by a valid UUID count; the CLI writes other bookkeeping
// files alongside them.
func Sessions(dir string) ([]models.Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}

	var sessions []models.Session
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".jsonl") {
			continue
		}
		id := strings.TrimSuffix(name, ".jsonl")
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, models.Session{
			ID:      id,
			Path:    filepath.Join(dir, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// FindSession resolves a session ID or unambiguous ID prefix across all
// projects under root.
func FindSession(root, id string) (models.Session, error) {
	projects, err := Discover(root)
	if err != nil {
		return models.Session{}, err
	}

	var matches []models.Session
	for _, p := range projects {
		for _, s := range p.Sessions {
			if s.ID == id {
				return s, nil
			}
			if strings.HasPrefix(s.ID, id) {
				matches = append(matches, s)
			}
		}
	}
	switch len(matches) {
	case 0:
		return models.Session{}, fmt.Errorf("no session matches %q", id)
	case 1:
		return matches[0], nil
	default:
		return models.Session{}, fmt.Errorf("session prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

// projectPath recovers the project's real path. The directory name is the
// path with separators flattened to dashes, which is lossy for paths that
// themselves contain dashes, so the cwd recorded inside a session log wins
// when available.
func projectPath(dirName string, sessions []models.Session) string {
	for _, s := range sessions {
		if cwd := sessionCWD(s.Path); cwd != "" {
			return cwd
		}
	}
	return decodeDashPath(dirName)
}

// sessionCWD reads the first few records of a session log looking for a cwd
// field.
func sessionCWD(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for i := 0; i < 10 && scanner.Scan(); i++ {
		var rec struct {
			CWD string `json:"cwd"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		if rec.CWD != "" {
			return rec.CWD
		}
	}
	return ""
}

// decodeDashPath converts a dash-encoded directory name back to a path.
// Every dash becomes a separator; components that originally contained
// dashes cannot be told apart, which is why sessionCWD is preferred.
func decodeDashPath(name string) string {
	return strings.ReplaceAll(name, "-", string(filepath.Separator))
}

// worktreeName returns the linked git worktree's name when path is one,
// recognized by .git being a file pointing at the parent repository instead
// of a directory. Returns "" for regular checkouts and non-repositories.
func worktreeName(path string) string {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil || info.IsDir() {
		return ""
	}
	content, err := os.ReadFile(gitPath)
	if err != nil {
		return ""
	}
	// The file holds a single "gitdir: <repo>/.git/worktrees/<name>" line.
	line := strings.TrimSpace(string(content))
	line = strings.TrimPrefix(line, "gitdir:")
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if parent := filepath.Base(filepath.Dir(line)); parent == "worktrees" {
		return filepath.Base(line)
	}
	return ""
}
