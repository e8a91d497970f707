package models

import "time"

// Session represents one Claude Code session log file.
type Session struct {
	// ID is the session UUID (the log file's base name).
	ID string `json:"id"`
	// Path is the absolute path to the JSONL log file.
	Path string `json:"path"`
	// ProjectPath is the working directory the session ran in.
	ProjectPath string `json:"project_path,omitempty"`
	// Name is the derived human-readable title.
	Name string `json:"name,omitempty"`
	// ModTime is the log file's last modification time.
	ModTime time.Time `json:"mod_time"`
	// Size is the log file's size in bytes.
	Size int64 `json:"size"`
}

// Project represents one directory under the Claude projects root.
type Project struct {
	// Name is the display name (repository or directory base name).
	Name string `json:"name"`
	// Path is the decoded filesystem path the sessions ran in.
	Path string `json:"path"`
	// Dir is the encoded directory under the projects root.
	Dir string `json:"dir"`
	// Worktree is the branch directory name when the project is a git
	// worktree of another project, empty otherwise.
	Worktree string `json:"worktree,omitempty"`
	// Sessions are the project's session logs, newest first.
	Sessions []Session `json:"sessions"`
}

// LatestSession returns the most recently modified session, or false when
// the project has none.
func (p *Project) LatestSession() (Session, bool) {
	var best Session
	found := false
	for _, s := range p.Sessions {
		if !found || s.ModTime.After(best.ModTime) {
			best = s
			found = true
		}
	}
	return best, found
}

// DisplayName returns the name with a worktree suffix when applicable.
func (p *Project) DisplayName() string {
	if p.Worktree != "" {
		return p.Name + " [" + p.Worktree + "]"
	}
	return p.Name
}
