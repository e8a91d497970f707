package models

import (
	"testing"
	"time"
)

func TestLatestSession(t *testing.T) {
	now := time.Now()
	p := Project{
		Sessions: []Session{
			{ID: "old", ModTime: now.Add(-time.Hour)},
			{ID: "new", ModTime: now},
			{ID: "mid", ModTime: now.Add(-time.Minute)},
		},
	}

	latest, ok := p.LatestSession()
	if !ok {
		t.Fatal("expected a session")
	}
	if latest.ID != "new" {
		t.Errorf("latest = %q, want new", latest.ID)
	}
}

func TestLatestSessionEmpty(t *testing.T) {
	var p Project
	if _, ok := p.LatestSession(); ok {
		t.Error("empty project reported a session")
	}
}

func TestDisplayName(t *testing.T) {
	p := Project{Name: "my-app"}
	if got := p.DisplayName(); got != "my-app" {
		t.Errorf("DisplayName = %q", got)
	}

	p.Worktree = "feature-x"
	if got := p.DisplayName(); got != "my-app [feature-x]" {
		t.Errorf("worktree DisplayName = %q", got)
	}
}
