// Package tui implements the interactive session picker shown when the
// watch command is run without a session argument. The picker is a regular
// bubbletea program that runs to completion and returns the choice; the
// transcript renderer takes over the terminal only after the picker exits.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// pickerStage is which list the picker is showing.
type pickerStage int

const (
	stageProjects pickerStage = iota
	stageSessions
)

// projectItem adapts a project for bubbles/list.
type projectItem struct {
	project models.Project
}

func (i projectItem) Title() string { return i.project.DisplayName() }
func (i projectItem) Description() string {
	n := len(i.project.Sessions)
	noun := "sessions"
	if n == 1 {
		noun = "session"
	}
	latest, _ := i.project.LatestSession()
	return fmt.Sprintf("%d %s · %s", n, noun, relativeTime(latest.ModTime))
}
func (i projectItem) FilterValue() string { return i.project.DisplayName() }

// sessionItem adapts a session for bubbles/list.
type sessionItem struct {
	session models.Session
}

func (i sessionItem) Title() string {
	if i.session.Name != "" {
		return i.session.Name
	}
	return i.session.ID
}
func (i sessionItem) Description() string {
	return fmt.Sprintf("%s · %s", shortID(i.session.ID), relativeTime(i.session.ModTime))
}
func (i sessionItem) FilterValue() string { return i.Title() }

// PickerModel drives the two-stage project/session selection.
type PickerModel struct {
	stage    pickerStage
	projects list.Model
	sessions list.Model
	all      []models.Project

	choice   *models.Session
	quitting bool
}

// NewPicker creates a picker over the discovered projects, newest first.
func NewPicker(projects []models.Project) *PickerModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("205")).
		BorderLeftForeground(lipgloss.Color("205"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("240")).
		BorderLeftForeground(lipgloss.Color("205"))

	pl := list.New(items, delegate, 0, 0)
	pl.Title = "Projects"
	pl.SetShowStatusBar(false)

	sl := list.New(nil, delegate, 0, 0)
	sl.SetShowStatusBar(false)

	return &PickerModel{
		stage:    stageProjects,
		projects: pl,
		sessions: sl,
		all:      projects,
	}
}

// Choice returns the selected session, or nil when the picker was cancelled.
func (m *PickerModel) Choice() *models.Session { return m.choice }

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.projects.SetSize(msg.Width, msg.Height)
		m.sessions.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.activeList().FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.stage == stageSessions {
				m.stage = stageProjects
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.selectCurrent()
		}
	}

	var cmd tea.Cmd
	switch m.stage {
	case stageProjects:
		m.projects, cmd = m.projects.Update(msg)
	case stageSessions:
		m.sessions, cmd = m.sessions.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.activeList().View()
}

func (m *PickerModel) activeList() *list.Model {
	if m.stage == stageSessions {
		return &m.sessions
	}
	return &m.projects
}

// selectCurrent advances from projects to sessions, or finishes with the
// chosen session. A project with exactly one session skips the second stage.
func (m *PickerModel) selectCurrent() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageProjects:
		item, ok := m.projects.SelectedItem().(projectItem)
		if !ok {
			return m, nil
		}
		if len(item.project.Sessions) == 1 {
			s := item.project.Sessions[0]
			m.choice = &s
			m.quitting = true
			return m, tea.Quit
		}
		items := make([]list.Item, len(item.project.Sessions))
		for i, s := range item.project.Sessions {
			items[i] = sessionItem{session: s}
		}
		m.sessions.SetItems(items)
		m.sessions.Title = "Sessions · " + item.project.DisplayName()
		m.sessions.ResetSelected()
		m.stage = stageSessions
		return m, nil

	case stageSessions:
		item, ok := m.sessions.SelectedItem().(sessionItem)
		if !ok {
			return m, nil
		}
		s := item.session
		m.choice = &s
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Run shows the picker and blocks until a session is chosen or the user
// cancels. A nil session with a nil error means the user backed out.
func Run(projects []models.Project) (*models.Session, error) {
	model := NewPicker(projects)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running session picker: %w", err)
	}
	return model.Choice(), nil
}

// shortID returns the leading segment of a session UUID.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// relativeTime renders a coarse human age for list rows.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
