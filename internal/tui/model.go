package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pathswitch/internal/app"
	"pathswitch/internal/model"
)

// Mode is the screen currently shown.
type Mode int

const (
	ModeSwitch Mode = iota
	ModeCleaner
	ModeHistory
	ModeHelp
)

// Focus is the panel that receives navigation keys in ModeSwitch.
type Focus int

const (
	FocusGroups Focus = iota
	FocusEntries
)

// Prompt is the question the input line is asking, if any.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptImport
	PromptExport
	PromptAddGroup
	PromptEntryPath
	PromptEntryAlias
	PromptWhich
)

// AppModel holds the TUI state.
type AppModel struct {
	Svc *app.Service

	// Snapshot of the service, refreshed after every action
	Groups  []string
	Entries []app.EntryView
	Path    []model.PathEntry
	Issues  []model.Issue

	// UI State
	Mode       Mode
	Focus      Focus
	GroupIdx   int
	EntryIdx   int
	IssueIdx   int
	WindowSize tea.WindowSizeMsg

	// Input State
	Prompt      Prompt
	InputBuffer textinput.Model
	PendingPath string // path typed in the first step of adding an entry

	WhichQuery   string
	WhichResults []model.WhichMatch

	// Components
	HistoryViewport viewport.Model
}

// InitialModel returns the initial state for svc.
func InitialModel(svc *app.Service) AppModel {
	ti := textinput.New()
	ti.CharLimit = 260
	ti.Width = 50

	m := AppModel{
		Svc:             svc,
		InputBuffer:     ti,
		HistoryViewport: viewport.New(80, 20),
	}
	m.refresh()
	if sel := svc.SelectedGroup(); sel != "" {
		for i, g := range m.Groups {
			if g == sel {
				m.GroupIdx = i
			}
		}
		m.refresh()
	}
	return m
}

// SelectedGroup returns the group under the cursor, or "".
func (m AppModel) SelectedGroup() string {
	if m.GroupIdx < 0 || m.GroupIdx >= len(m.Groups) {
		return ""
	}
	return m.Groups[m.GroupIdx]
}

// refresh re-reads groups, entries and the PATH value from the service and
// clamps the cursors.
func (m *AppModel) refresh() {
	m.Groups = m.Svc.GroupNames()
	m.GroupIdx = clamp(m.GroupIdx, len(m.Groups))
	m.Entries = m.Svc.GroupEntries(m.SelectedGroup())
	m.EntryIdx = clamp(m.EntryIdx, len(m.Entries))
	m.Path = m.Svc.PathEntries()
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
