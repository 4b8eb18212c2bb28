package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pathswitch/internal/transfer"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.HistoryViewport.Width = msg.Width - 4
		m.HistoryViewport.Height = msg.Height - 6 // minus header/footer
		return m, nil

	case tea.KeyMsg:
		if m.Prompt != PromptNone {
			return m.updatePrompt(msg)
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.Mode {
		case ModeCleaner:
			return m.updateCleaner(msg)
		case ModeHistory:
			return m.updateHistory(msg)
		case ModeHelp:
			switch msg.String() {
			case "esc", "?", "q":
				m.Mode = ModeSwitch
			}
			return m, nil
		}
		return m.updateSwitch(msg)
	}

	return m, cmd
}

func (m AppModel) updateSwitch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.Focus == FocusGroups {
			m.Focus = FocusEntries
		} else {
			m.Focus = FocusGroups
		}
	case "left", "h":
		m.Focus = FocusGroups
	case "right", "l":
		m.Focus = FocusEntries
	case "up", "k":
		if m.Focus == FocusGroups {
			if m.GroupIdx > 0 {
				m.GroupIdx--
				m.EntryIdx = 0
				m.selectGroup()
			}
		} else if m.EntryIdx > 0 {
			m.EntryIdx--
		}
	case "down", "j":
		if m.Focus == FocusGroups {
			if m.GroupIdx < len(m.Groups)-1 {
				m.GroupIdx++
				m.EntryIdx = 0
				m.selectGroup()
			}
		} else if m.EntryIdx < len(m.Entries)-1 {
			m.EntryIdx++
		}
	case "enter":
		if m.Focus == FocusGroups {
			m.Focus = FocusEntries
			return m, nil
		}
		if len(m.Entries) > 0 {
			m.Svc.Activate(m.SelectedGroup(), m.EntryIdx)
			m.refresh()
		}
	case "a":
		if m.Focus == FocusGroups {
			return m.startPrompt(PromptAddGroup, "")
		}
		if m.SelectedGroup() != "" {
			return m.startPrompt(PromptEntryPath, "")
		}
	case "x":
		m.remove()
	case "K":
		if m.Focus == FocusEntries && m.EntryIdx > 0 {
			m.Svc.MoveEntryUp(m.SelectedGroup(), m.EntryIdx)
			m.EntryIdx--
			m.refresh()
		}
	case "J":
		if m.Focus == FocusEntries && m.EntryIdx < len(m.Entries)-1 {
			m.Svc.MoveEntryDown(m.SelectedGroup(), m.EntryIdx)
			m.EntryIdx++
			m.refresh()
		}
	case "s":
		m.Issues = m.Svc.Scan()
		m.IssueIdx = 0
		m.Mode = ModeCleaner
	case "H":
		m.Mode = ModeHistory
		m.HistoryViewport.SetContent(m.historyContent())
		m.HistoryViewport.GotoTop()
	case "i":
		return m.startPrompt(PromptImport, transfer.DefaultFileName)
	case "e":
		return m.startPrompt(PromptExport, transfer.DefaultFileName)
	case "w":
		return m.startPrompt(PromptWhich, "")
	case "r":
		m.refresh()
	case "?":
		m.Mode = ModeHelp
	}
	return m, nil
}

func (m *AppModel) selectGroup() {
	if g := m.SelectedGroup(); g != "" {
		m.Svc.SelectGroup(g)
	}
	m.refresh()
}

func (m *AppModel) remove() {
	group := m.SelectedGroup()
	if group == "" {
		return
	}
	if m.Focus == FocusGroups {
		m.Svc.RemoveGroup(group)
		m.EntryIdx = 0
	} else if len(m.Entries) > 0 {
		m.Svc.RemoveEntry(group, m.EntryIdx)
	}
	m.refresh()
}

func (m AppModel) updateCleaner(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.Mode = ModeSwitch
		m.refresh()
	case "up", "k":
		if m.IssueIdx > 0 {
			m.IssueIdx--
		}
	case "down", "j":
		if m.IssueIdx < len(m.Issues)-1 {
			m.IssueIdx++
		}
	case " ":
		if m.IssueIdx < len(m.Issues) {
			m.Issues[m.IssueIdx].Selected = !m.Issues[m.IssueIdx].Selected
		}
	case "a":
		all := true
		for _, is := range m.Issues {
			all = all && is.Selected
		}
		for i := range m.Issues {
			m.Issues[i].Selected = !all
		}
	case "c":
		if _, err := m.Svc.Clean(m.Issues); err == nil {
			m.Issues = m.Svc.Issues()
			m.IssueIdx = 0
		}
		m.refresh()
	case "s":
		m.Issues = m.Svc.Scan()
		m.IssueIdx = clamp(m.IssueIdx, len(m.Issues))
	}
	return m, nil
}

func (m AppModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "H":
		m.Mode = ModeSwitch
		return m, nil
	case "C":
		m.Svc.ClearHistory()
		m.HistoryViewport.SetContent(m.historyContent())
		return m, nil
	}
	var cmd tea.Cmd
	m.HistoryViewport, cmd = m.HistoryViewport.Update(msg)
	return m, cmd
}

func (m AppModel) startPrompt(p Prompt, value string) (tea.Model, tea.Cmd) {
	m.Prompt = p
	m.InputBuffer.SetValue(value)
	m.InputBuffer.CursorEnd()
	m.InputBuffer.Focus()
	return m, textinput.Blink
}

func (m AppModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyEsc:
		// Cancelling leaves the status line alone.
		m.endPrompt()
		return m, nil
	case tea.KeyEnter:
		value := m.InputBuffer.Value()
		p := m.Prompt
		m.endPrompt()
		return m.submit(p, value)
	}
	m.InputBuffer, cmd = m.InputBuffer.Update(msg)
	return m, cmd
}

func (m *AppModel) endPrompt() {
	m.Prompt = PromptNone
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
}

func (m AppModel) submit(p Prompt, value string) (tea.Model, tea.Cmd) {
	switch p {
	case PromptImport:
		if value != "" {
			m.Svc.Import(value)
		}
	case PromptExport:
		if value != "" {
			m.Svc.Export(value)
		}
	case PromptAddGroup:
		if err := m.Svc.AddGroup(value); err == nil {
			m.refresh()
			m.GroupIdx = len(m.Groups) - 1
			m.EntryIdx = 0
		}
	case PromptEntryPath:
		if value == "" {
			return m, nil
		}
		m.PendingPath = value
		return m.startPrompt(PromptEntryAlias, "")
	case PromptEntryAlias:
		if err := m.Svc.AddEntry(m.SelectedGroup(), m.PendingPath, value); err == nil {
			m.refresh()
			m.EntryIdx = len(m.Entries) - 1
		}
		m.PendingPath = ""
	case PromptWhich:
		m.WhichQuery = value
		m.WhichResults = m.Svc.Which(value)
		return m, nil
	}
	m.refresh()
	return m, nil
}

// whichSummary describes the last which lookup for the status line.
func (m AppModel) whichSummary() string {
	if m.WhichQuery == "" {
		return ""
	}
	if len(m.WhichResults) == 0 {
		return fmt.Sprintf("%s: not found on PATH", m.WhichQuery)
	}
	first := m.WhichResults[0]
	s := fmt.Sprintf("%s: %s (%s)", m.WhichQuery, first.Dir, first.File)
	if n := len(m.WhichResults) - 1; n > 0 {
		s += fmt.Sprintf(", shadows %d more", n)
	}
	return s
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
