package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pathswitch/internal/cleaner"
	"pathswitch/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true) // Green
	missingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))           // Red
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))           // Orange

	activeColor = lipgloss.Color("205")
	borderColor = lipgloss.Color("63")
)

const helpText = `pathswitch {{VERSION}}

Switching
  tab / ←→    switch between groups and versions
  ↑/↓ j/k     move the cursor
  enter       activate the version under the cursor
  a           add a group or version
  x           delete the group or version under the cursor
  K / J       move a version up or down
  w           which: find the directory that provides a command

Cleaning
  s           scan PATH for missing and duplicate entries
  space       toggle an issue, a toggles all
  c           remove the selected issues

Other
  H           activity history (C clears it)
  i / e       import / export groups
  r           reload
  ?           this help
  q           quit`

func (m AppModel) View() string {
	switch m.Mode {
	case ModeCleaner:
		return m.frame("PATH Cleaner", m.renderCleaner(),
			"↑/↓: Navigate • space: Toggle • a: Toggle all • c: Clean • s: Rescan • Esc: Back")
	case ModeHistory:
		return m.frame("History", m.HistoryViewport.View(),
			"↑/↓: Scroll • C: Clear • Esc: Back")
	case ModeHelp:
		return m.frame("Help", strings.ReplaceAll(helpText, "{{VERSION}}", model.Version), "Esc: Back")
	}
	return m.renderSwitch()
}

// frame wraps body with a title bar, a key hint and the status line.
func (m AppModel) frame(title, body, help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(m.footer(help))
	return b.String()
}

func (m AppModel) footer(help string) string {
	if m.Prompt != PromptNone {
		return fmt.Sprintf("%s %s", promptLabel(m.Prompt), m.InputBuffer.View())
	}
	status := m.Svc.Status()
	if w := m.whichSummary(); w != "" {
		status = w
	}
	return dimStyle.Render(help) + "\n" + statusStyle.Render(status)
}

func promptLabel(p Prompt) string {
	switch p {
	case PromptImport:
		return "Import from:"
	case PromptExport:
		return "Export to:"
	case PromptAddGroup:
		return "New group:"
	case PromptEntryPath:
		return "Path:"
	case PromptEntryAlias:
		return "Name:"
	case PromptWhich:
		return "Which:"
	}
	return ""
}

func (m AppModel) renderSwitch() string {
	// Subtracting 6 for borders of three panels
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	netWidth := width - 6
	if netWidth < 30 {
		netWidth = 30
	}
	groupWidth := netWidth / 4
	entryWidth := (netWidth - groupWidth) / 2
	pathWidth := netWidth - groupWidth - entryWidth

	interiorHeight := height - 8
	if interiorHeight < 4 {
		interiorHeight = 4
	}

	// LEFT PANEL: groups
	var groups strings.Builder
	groups.WriteString(panelTitleStyle.Render("Groups"))
	groups.WriteString("\n\n")
	if len(m.Groups) == 0 {
		groups.WriteString(dimStyle.Render("No groups. Press a to add one."))
	}
	for i, g := range m.Groups {
		line := truncate(g, groupWidth-2)
		if i == m.GroupIdx {
			groups.WriteString(selectedStyle.Render(line))
		} else {
			groups.WriteString(normalStyle.Render(line))
		}
		groups.WriteString("\n")
	}

	// MIDDLE PANEL: versions of the selected group
	var entries strings.Builder
	entries.WriteString(panelTitleStyle.Render("Versions"))
	entries.WriteString("\n\n")
	if m.SelectedGroup() != "" && len(m.Entries) == 0 {
		entries.WriteString(dimStyle.Render("No versions. Press a to add one."))
	}
	for i, e := range m.Entries {
		icon := model.IconInactive
		if e.Active {
			icon = model.IconActive
		}
		line := fmt.Sprintf("%s %s", icon, e.Alias)
		if !e.Exists {
			line += " " + model.IconMissing
		}
		line = truncate(line, entryWidth-2)

		style := normalStyle
		switch {
		case i == m.EntryIdx && m.Focus == FocusEntries:
			style = selectedStyle
		case !e.Exists:
			style = missingStyle
		case e.Active:
			style = activeStyle
		}
		entries.WriteString(style.Render(line))
		entries.WriteString("\n")
		entries.WriteString(dimStyle.Render(truncate("  "+e.Path, entryWidth-2)))
		entries.WriteString("\n")
	}

	// RIGHT PANEL: PATH in priority order
	var path strings.Builder
	path.WriteString(panelTitleStyle.Render(fmt.Sprintf("PATH (%d)", len(m.Path))))
	path.WriteString("\n\n")
	visible := interiorHeight - 2
	for i, e := range m.Path {
		if i >= visible {
			path.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(m.Path)-i)))
			break
		}
		icon := model.IconOK
		if !e.Exists {
			icon = model.IconMissing
		}
		line := fmt.Sprintf("%2d %s %s", i+1, icon, e.Value)
		if i == 0 && e.Group != "" {
			line += " " + model.IconFirst
		}
		line = truncate(line, pathWidth-2)
		switch {
		case e.Group != "":
			path.WriteString(activeStyle.Render(line))
		case !e.Exists:
			path.WriteString(missingStyle.Render(line))
		default:
			path.WriteString(normalStyle.Render(line))
		}
		path.WriteString("\n")
	}

	groupBorder, entryBorder := activeColor, borderColor
	if m.Focus == FocusEntries {
		groupBorder, entryBorder = borderColor, activeColor
	}
	left := panel(groups.String(), groupWidth, interiorHeight, groupBorder)
	middle := panel(entries.String(), entryWidth, interiorHeight, entryBorder)
	right := panel(path.String(), pathWidth, interiorHeight, borderColor)

	help := "tab: Switch Panel • enter: Activate • a: Add • x: Delete • s: Clean • H: History • i/e: Import/Export • ?: Help • q: Quit"
	return titleStyle.Render("pathswitch") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right) + "\n\n" +
		m.footer(help)
}

func (m AppModel) renderCleaner() string {
	if len(m.Issues) == 0 {
		return model.IconOK + "No issues found."
	}
	missing, dupes := cleaner.Counts(m.Issues)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d missing, %d duplicate\n\n", missing, dupes))
	for i, is := range m.Issues {
		box := model.IconUnselected
		if is.Selected {
			box = model.IconSelected
		}
		kind := model.IconMissing
		if is.Kind == model.IssueDuplicate {
			kind = model.IconDuplicate
		}
		line := fmt.Sprintf("%s %s %-9s %s", box, kind, is.Kind, is.Path)
		if i == m.IssueIdx {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) historyContent() string {
	entries := m.Svc.History()
	if len(entries) == 0 {
		return dimStyle.Render("No activity yet.")
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(dimStyle.Render(e.Time))
		b.WriteString("  ")
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func panel(content string, width, height int, border lipgloss.Color) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Render(strings.TrimSuffix(content, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
