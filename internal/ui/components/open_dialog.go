package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyjson/internal/history"
	"github.com/rebeliceyang/lazyjson/internal/ui/theme"
)

// OpenFileMsg is sent when the user confirms a file to load
type OpenFileMsg struct {
	Path string
}

// CloseOpenDialogMsg is sent when the dialog should close
type CloseOpenDialogMsg struct{}

// OpenDialog lets the user pick a recently opened file or type a path
// by hand
type OpenDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	Recent        []history.Entry
	ManualMode    bool
	SelectedIndex int
	Input         textinput.Model
}

// NewOpenDialog creates a new open-file dialog
func NewOpenDialog(th theme.Theme) *OpenDialog {
	ti := textinput.New()
	ti.Placeholder = "path/to/file.json"
	ti.CharLimit = 512
	ti.Width = 48

	return &OpenDialog{
		Theme: th,
		Input: ti,
	}
}

// SetRecent replaces the recent-files list
func (d *OpenDialog) SetRecent(entries []history.Entry) {
	d.Recent = entries
	if d.SelectedIndex >= len(entries) {
		d.SelectedIndex = 0
	}
	// Nothing to pick from, go straight to the path prompt
	if len(entries) == 0 {
		d.enterManualMode()
	}
}

// Reset prepares the dialog for reopening
func (d *OpenDialog) Reset() {
	d.ManualMode = false
	d.SelectedIndex = 0
	d.Input.SetValue("")
	d.Input.Blur()
}

func (d *OpenDialog) enterManualMode() {
	d.ManualMode = true
	d.Input.Focus()
}

// Update handles messages while the dialog is visible
func (d *OpenDialog) Update(msg tea.Msg) (*OpenDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc":
		return d, func() tea.Msg { return CloseOpenDialogMsg{} }

	case "m", "tab":
		// In manual mode plain "m" must reach the text input
		if !d.ManualMode {
			d.enterManualMode()
			return d, nil
		}
		if keyMsg.String() == "tab" && len(d.Recent) > 0 {
			d.ManualMode = false
			d.Input.Blur()
			return d, nil
		}

	case "up", "down":
		if !d.ManualMode && len(d.Recent) > 0 {
			if keyMsg.String() == "up" && d.SelectedIndex > 0 {
				d.SelectedIndex--
			}
			if keyMsg.String() == "down" && d.SelectedIndex < len(d.Recent)-1 {
				d.SelectedIndex++
			}
			return d, nil
		}

	case "enter":
		path := d.selectedPath()
		if path == "" {
			return d, nil
		}
		return d, func() tea.Msg { return OpenFileMsg{Path: path} }
	}

	if d.ManualMode {
		var cmd tea.Cmd
		d.Input, cmd = d.Input.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *OpenDialog) selectedPath() string {
	if d.ManualMode {
		return strings.TrimSpace(d.Input.Value())
	}
	if d.SelectedIndex >= 0 && d.SelectedIndex < len(d.Recent) {
		return d.Recent[d.SelectedIndex].Path
	}
	return ""
}

// View renders the dialog
func (d *OpenDialog) View() string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}

	var content strings.Builder
	if d.ManualMode {
		content.WriteString(d.renderManualMode())
	} else {
		content.WriteString(d.renderRecentMode())
	}

	style := lipgloss.NewStyle().
		Width(d.Width).
		Height(d.Height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.Theme.BorderFocused).
		Padding(0, 1)

	return style.Render(content.String())
}

func (d *OpenDialog) renderRecentMode() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(d.Theme.Info)
	b.WriteString(titleStyle.Render("Open JSON File"))
	b.WriteString("\n\n")

	if len(d.Recent) == 0 {
		b.WriteString("No recently opened files.\n\n")
		b.WriteString("Press 'm' to type a path\n")
		return b.String()
	}

	b.WriteString("Recent files:\n\n")

	metaStyle := lipgloss.NewStyle().Foreground(d.Theme.Metadata)
	for i, entry := range d.Recent {
		prefix := "  "
		if i == d.SelectedIndex {
			prefix = "> "
		}
		meta := metaStyle.Render(fmt.Sprintf("(%d×, %s)",
			entry.OpenCount, entry.LastOpened.Format("2006-01-02 15:04")))
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, entry.Path, meta))
	}

	b.WriteString("\n")
	b.WriteString("↑/↓: Select | Enter: Open | m: Type path | Esc: Cancel\n")

	return b.String()
}

func (d *OpenDialog) renderManualMode() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(d.Theme.Info)
	b.WriteString(titleStyle.Render("Open JSON File"))
	b.WriteString("\n\n")

	b.WriteString("Path: ")
	b.WriteString(d.Input.View())
	b.WriteString("\n\n")

	hint := "Enter: Open | Esc: Cancel"
	if len(d.Recent) > 0 {
		hint = "Enter: Open | Tab: Recent files | Esc: Cancel"
	}
	b.WriteString(hint + "\n")

	return b.String()
}
