package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc", "Dismiss error / close dialog"},
		{"Tab", "Switch panel focus"},
		{"o", "Open file dialog"},
		{"t", "Toggle node types"},
		{"v", "Toggle node values"},
	}
}

// GetNavigationKeys returns navigation key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"g", "Jump to top"},
		{"Shift+G", "Jump to bottom"},
		{"Enter", "Navigate into node"},
		{"Backspace", "Go back to parent"},
	}
}

// GetTreeKeys returns tree panel key bindings
func GetTreeKeys() []KeyBinding {
	return []KeyBinding{
		{"Space, →/l", "Expand or collapse node"},
		{"←/h", "Collapse or go to parent"},
		{"Click", "Expand/collapse node"},
		{"Double click", "Navigate into node"},
	}
}

// GetContentKeys returns content panel key bindings
func GetContentKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/↓", "Scroll"},
		{"PgUp/PgDn", "Scroll page"},
		{"y", "Copy selected value"},
		{"Shift+Y", "Copy current subtree"},
		{"Ctrl+S", "Export subtree (JSON/CSV)"},
	}
}

// Render creates the help view
func Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("lazyjson - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name string
		keys []KeyBinding
	}{
		{"Global", GetGlobalKeys()},
		{"Navigation", GetNavigationKeys()},
		{"Tree", GetTreeKeys()},
		{"Content", GetContentKeys()},
	}

	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.name))
		b.WriteString("\n")
		for _, kb := range section.keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	// Wrap in a box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
