package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel represents a bordered UI panel with a heading line and an
// optional dimmed footer for key hints
type Panel struct {
	Title   string
	Content string
	Footer  string
	Width   int
	Height  int
	Style   lipgloss.Style
}

// View renders the panel
func (p *Panel) View() string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	style := p.Style.
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.RoundedBorder())

	var b strings.Builder
	if p.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		b.WriteString(titleStyle.Render(p.Title))
		b.WriteString("\n")
	}
	b.WriteString(p.Content)

	if p.Footer != "" {
		footerStyle := lipgloss.NewStyle().Faint(true).Padding(0, 1)
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(p.Footer))
	}

	return style.Render(b.String())
}
