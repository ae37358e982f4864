package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rebeliceyang/lazyjson/internal/ui/theme"
)

// ErrorOverlay shows a dismissable error message on top of the UI
type ErrorOverlay struct {
	Title   string
	Message string
	Theme   theme.Theme
}

// NewErrorOverlay creates an empty error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Theme: th}
}

// SetError sets the error to display
func (e *ErrorOverlay) SetError(title string, err error) {
	e.Title = title
	if err != nil {
		e.Message = err.Error()
	} else {
		e.Message = ""
	}
}

// Clear removes the current error
func (e *ErrorOverlay) Clear() {
	e.Title = ""
	e.Message = ""
}

// HasError reports whether an error is being shown
func (e *ErrorOverlay) HasError() bool {
	return e.Message != ""
}

// View renders the overlay centered inside the given dimensions
func (e *ErrorOverlay) View(width, height int) string {
	if !e.HasError() {
		return ""
	}

	boxWidth := width * 2 / 3
	if boxWidth < 30 {
		boxWidth = 30
	}
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(e.Theme.Error)

	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Title))
	b.WriteString("\n\n")
	b.WriteString(e.Message)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(e.Theme.Comment).Render("Press Esc to dismiss"))

	box := lipgloss.NewStyle().
		Width(boxWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
