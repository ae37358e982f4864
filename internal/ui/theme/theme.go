package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme and styling
type Theme struct {
	Name string

	// Background colors
	Background lipgloss.Color
	Foreground lipgloss.Color

	// UI elements
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Selection     lipgloss.Color
	Cursor        lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Secondary text (counts, hints, kind tags)
	Comment  lipgloss.Color
	Metadata lipgloss.Color

	// JSON value colors
	JSONKey     lipgloss.Color
	JSONString  lipgloss.Color
	JSONNumber  lipgloss.Color
	JSONBoolean lipgloss.Color
	JSONNull    lipgloss.Color
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha", "catppuccin":
		return CatppuccinMochaTheme()
	default:
		return DefaultTheme()
	}
}

// ValueColor returns the color used for a JSON kind tag or scalar text.
// kind is the display name produced by jsondoc.Kind.
func (t Theme) ValueColor(kind string) lipgloss.Color {
	switch kind {
	case "string":
		return t.JSONString
	case "number":
		return t.JSONNumber
	case "boolean":
		return t.JSONBoolean
	case "null":
		return t.JSONNull
	default:
		return t.JSONKey
	}
}
