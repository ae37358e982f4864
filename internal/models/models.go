package models

// AppState holds the application state
type AppState struct {
	Width          int
	Height         int
	LeftPanelWidth int
	FocusedPanel   PanelType
	ViewMode       ViewMode

	// Display options, toggleable at runtime and never persisted
	Display DisplayOptions
}

// DisplayOptions controls how tree node labels are composed
type DisplayOptions struct {
	ShowNodeTypes  bool // annotate headers with kind and item count
	ShowNodeValues bool // show scalar value text on leaf lines
	MaxValueLength int  // scalar value projection limit before ellipsis
}

// PanelType identifies which panel is focused
type PanelType int

const (
	LeftPanel PanelType = iota
	RightPanel
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:          80,
		Height:         24,
		LeftPanelWidth: 40,
		FocusedPanel:   LeftPanel,
		ViewMode:       NormalMode,
		Display: DisplayOptions{
			MaxValueLength: 50,
		},
	}
}
