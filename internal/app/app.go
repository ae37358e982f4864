package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/gjson"

	"github.com/rebeliceyang/lazyjson/internal/config"
	"github.com/rebeliceyang/lazyjson/internal/export"
	"github.com/rebeliceyang/lazyjson/internal/history"
	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
	"github.com/rebeliceyang/lazyjson/internal/models"
	"github.com/rebeliceyang/lazyjson/internal/ui/components"
	"github.com/rebeliceyang/lazyjson/internal/ui/help"
	"github.com/rebeliceyang/lazyjson/internal/ui/theme"
)

const defaultMaxRecentFiles = 20

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme
	logger *log.Logger

	// Loaded document and the current view into it
	doc       *jsondoc.Document
	navPath   jsondoc.Path
	current   gjson.Result
	expansion *models.ExpansionState

	leftPanel  components.Panel
	rightPanel components.Panel
	treeView   *components.TreeView
	rawView    *components.RawView

	// Open file dialog
	showOpenDialog bool
	openDialog     *components.OpenDialog

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay

	history      *history.Store
	maxRecent    int
	indent       string
	initialFile  string
	mouseEnabled bool
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// FileLoadedMsg is sent when a file load attempt completes
type FileLoadedMsg struct {
	Doc  *jsondoc.Document
	Path string
	Err  error
}

// RecentFilesMsg carries the recent-files list for the open dialog
type RecentFilesMsg struct {
	Entries []history.Entry
}

// New creates a new App instance with config
func New(cfg *config.Config, logger *log.Logger) *App {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	maxRecent := defaultMaxRecentFiles
	indent := jsondoc.DefaultIndent
	if cfg != nil {
		if cfg.UI.PanelWidthRatio > 0 && cfg.UI.PanelWidthRatio < 100 {
			state.LeftPanelWidth = cfg.UI.PanelWidthRatio
		}
		state.Display.ShowNodeTypes = cfg.Display.ShowNodeTypes
		state.Display.ShowNodeValues = cfg.Display.ShowNodeValues
		if cfg.Display.MaxValueLength > 0 {
			state.Display.MaxValueLength = cfg.Display.MaxValueLength
		}
		if cfg.Display.Indent != "" {
			indent = cfg.Display.Indent
		}
		if cfg.History.MaxEntries > 0 {
			maxRecent = cfg.History.MaxEntries
		}
	}

	if logger == nil {
		logger = log.Default()
	}

	expansion := models.NewExpansionState()

	app := &App{
		state:        state,
		config:       cfg,
		theme:        th,
		logger:       logger,
		expansion:    expansion,
		maxRecent:    maxRecent,
		indent:       indent,
		openDialog:   components.NewOpenDialog(th),
		errorOverlay: components.NewErrorOverlay(th),
		treeView:     components.NewTreeView(nil, expansion, th),
		rawView:      components.NewRawView(th),
		mouseEnabled: cfg == nil || cfg.UI.MouseEnabled,
		leftPanel: components.Panel{
			Title: "Tree",
			Style: lipgloss.NewStyle().BorderForeground(th.BorderFocused),
		},
		rightPanel: components.Panel{
			Title: "Content",
			Style: lipgloss.NewStyle().BorderForeground(th.Border),
		},
	}
	app.treeView.Display = state.Display

	app.updatePanelDimensions()
	app.updatePanelStyles()

	return app
}

// SetHistory wires in the recent-files store
func (a *App) SetHistory(store *history.Store) {
	a.history = store
}

// SetInitialFile schedules a file to be loaded on startup
func (a *App) SetInitialFile(path string) {
	a.initialFile = path
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.initialFile != "" {
		return a.loadFile(a.initialFile)
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case FileLoadedMsg:
		return a.handleFileLoaded(msg)

	case RecentFilesMsg:
		a.openDialog.SetRecent(msg.Entries)
		return a, nil

	case components.OpenFileMsg:
		return a, a.loadFile(msg.Path)

	case components.CloseOpenDialogMsg:
		a.showOpenDialog = false
		return a, nil

	case components.NavigateMsg:
		a.navigateTo(msg.Path)
		return a, nil

	case components.ScalarSelectedMsg:
		a.rawView.SetContent(jsondoc.FormatIndent(msg.Value, a.indent), msg.Path.String())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error overlay consumes everything except dismissal and quit
	if a.showError {
		switch msg.String() {
		case "esc", "enter":
			a.DismissError()
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showOpenDialog {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.openDialog, cmd = a.openDialog.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		return a, tea.Quit

	case "?":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else {
			a.state.ViewMode = models.HelpMode
		}
		return a, nil

	case "esc":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		}
		return a, nil

	case "tab":
		if a.state.ViewMode == models.NormalMode {
			if a.state.FocusedPanel == models.LeftPanel {
				a.state.FocusedPanel = models.RightPanel
			} else {
				a.state.FocusedPanel = models.LeftPanel
			}
			a.updatePanelStyles()
		}
		return a, nil

	case "o":
		a.showOpenDialog = true
		a.openDialog.Reset()
		return a, a.fetchRecent()

	case "backspace":
		a.goBack()
		return a, nil

	case "t":
		a.state.Display.ShowNodeTypes = !a.state.Display.ShowNodeTypes
		a.treeView.Display = a.state.Display
		return a, nil

	case "v":
		a.state.Display.ShowNodeValues = !a.state.Display.ShowNodeValues
		a.treeView.Display = a.state.Display
		return a, nil

	case "y":
		if err := a.rawView.CopyContent(); err != nil {
			a.logger.Warn("clipboard copy failed", "err", err)
		}
		return a, nil

	case "Y":
		if a.doc != nil {
			if err := clipboard.WriteAll(jsondoc.FormatIndent(a.current, a.indent)); err != nil {
				a.logger.Warn("clipboard copy failed", "err", err)
			}
		}
		return a, nil

	case "ctrl+s":
		if a.doc == nil {
			return a, nil
		}
		return a, a.exportCurrent()
	}

	if a.state.ViewMode != models.NormalMode {
		return a, nil
	}

	if a.state.FocusedPanel == models.LeftPanel {
		var cmd tea.Cmd
		a.treeView, cmd = a.treeView.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "up", "k":
		a.rawView.ScrollUp()
	case "down", "j":
		a.rawView.ScrollDown()
	case "pgup", "ctrl+u":
		a.rawView.PageUp()
	case "pgdown", "ctrl+d":
		a.rawView.PageDown()
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.mouseEnabled || a.showError || a.showOpenDialog || a.state.ViewMode != models.NormalMode {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.rawView.ScrollUp()
		return a, nil
	case tea.MouseButtonWheelDown:
		a.rawView.ScrollDown()
		return a, nil
	}

	var cmd tea.Cmd
	a.treeView, cmd = a.treeView.HandleMouse(msg)
	return a, cmd
}

func (a *App) handleFileLoaded(msg FileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Keep whatever was loaded before untouched
		a.logger.Error("failed to load file", "path", msg.Path, "err", msg.Err)
		a.ShowError("Failed to Load File", fmt.Sprintf("Could not load %s\n\nError: %v", msg.Path, msg.Err))
		return a, nil
	}

	a.install(msg.Doc)
	a.showOpenDialog = false
	a.logger.Info("loaded file", "path", msg.Doc.Path, "bytes", msg.Doc.Size())

	if a.history != nil {
		if err := a.history.Touch(msg.Doc.Path); err != nil {
			a.logger.Warn("failed to record recent file", "err", err)
		} else if err := a.history.Prune(a.maxRecent); err != nil {
			a.logger.Warn("failed to prune recent files", "err", err)
		}
	}
	return a, nil
}

// install replaces the current document and resets the view to its root
func (a *App) install(doc *jsondoc.Document) {
	a.doc = doc
	a.expansion.Clear()
	a.navigateTo(nil)
}

// navigateTo re-roots the tree at the deepest valid prefix of want
func (a *App) navigateTo(want jsondoc.Path) {
	if a.doc == nil {
		return
	}

	resolved, value := jsondoc.Resolve(a.doc.Root, want)
	a.navPath = resolved
	a.current = value

	// The level being viewed starts open
	if jsondoc.IsContainer(value) {
		a.expansion.Set(resolved, true)
	}
	a.treeView.SetRoot(models.BuildTree(value, resolved, a.expansion))
	a.rawView.SetContent(jsondoc.FormatIndent(value, a.indent), resolved.String())
}

// goBack moves one level up, if not already at the document root
func (a *App) goBack() {
	if a.doc == nil || len(a.navPath) == 0 {
		return
	}
	a.navigateTo(a.navPath.Parent())
}

func (a *App) loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := jsondoc.LoadFile(path)
		return FileLoadedMsg{Doc: doc, Path: path, Err: err}
	}
}

func (a *App) fetchRecent() tea.Cmd {
	store := a.history
	logger := a.logger
	limit := a.maxRecent
	return func() tea.Msg {
		if store == nil {
			return RecentFilesMsg{}
		}
		entries, err := store.Recent(limit)
		if err != nil {
			logger.Warn("failed to read recent files", "err", err)
			return RecentFilesMsg{}
		}
		return RecentFilesMsg{Entries: entries}
	}
}

func (a *App) exportCurrent() tea.Cmd {
	docPath := a.doc.Path
	navPath := a.navPath
	value := a.current
	indent := a.indent
	logger := a.logger
	return func() tea.Msg {
		jsonName := export.SliceFileName(docPath, navPath, "json")
		if err := export.WriteJSON(value, jsonName, indent); err != nil {
			return ErrorMsg{
				Title:   "Export Failed",
				Message: fmt.Sprintf("Could not write %s\n\nError: %v", jsonName, err),
			}
		}
		logger.Info("exported subtree", "file", jsonName)

		// Tabular data additionally gets a CSV rendition
		if value.IsArray() {
			csvName := export.SliceFileName(docPath, navPath, "csv")
			if err := export.WriteCSV(value, csvName); err != nil {
				logger.Debug("skipping CSV export", "err", err)
			} else {
				logger.Info("exported subtree", "file", csvName)
			}
		}
		return nil
	}
}

// ShowError displays an error message overlay
func (a *App) ShowError(title, message string) {
	a.errorOverlay.Title = title
	a.errorOverlay.Message = message
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.errorOverlay.Clear()
	a.showError = false
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return a.errorOverlay.View(a.state.Width, a.state.Height)
	}

	if a.showOpenDialog {
		return a.renderOpenDialog()
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height)
	}

	output := a.renderNormalView()
	if a.mouseEnabled {
		output = zone.Scan(output)
	}
	return output
}

// renderNormalView renders the normal application view
func (a *App) renderNormalView() string {
	topBarLeft := "lazyjson"
	if a.doc != nil {
		topBarLeft = "lazyjson  " + a.doc.Name()
	}
	topBarRight := ""
	if a.doc != nil && (a.config == nil || a.config.UI.ShowBreadcrumbs) {
		topBarRight = a.navPath.String()
	}
	topBarContent := a.formatStatusBar(topBarLeft, topBarRight)

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(topBarContent)

	bottomBarLeft := "[tab] Switch panel | [o] Open | [?] Help | [q] Quit"
	bottomBarRight := fmt.Sprintf("types:%s values:%s",
		onOff(a.state.Display.ShowNodeTypes), onOff(a.state.Display.ShowNodeValues))
	bottomBarContent := a.formatStatusBar(bottomBarLeft, bottomBarRight)

	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(bottomBarContent)

	a.treeView.Width = a.leftPanel.Width
	a.treeView.Height = a.leftPanel.Height
	a.leftPanel.Content = a.treeView.View()
	a.leftPanel.Footer = "[space] Toggle  [enter] Open  [bksp] Back"

	a.rawView.Width = a.rightPanel.Width
	a.rawView.Height = a.rightPanel.Height
	a.rightPanel.Content = a.rawView.View()
	a.rightPanel.Footer = "[y] Copy  [ctrl+s] Export"

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.leftPanel.View(),
		a.rightPanel.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		panels,
		bottomBar,
	)
}

func (a *App) renderOpenDialog() string {
	dialogWidth := a.state.Width * 2 / 3
	if dialogWidth < 40 {
		dialogWidth = 40
	}
	dialogHeight := a.state.Height / 2
	if dialogHeight < 10 {
		dialogHeight = 10
	}

	a.openDialog.Width = dialogWidth
	a.openDialog.Height = dialogHeight

	return lipgloss.Place(
		a.state.Width, a.state.Height,
		lipgloss.Center, lipgloss.Center,
		a.openDialog.View(),
	)
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Top bar and bottom bar take one line each
	contentHeight := a.state.Height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	// Each panel border is 2 chars wide
	leftWidth := (a.state.Width * a.state.LeftPanelWidth) / 100
	if leftWidth < 20 {
		leftWidth = 20
	}

	rightWidth := a.state.Width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = a.state.Width - rightWidth - 4
	}

	a.leftPanel.Width = leftWidth
	a.leftPanel.Height = contentHeight
	a.rightPanel.Width = rightWidth
	a.rightPanel.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	if a.state.FocusedPanel == models.LeftPanel {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	} else {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
	}
}

// formatStatusBar formats a status bar with left and right aligned
// content. Widths are measured in display cells so multibyte file
// names and breadcrumbs survive narrow terminals.
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := runewidth.StringWidth(left)
	rightLen := runewidth.StringWidth(right)

	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return runewidth.Truncate(left, availableWidth-rightLen, "") + right
		}
		return runewidth.Truncate(left, availableWidth, "")
	}

	spacing := availableWidth - leftLen - rightLen
	if spacing < 0 {
		spacing = 0
	}

	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
