package components

// TreeView renders a JSON document as an expandable tree with keyboard
// navigation, viewport scrolling and mouse hit-testing.
//
// Features:
//   - Container rows with expand/collapse icons (▾ expanded, ▸ collapsed)
//   - Scalar rows with optional kind tags and value projections
//   - Keyboard navigation (↑↓/jk, →←/hl, g/G, space, enter)
//   - Automatic viewport scrolling for large trees
//   - Single click toggles expansion, double click navigates into the
//     subtree (mouse rows are marked with bubblezone)
//
// Usage:
//
//	root := models.BuildTree(doc.Root, nil, expansion)
//	treeView := components.NewTreeView(root, expansion, theme)
//	treeView.Width = 40
//	treeView.Height = 20
//
//	// In your Update method:
//	treeView, cmd := treeView.Update(msg)
//
//	// In your View method:
//	content := treeView.View()

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/gjson"

	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
	"github.com/rebeliceyang/lazyjson/internal/models"
	"github.com/rebeliceyang/lazyjson/internal/ui/theme"
)

// doubleClickWindow is how close two clicks on the same row must be to
// count as a double click
const doubleClickWindow = 400 * time.Millisecond

// zonePrefix namespaces this component's bubblezone marks
const zonePrefix = "tree:"

// NavigateMsg requests re-rooting the view at an absolute path
type NavigateMsg struct {
	Path jsondoc.Path
}

// ScalarSelectedMsg is sent when a leaf row is selected; the raw pane
// shows this value until the next navigation or load
type ScalarSelectedMsg struct {
	Value gjson.Result
	Path  jsondoc.Path
}

// TreeView represents the JSON structure panel
type TreeView struct {
	Root      *models.TreeNode       // Displayed root (the current subtree)
	Expansion *models.ExpansionState // Shared expansion state, absolute keys
	Display   models.DisplayOptions  // Label composition options

	CursorIndex  int // Current cursor position in the flattened list
	Width        int // Display width
	Height       int // Display height
	ScrollOffset int // Vertical scroll offset for viewport
	Theme        theme.Theme

	lastClickKey string
	lastClickAt  time.Time
}

// NewTreeView creates a new tree view component
func NewTreeView(root *models.TreeNode, expansion *models.ExpansionState, th theme.Theme) *TreeView {
	return &TreeView{
		Root:      root,
		Expansion: expansion,
		Theme:     th,
		Width:     40,
		Height:    20,
	}
}

// SetRoot replaces the displayed subtree and resets the viewport
func (tv *TreeView) SetRoot(root *models.TreeNode) {
	tv.Root = root
	tv.CursorIndex = 0
	tv.ScrollOffset = 0
}

// View renders the tree as a string
func (tv *TreeView) View() string {
	if tv.Root == nil {
		return tv.emptyState()
	}

	visibleNodes := tv.Root.Flatten()
	if len(visibleNodes) == 0 {
		return tv.emptyState()
	}

	if tv.CursorIndex < 0 {
		tv.CursorIndex = 0
	}
	if tv.CursorIndex >= len(visibleNodes) {
		tv.CursorIndex = len(visibleNodes) - 1
	}

	// Subtract 2 for borders, 2 for title/help
	viewHeight := tv.Height - 4
	if viewHeight < 1 {
		viewHeight = 1
	}

	tv.adjustScrollOffset(len(visibleNodes), viewHeight)

	startIdx := tv.ScrollOffset
	endIdx := tv.ScrollOffset + viewHeight
	if endIdx > len(visibleNodes) {
		endIdx = len(visibleNodes)
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		node := visibleNodes[i]
		line := zone.Mark(zonePrefix+node.Path.Key(), tv.renderNode(node, i == tv.CursorIndex))
		lines = append(lines, line)
	}

	for len(lines) < viewHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	if tv.ScrollOffset > 0 || endIdx < len(visibleNodes) {
		content = tv.addScrollIndicators(content, startIdx, endIdx, len(visibleNodes))
	}

	return content
}

// Update handles keyboard input for tree navigation
func (tv *TreeView) Update(msg tea.KeyMsg) (*TreeView, tea.Cmd) {
	if tv.Root == nil {
		return tv, nil
	}

	visibleNodes := tv.Root.Flatten()
	if len(visibleNodes) == 0 {
		return tv, nil
	}

	var cmd tea.Cmd

	switch msg.String() {
	case "up", "k":
		if tv.CursorIndex > 0 {
			tv.CursorIndex--
		}

	case "down", "j":
		if tv.CursorIndex < len(visibleNodes)-1 {
			tv.CursorIndex++
		}

	case "g":
		tv.CursorIndex = 0
		tv.ScrollOffset = 0

	case "G":
		tv.CursorIndex = len(visibleNodes) - 1

	case "right", "l", " ":
		// Toggle expansion without changing navigation
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil {
			currentNode.Toggle(tv.Expansion)
		}

	case "left", "h":
		// Collapse, or move to parent when already collapsed
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil {
			if currentNode.Expanded {
				currentNode.Toggle(tv.Expansion)
			} else if currentNode.Parent != nil {
				parentIndex := tv.findNodeIndex(visibleNodes, currentNode.Parent)
				if parentIndex >= 0 {
					tv.CursorIndex = parentIndex
				}
			}
		}

	case "enter":
		currentNode := visibleNodes[tv.CursorIndex]
		if currentNode != nil {
			cmd = selectNode(currentNode)
		}
	}

	return tv, cmd
}

// HandleMouse processes a mouse event. A single left click on a row
// moves the cursor and toggles containers (or selects scalars); a
// second click on the same row within the double-click window
// navigates into the subtree. The toggle from the first click stands.
func (tv *TreeView) HandleMouse(msg tea.MouseMsg) (*TreeView, tea.Cmd) {
	if tv.Root == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return tv, nil
	}

	visibleNodes := tv.Root.Flatten()
	for i, node := range visibleNodes {
		if !zone.Get(zonePrefix + node.Path.Key()).InBounds(msg) {
			continue
		}

		tv.CursorIndex = i
		key := node.Path.Key()
		now := time.Now()
		isDouble := key == tv.lastClickKey && now.Sub(tv.lastClickAt) <= doubleClickWindow
		tv.lastClickKey = key
		tv.lastClickAt = now

		if isDouble {
			tv.lastClickKey = ""
			return tv, selectNode(node)
		}

		if node.IsContainer() {
			node.Toggle(tv.Expansion)
			return tv, nil
		}
		return tv, selectNode(node)
	}

	return tv, nil
}

// selectNode produces the message for opening a node: containers
// re-root the view, scalars replace the raw pane content
func selectNode(node *models.TreeNode) tea.Cmd {
	if node.IsContainer() {
		path := node.Path
		return func() tea.Msg {
			return NavigateMsg{Path: path}
		}
	}
	value := node.Value
	path := node.Path
	return func() tea.Msg {
		return ScalarSelectedMsg{Value: value, Path: path}
	}
}

// renderNode renders a single tree row with appropriate styling
func (tv *TreeView) renderNode(node *models.TreeNode, selected bool) string {
	if node == nil {
		return ""
	}

	indent := strings.Repeat("  ", node.Depth())
	icon := tv.getNodeIcon(node)
	label := tv.buildNodeLabel(node)

	content := fmt.Sprintf("%s%s %s", indent, icon, label)

	maxWidth := tv.Width - 2
	if maxWidth < 4 {
		maxWidth = 4
	}
	if runewidth.StringWidth(content) > maxWidth {
		content = runewidth.Truncate(content, maxWidth, "…")
	}

	var style lipgloss.Style
	if selected {
		style = lipgloss.NewStyle().
			Background(tv.Theme.Selection).
			Foreground(tv.Theme.Foreground).
			Bold(true).
			Width(maxWidth)
	} else {
		style = lipgloss.NewStyle().
			Foreground(tv.Theme.Foreground).
			Width(maxWidth)
	}

	return style.Render(content)
}

// getNodeIcon returns the appropriate icon for a node
func (tv *TreeView) getNodeIcon(node *models.TreeNode) string {
	if !node.IsContainer() {
		return "•"
	}
	if node.Expanded {
		return "▾"
	}
	return "▸"
}

// buildNodeLabel composes the display label for a row from the display
// options. Containers get an optional kind and item count; scalars get
// an optional kind tag and an optional truncated value projection.
func (tv *TreeView) buildNodeLabel(node *models.TreeNode) string {
	label := node.Label

	if node.IsContainer() {
		if tv.Display.ShowNodeTypes {
			meta := fmt.Sprintf("(%s, %d items)", node.Kind, jsondoc.Count(node.Value))
			dimStyle := lipgloss.NewStyle().Foreground(tv.Theme.Comment)
			label += " " + dimStyle.Render(meta)
		}
		return label
	}

	if tv.Display.ShowNodeTypes {
		dimStyle := lipgloss.NewStyle().Foreground(tv.Theme.Comment)
		label += " " + dimStyle.Render("("+node.Kind.String()+")")
	}
	if tv.Display.ShowNodeValues {
		maxLen := tv.Display.MaxValueLength
		if maxLen <= 0 {
			maxLen = 50
		}
		text := jsondoc.Truncate(jsondoc.ScalarText(node.Value), maxLen)
		valueStyle := lipgloss.NewStyle().Foreground(tv.Theme.ValueColor(node.Kind.String()))
		label += " " + valueStyle.Render(text)
	}

	return label
}

// adjustScrollOffset adjusts the scroll offset to keep the cursor visible
func (tv *TreeView) adjustScrollOffset(totalNodes, viewHeight int) {
	if tv.CursorIndex < tv.ScrollOffset {
		tv.ScrollOffset = tv.CursorIndex
	}
	if tv.CursorIndex >= tv.ScrollOffset+viewHeight {
		tv.ScrollOffset = tv.CursorIndex - viewHeight + 1
	}

	if tv.ScrollOffset < 0 {
		tv.ScrollOffset = 0
	}
	maxScroll := totalNodes - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if tv.ScrollOffset > maxScroll {
		tv.ScrollOffset = maxScroll
	}
}

// addScrollIndicators adds visual indicators for scrollable content
func (tv *TreeView) addScrollIndicators(content string, startIdx, endIdx, total int) string {
	lines := strings.Split(content, "\n")

	if startIdx > 0 && len(lines) > 0 {
		indicator := lipgloss.NewStyle().Foreground(tv.Theme.Info).Render("↑")
		lines[0] = indicator + " " + lines[0]
	}

	if endIdx < total && len(lines) > 0 {
		lastIdx := len(lines) - 1
		indicator := lipgloss.NewStyle().Foreground(tv.Theme.Info).Render("↓")
		lines[lastIdx] = indicator + " " + lines[lastIdx]
	}

	return strings.Join(lines, "\n")
}

// emptyState returns the empty state view
func (tv *TreeView) emptyState() string {
	style := lipgloss.NewStyle().
		Foreground(tv.Theme.Comment).
		Italic(true).
		Width(tv.Width - 2).
		Align(lipgloss.Center)

	return style.Render("No JSON data loaded")
}

// GetCurrentNode returns the node under the cursor
func (tv *TreeView) GetCurrentNode() *models.TreeNode {
	if tv.Root == nil {
		return nil
	}

	visibleNodes := tv.Root.Flatten()
	if tv.CursorIndex < 0 || tv.CursorIndex >= len(visibleNodes) {
		return nil
	}

	return visibleNodes[tv.CursorIndex]
}

// findNodeIndex finds the index of a node in the flattened list
func (tv *TreeView) findNodeIndex(nodes []*models.TreeNode, target *models.TreeNode) int {
	for i, node := range nodes {
		if node == target {
			return i
		}
	}
	return -1
}
