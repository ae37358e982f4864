package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rebeliceyang/lazyjson/internal/ui/theme"
)

// RawView displays the pretty-printed text of the current subtree (or
// of an explicitly selected scalar) in a scrollable pane
type RawView struct {
	Width  int
	Height int
	Title  string // breadcrumb of the displayed value
	Theme  theme.Theme

	content      string
	contentLines []string // content split and wrapped for the current width
	wrappedFor   int      // width the cache was built for
	scrollY      int
}

// NewRawView creates a new raw text pane
func NewRawView(th theme.Theme) *RawView {
	return &RawView{
		Width:  80,
		Height: 20,
		Theme:  th,
	}
}

// SetContent replaces the displayed text and resets scrolling
func (rv *RawView) SetContent(content, title string) {
	if rv.content == content && rv.Title == title {
		return
	}
	rv.content = content
	rv.Title = title
	rv.scrollY = 0
	rv.contentLines = nil
}

// Content returns the raw text currently displayed
func (rv *RawView) Content() string {
	return rv.content
}

// CopyContent copies the displayed text to the system clipboard
func (rv *RawView) CopyContent() error {
	return clipboard.WriteAll(rv.content)
}

// ScrollUp scrolls content up one line
func (rv *RawView) ScrollUp() {
	if rv.scrollY > 0 {
		rv.scrollY--
	}
}

// ScrollDown scrolls content down one line
func (rv *RawView) ScrollDown() {
	if rv.scrollY < rv.maxScroll() {
		rv.scrollY++
	}
}

// PageUp scrolls up one viewport
func (rv *RawView) PageUp() {
	rv.scrollY -= rv.viewHeight()
	if rv.scrollY < 0 {
		rv.scrollY = 0
	}
}

// PageDown scrolls down one viewport
func (rv *RawView) PageDown() {
	rv.scrollY += rv.viewHeight()
	if max := rv.maxScroll(); rv.scrollY > max {
		rv.scrollY = max
	}
}

// View renders the visible slice of the wrapped content
func (rv *RawView) View() string {
	rv.ensureWrapped()

	height := rv.viewHeight()
	start := rv.scrollY
	if start > len(rv.contentLines) {
		start = len(rv.contentLines)
	}
	end := start + height
	if end > len(rv.contentLines) {
		end = len(rv.contentLines)
	}

	contentStyle := lipgloss.NewStyle().Foreground(rv.Theme.Foreground)
	lines := make([]string, 0, height)
	for _, line := range rv.contentLines[start:end] {
		lines = append(lines, contentStyle.Render(line))
	}

	if len(rv.contentLines) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(rv.Theme.Comment).
			Italic(true).
			Width(rv.contentWidth()).
			Align(lipgloss.Center)
		return emptyStyle.Render("Nothing selected")
	}

	content := strings.Join(lines, "\n")

	// Scroll position indicator when the content overflows
	if rv.maxScroll() > 0 {
		posStyle := lipgloss.NewStyle().Foreground(rv.Theme.Metadata).Italic(true)
		pos := posStyle.Render(scrollLabel(start, end, len(rv.contentLines)))
		content += "\n" + pos
	}

	return content
}

// ensureWrapped rebuilds the wrapped line cache when the content or
// width changed
func (rv *RawView) ensureWrapped() {
	if rv.contentLines != nil && rv.wrappedFor == rv.contentWidth() {
		return
	}
	rv.contentLines = wrapText(rv.content, rv.contentWidth())
	rv.wrappedFor = rv.contentWidth()
	if rv.scrollY > rv.maxScroll() {
		rv.scrollY = rv.maxScroll()
	}
}

func (rv *RawView) contentWidth() int {
	width := rv.Width - 2
	if width < 10 {
		width = 10
	}
	return width
}

func (rv *RawView) viewHeight() int {
	// Borders, title line and the scroll indicator
	height := rv.Height - 5
	if height < 1 {
		height = 1
	}
	return height
}

func (rv *RawView) maxScroll() int {
	rv.ensureWrapped()
	max := len(rv.contentLines) - rv.viewHeight()
	if max < 0 {
		max = 0
	}
	return max
}

// wrapText wraps text to fit within maxWidth, rune-width aware
func wrapText(text string, maxWidth int) []string {
	if text == "" {
		return nil
	}

	var result []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= maxWidth {
			result = append(result, line)
			continue
		}

		current := ""
		currentWidth := 0
		for _, r := range line {
			rWidth := runewidth.RuneWidth(r)
			if currentWidth+rWidth > maxWidth {
				result = append(result, current)
				current = string(r)
				currentWidth = rWidth
			} else {
				current += string(r)
				currentWidth += rWidth
			}
		}
		if current != "" {
			result = append(result, current)
		}
	}

	return result
}

func scrollLabel(start, end, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("lines %d–%d of %d", start+1, end, total)
}
