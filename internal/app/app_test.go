package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/rebeliceyang/lazyjson/internal/config"
	"github.com/rebeliceyang/lazyjson/internal/history"
	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
	"github.com/rebeliceyang/lazyjson/internal/models"
)

const sampleJSON = `{
	"name": "fixture",
	"items": [
		{"id": 1, "tags": ["a", "b"]},
		{"id": 2}
	]
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(config.GetDefaults(), nil)
	a.state.Width = 100
	a.state.Height = 40
	a.updatePanelDimensions()
	return a
}

func loadSample(t *testing.T, a *App, content string) {
	t.Helper()
	doc, err := jsondoc.LoadFile(writeSample(t, content))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	a.install(doc)
}

func TestInstallResetsToRoot(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	if len(a.navPath) != 0 {
		t.Errorf("expected empty path after install, got %v", a.navPath)
	}
	if !a.current.IsObject() {
		t.Errorf("expected object root, got %v", a.current.Type)
	}
	if a.treeView.Root == nil || a.treeView.Root.Label != "Root" {
		t.Error("expected tree rooted at Root label")
	}
}

func TestNavigateToDescends(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.navigateTo(jsondoc.Path{"items", "0", "tags"})

	if got := a.navPath.String(); got != "items → 0 → tags" {
		t.Errorf("expected breadcrumb items → 0 → tags, got %q", got)
	}
	if !a.current.IsArray() {
		t.Errorf("expected array at tags, got %v", a.current.Type)
	}
}

func TestNavigateToTruncatesInvalidSuffix(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.navigateTo(jsondoc.Path{"items", "99", "tags"})

	if got := a.navPath.String(); got != "items" {
		t.Errorf("expected truncation to items, got %q", got)
	}
}

func TestNavigateToIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.navigateTo(jsondoc.Path{"items"})
	first := a.current.Raw
	a.navigateTo(a.navPath)

	if a.navPath.String() != "items" {
		t.Errorf("expected path items, got %q", a.navPath.String())
	}
	if a.current.Raw != first {
		t.Error("re-navigating to the current path changed the view")
	}
}

func TestGoBackInvertsNavigate(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.navigateTo(jsondoc.Path{"items", "0"})
	a.goBack()

	if got := a.navPath.String(); got != "items" {
		t.Errorf("expected items after go back, got %q", got)
	}

	a.goBack()
	if len(a.navPath) != 0 {
		t.Errorf("expected root after second go back, got %v", a.navPath)
	}

	// At root go back is a no-op
	a.goBack()
	if len(a.navPath) != 0 {
		t.Errorf("expected root to stay put, got %v", a.navPath)
	}
}

func TestFailedLoadKeepsCurrentDocument(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)
	a.navigateTo(jsondoc.Path{"items"})

	badPath := writeSample(t, "{not json")
	model, _ := a.Update(FileLoadedMsg{Path: badPath, Err: jsondoc.ErrParse})
	a = model.(*App)

	if !a.showError {
		t.Error("expected error overlay after failed load")
	}
	if a.doc == nil {
		t.Fatal("document was dropped on failed load")
	}
	if got := a.navPath.String(); got != "items" {
		t.Errorf("expected navigation untouched, got %q", got)
	}
}

func TestSuccessfulLoadClearsExpansion(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.expansion.Set(jsondoc.Path{"items"}, true)
	loadSample(t, a, `{"other": true}`)

	if a.expansion.IsExpanded(jsondoc.Path{"items"}) {
		t.Error("expected expansion cleared after load")
	}
}

func TestExpansionSurvivesNavigation(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	a.expansion.Set(jsondoc.Path{"items", "0"}, true)
	a.navigateTo(jsondoc.Path{"items"})
	a.goBack()

	if !a.expansion.IsExpanded(jsondoc.Path{"items", "0"}) {
		t.Error("expansion state lost across navigate and go back")
	}
}

func TestDisplayToggles(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)
	a.navigateTo(jsondoc.Path{"items"})
	before := a.navPath.String()

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	a = model.(*App)
	if !a.state.Display.ShowNodeTypes {
		t.Error("expected node types toggled on")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	a = model.(*App)
	if !a.state.Display.ShowNodeValues {
		t.Error("expected node values toggled on")
	}

	// Toggles only affect labels, never position
	if a.navPath.String() != before {
		t.Errorf("display toggle moved navigation from %q to %q", before, a.navPath.String())
	}
	if a.treeView.Display != a.state.Display {
		t.Error("tree view display options out of sync")
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)

	if a.state.FocusedPanel != models.LeftPanel {
		t.Fatal("expected left panel focused initially")
	}

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(*App)
	if a.state.FocusedPanel != models.RightPanel {
		t.Error("expected right panel focused after tab")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(*App)
	if a.state.FocusedPanel != models.LeftPanel {
		t.Error("expected left panel focused after second tab")
	}
}

func TestHelpModeToggle(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	a = model.(*App)
	if a.state.ViewMode != models.HelpMode {
		t.Error("expected help mode after ?")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(*App)
	if a.state.ViewMode != models.NormalMode {
		t.Error("expected normal mode after esc")
	}
}

func TestErrorOverlayConsumesKeys(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, sampleJSON)
	a.ShowError("Test Error", "something broke")

	// Navigation keys are swallowed while the overlay is up
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(*App)
	if a.state.FocusedPanel != models.LeftPanel {
		t.Error("tab leaked through error overlay")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(*App)
	if a.showError {
		t.Error("expected error dismissed by esc")
	}
}

func TestHistoryHonorsMaxEntries(t *testing.T) {
	cfg := config.GetDefaults()
	cfg.History.MaxEntries = 2
	a := New(cfg, nil)

	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	a.SetHistory(store)

	for _, p := range []string{"/a.json", "/b.json", "/c.json"} {
		if err := store.Touch(p); err != nil {
			t.Fatalf("Touch: %v", err)
		}
	}

	msg, ok := a.fetchRecent()().(RecentFilesMsg)
	if !ok {
		t.Fatal("expected RecentFilesMsg")
	}
	if len(msg.Entries) != 2 {
		t.Errorf("expected 2 recent entries, got %d", len(msg.Entries))
	}

	// A successful load prunes the store down to the same limit
	doc, err := jsondoc.LoadFile(writeSample(t, `{}`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	model, _ := a.Update(FileLoadedMsg{Doc: doc, Path: doc.Path})
	a = model.(*App)

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected store pruned to 2 entries, got %d", len(entries))
	}
}

func TestConfiguredIndentReachesContent(t *testing.T) {
	cfg := config.GetDefaults()
	cfg.Display.Indent = "\t"
	a := New(cfg, nil)
	a.state.Width = 100
	a.state.Height = 40
	a.updatePanelDimensions()

	loadSample(t, a, `{"name": "alice"}`)

	if !strings.Contains(a.rawView.Content(), "\n\t\"name\"") {
		t.Errorf("expected tab-indented content, got %q", a.rawView.Content())
	}
}

func TestStatusBarHandlesMultibyteNames(t *testing.T) {
	a := newTestApp(t)
	a.state.Width = 16

	out := a.formatStatusBar("日本語ファイル.json", "x")

	if !utf8.ValidString(out) {
		t.Errorf("status bar split a rune: %q", out)
	}
	if got := runewidth.StringWidth(out); got > a.state.Width-4 {
		t.Errorf("status bar width %d exceeds available %d", got, a.state.Width-4)
	}
}

func TestScalarRootDocument(t *testing.T) {
	a := newTestApp(t)
	loadSample(t, a, `42`)

	if a.current.Num != 42 {
		t.Errorf("expected scalar root 42, got %v", a.current.Raw)
	}
	if a.treeView.Root == nil {
		t.Fatal("expected tree for scalar root")
	}
	if a.treeView.Root.IsContainer() {
		t.Error("scalar root should not be a container")
	}
}
