package models

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
)

const sampleDoc = `{"name": "demo", "items": [1, 2, {"b": "x"}], "ok": true}`

func TestBuildTree_Root(t *testing.T) {
	root := BuildTree(gjson.Parse(sampleDoc), nil, NewExpansionState())

	if root.Label != "Root" {
		t.Errorf("Expected label Root, got %q", root.Label)
	}
	if root.Kind != jsondoc.KindObject {
		t.Errorf("Expected object kind, got %v", root.Kind)
	}
	if root.Expanded {
		t.Error("Expected root collapsed by default")
	}
	if root.Loaded {
		t.Error("Expected children not built before first expansion")
	}
}

func TestTreeNode_ToggleBuildsChildrenLazily(t *testing.T) {
	expansion := NewExpansionState()
	root := BuildTree(gjson.Parse(sampleDoc), nil, expansion)

	root.Toggle(expansion)

	if !root.Expanded || !root.Loaded {
		t.Fatal("Expected root expanded and loaded after toggle")
	}
	if len(root.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(root.Children))
	}

	want := []string{"name", "items", "ok"}
	for i, key := range want {
		if root.Children[i].Key != key {
			t.Errorf("Child %d: expected key %q, got %q", i, key, root.Children[i].Key)
		}
	}
	if !expansion.IsExpanded(nil) {
		t.Error("Expected root expansion recorded in shared state")
	}
}

func TestTreeNode_ArrayChildLabels(t *testing.T) {
	expansion := NewExpansionState()
	root := BuildTree(gjson.Parse(`[10, 20]`), nil, expansion)
	root.Toggle(expansion)

	if root.Children[0].Label != "[0]" || root.Children[1].Label != "[1]" {
		t.Errorf("Expected bracketed index labels, got %q, %q",
			root.Children[0].Label, root.Children[1].Label)
	}
	if root.Children[0].Key != "0" {
		t.Errorf("Expected plain index segment, got %q", root.Children[0].Key)
	}
}

func TestTreeNode_ScalarToggleIsNoop(t *testing.T) {
	expansion := NewExpansionState()
	root := BuildTree(gjson.Parse(`"just a string"`), nil, expansion)

	root.Toggle(expansion)

	if root.Expanded {
		t.Error("Expected scalar root to stay collapsed")
	}
	if expansion.Len() != 0 {
		t.Error("Expected no expansion state recorded for a scalar")
	}
}

func TestTreeNode_Flatten(t *testing.T) {
	expansion := NewExpansionState()
	root := BuildTree(gjson.Parse(sampleDoc), nil, expansion)

	if got := len(root.Flatten()); got != 1 {
		t.Errorf("Expected only the root while collapsed, got %d", got)
	}

	root.Toggle(expansion)
	flat := root.Flatten()
	if len(flat) != 4 {
		t.Fatalf("Expected root plus 3 children, got %d", len(flat))
	}

	// Expand the nested array as well
	items := flat[2]
	if items.Key != "items" {
		t.Fatalf("Expected items node, got %q", items.Key)
	}
	items.Toggle(expansion)

	flat = root.Flatten()
	if len(flat) != 7 {
		t.Errorf("Expected 7 visible nodes, got %d", len(flat))
	}
	if flat[3].Label != "[0]" {
		t.Errorf("Expected array elements after their parent, got %q", flat[3].Label)
	}
}

func TestBuildTree_RestoresExpansionByAbsolutePath(t *testing.T) {
	doc := gjson.Parse(sampleDoc)
	expansion := NewExpansionState()

	// Expand root and the nested array, then rebuild as after a
	// navigate/go-back round trip.
	first := BuildTree(doc, nil, expansion)
	first.Toggle(expansion)
	first.Children[1].Toggle(expansion)

	rebuilt := BuildTree(doc, nil, expansion)

	if got := len(rebuilt.Flatten()); got != 7 {
		t.Errorf("Expected expansion restored (7 visible nodes), got %d", got)
	}
}

func TestBuildTree_ReRootedKeepsAbsolutePaths(t *testing.T) {
	doc := gjson.Parse(sampleDoc)
	expansion := NewExpansionState()

	base, value := jsondoc.Resolve(doc, jsondoc.Path{"items"})
	root := BuildTree(value, base, expansion)
	root.Toggle(expansion)

	if got := root.Children[2].Path.String(); got != "items → 2" {
		t.Errorf("Expected absolute child path, got %q", got)
	}
	if !expansion.IsExpanded(jsondoc.Path{"items"}) {
		t.Error("Expected re-rooted view to record the subtree's absolute path")
	}
}

func TestTreeNode_Depth(t *testing.T) {
	expansion := NewExpansionState()
	root := BuildTree(gjson.Parse(`{"a": {"b": 1}}`), nil, expansion)
	root.Toggle(expansion)
	root.Children[0].Toggle(expansion)

	if got := root.Depth(); got != 0 {
		t.Errorf("Expected root depth 0, got %d", got)
	}
	if got := root.Children[0].Children[0].Depth(); got != 2 {
		t.Errorf("Expected depth 2, got %d", got)
	}
}

func TestExpansionState_Clear(t *testing.T) {
	expansion := NewExpansionState()
	expansion.Set(jsondoc.Path{"a"}, true)
	expansion.Set(jsondoc.Path{"b"}, true)

	expansion.Clear()

	if expansion.Len() != 0 {
		t.Errorf("Expected empty state, got %d entries", expansion.Len())
	}
	if expansion.IsExpanded(jsondoc.Path{"a"}) {
		t.Error("Expected cleared node collapsed")
	}
}
