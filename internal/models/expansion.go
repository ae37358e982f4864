package models

import "github.com/rebeliceyang/lazyjson/internal/jsondoc"

// ExpansionState records which container nodes are expanded. Nodes are
// keyed by their absolute structural path from the document root, so
// the state survives re-rooting the view via navigation and sibling
// keys can never collide. Absent means collapsed.
type ExpansionState struct {
	expanded map[string]bool
}

// NewExpansionState creates an empty expansion state
func NewExpansionState() *ExpansionState {
	return &ExpansionState{expanded: make(map[string]bool)}
}

// IsExpanded reports whether the node at path is expanded
func (e *ExpansionState) IsExpanded(path jsondoc.Path) bool {
	return e.expanded[path.Key()]
}

// Set records the expansion flag for the node at path
func (e *ExpansionState) Set(path jsondoc.Path, expanded bool) {
	if expanded {
		e.expanded[path.Key()] = true
		return
	}
	delete(e.expanded, path.Key())
}

// Toggle flips the flag for the node at path and returns the new value
func (e *ExpansionState) Toggle(path jsondoc.Path) bool {
	next := !e.IsExpanded(path)
	e.Set(path, next)
	return next
}

// Clear forgets all expansion state. Called when a new document is
// loaded, never on navigation.
func (e *ExpansionState) Clear() {
	e.expanded = make(map[string]bool)
}

// Len returns the number of expanded nodes
func (e *ExpansionState) Len() int {
	return len(e.expanded)
}
