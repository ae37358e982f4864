package models

import (
	"github.com/tidwall/gjson"

	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
)

// TreeNode represents a node in the JSON structure tree. The tree is
// rooted at whatever subtree the user has navigated to, but Path is
// always absolute from the true document root so expansion state keeps
// its meaning across navigation.
type TreeNode struct {
	Key      string       // path segment ("" for the displayed root)
	Label    string       // display text ("Root", key, or "[i]" for array elements)
	Kind     jsondoc.Kind // value kind
	Value    gjson.Result // the value at this node
	Path     jsondoc.Path // absolute path from the document root
	Parent   *TreeNode    // parent node (nil for the displayed root)
	Children []*TreeNode  // child nodes, built lazily on first expansion
	Expanded bool         // whether node is expanded
	Loaded   bool         // whether children have been built
}

// IsContainer reports whether the node can have children
func (n *TreeNode) IsContainer() bool {
	return n.Kind == jsondoc.KindArray || n.Kind == jsondoc.KindObject
}

// Depth returns the node's depth below the displayed root
func (n *TreeNode) Depth() int {
	depth := 0
	for current := n.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// BuildTree builds the displayed tree for a value. base is the absolute
// path of that value from the document root; expansion restores any
// previously expanded descendants.
func BuildTree(value gjson.Result, base jsondoc.Path, expansion *ExpansionState) *TreeNode {
	root := &TreeNode{
		Key:   "",
		Label: "Root",
		Kind:  jsondoc.KindOf(value),
		Value: value,
		Path:  base,
	}

	if root.IsContainer() && expansion.IsExpanded(root.Path) {
		root.Expanded = true
		root.LoadChildren(expansion)
	}

	return root
}

// LoadChildren builds the node's children from its value. Containers
// among them that the expansion state remembers as expanded are loaded
// recursively, so a navigate/go-back round trip restores the tree
// shape. Loading is idempotent.
func (n *TreeNode) LoadChildren(expansion *ExpansionState) {
	if n.Loaded || !n.IsContainer() {
		n.Loaded = true
		return
	}

	members := jsondoc.Children(n.Value)
	n.Children = make([]*TreeNode, 0, len(members))

	isArray := n.Kind == jsondoc.KindArray
	for _, member := range members {
		label := member.Key
		if isArray {
			label = "[" + member.Key + "]"
		}

		child := &TreeNode{
			Key:    member.Key,
			Label:  label,
			Kind:   jsondoc.KindOf(member.Value),
			Value:  member.Value,
			Path:   n.Path.Child(member.Key),
			Parent: n,
		}
		if child.IsContainer() && expansion.IsExpanded(child.Path) {
			child.Expanded = true
			child.LoadChildren(expansion)
		}
		n.Children = append(n.Children, child)
	}

	n.Loaded = true
}

// Toggle flips the node's expansion, recording it in the shared state
// and lazily building children on first expansion. Leaf nodes ignore
// the call.
func (n *TreeNode) Toggle(expansion *ExpansionState) {
	if !n.IsContainer() {
		return
	}

	n.Expanded = expansion.Toggle(n.Path)
	if n.Expanded && !n.Loaded {
		n.LoadChildren(expansion)
	}
}

// Flatten returns the visible nodes in render order: the node itself
// followed, when expanded, by its visible descendants.
func (n *TreeNode) Flatten() []*TreeNode {
	result := []*TreeNode{n}
	if n.Expanded {
		for _, child := range n.Children {
			result = append(result, child.Flatten()...)
		}
	}
	return result
}

// FindByPath finds a visible or loaded node by its absolute path key
func (n *TreeNode) FindByPath(key string) *TreeNode {
	if n.Path.Key() == key {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByPath(key); found != nil {
			return found
		}
	}
	return nil
}
