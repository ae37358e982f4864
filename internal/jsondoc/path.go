package jsondoc

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Path is a navigation path from the document root: object keys, or
// array indices in decimal form. The empty path is the root itself.
//
// A Path held by the application is always the result of Resolve, so
// every prefix of it reaches a valid value.
type Path []string

// Separator used when rendering the breadcrumb
const breadcrumbSeparator = " → "

// String renders the path as a breadcrumb, or "Root" when empty
func (p Path) String() string {
	if len(p) == 0 {
		return "Root"
	}
	return strings.Join(p, breadcrumbSeparator)
}

// Key renders a collision-free identifier for the path, suitable as a
// map key. Segments are escaped JSON-Pointer style ("~" as "~0", "/" as
// "~1") so sibling keys can never produce the same identifier. The root
// path keys to the empty string.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		b.WriteString(seg)
	}
	return b.String()
}

// Parent returns the path with its last segment removed. The root path
// is its own parent.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Child returns a new path extended by one segment. The receiver is
// never aliased, so the result can be retained freely.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, segment)
}

// Resolve walks a candidate path from root and returns the longest
// valid prefix together with the value it reaches. The walk truncates
// at the first segment that does not resolve; it never fails, so a
// stale path degrades to the deepest still-valid ancestor.
func Resolve(root gjson.Result, want Path) (Path, gjson.Result) {
	current := root
	resolved := make(Path, 0, len(want))

	for _, segment := range want {
		next, ok := descend(current, segment)
		if !ok {
			break
		}
		current = next
		resolved = append(resolved, segment)
	}

	return resolved, current
}

// descend returns the direct child of value addressed by segment:
// a matching member key for objects, an in-bounds index for arrays.
// Scalars have no children.
func descend(value gjson.Result, segment string) (gjson.Result, bool) {
	switch {
	case value.IsObject():
		return objectMember(value, segment)
	case value.IsArray():
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 {
			return gjson.Result{}, false
		}
		elems := value.Array()
		if idx >= len(elems) {
			return gjson.Result{}, false
		}
		return elems[idx], true
	default:
		return gjson.Result{}, false
	}
}

// objectMember scans the object's members in document order for an
// exact key match. Deliberately not value.Get(key): gjson path syntax
// treats ".", "*" and "?" specially, and a member lookup must never
// interpret the key.
func objectMember(obj gjson.Result, key string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}
