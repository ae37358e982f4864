package jsondoc

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

const sampleDoc = `{"a": [1, 2, {"b": "x"}]}`

func TestResolve_FullPath(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	resolved, value := Resolve(root, Path{"a", "2", "b"})

	if got, want := resolved.String(), "a → 2 → b"; got != want {
		t.Errorf("Expected resolved path %q, got %q", want, got)
	}
	if value.Str != "x" {
		t.Errorf("Expected value \"x\", got %q", value.Raw)
	}
}

func TestResolve_OutOfBoundsTruncates(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	resolved, value := Resolve(root, Path{"a", "9"})

	if len(resolved) != 1 || resolved[0] != "a" {
		t.Errorf("Expected prefix [a], got %v", resolved)
	}
	if !value.IsArray() {
		t.Error("Expected resolved value to be the array")
	}
	if got := Count(value); got != 3 {
		t.Errorf("Expected 3 elements, got %d", got)
	}
}

func TestResolve_MissingKeyTruncates(t *testing.T) {
	root := gjson.Parse(`{"a": {"b": 1}}`)

	resolved, value := Resolve(root, Path{"a", "missing", "deeper"})

	if len(resolved) != 1 || resolved[0] != "a" {
		t.Errorf("Expected prefix [a], got %v", resolved)
	}
	if !value.IsObject() {
		t.Error("Expected resolved value to be the inner object")
	}
}

func TestResolve_ScalarStopsWalk(t *testing.T) {
	root := gjson.Parse(`{"a": 1}`)

	resolved, value := Resolve(root, Path{"a", "b"})

	if len(resolved) != 1 || resolved[0] != "a" {
		t.Errorf("Expected prefix [a], got %v", resolved)
	}
	if value.Num != 1 {
		t.Errorf("Expected 1, got %v", value.Raw)
	}
}

func TestResolve_EmptyPath(t *testing.T) {
	root := gjson.Parse(sampleDoc)

	resolved, value := Resolve(root, nil)

	if len(resolved) != 0 {
		t.Errorf("Expected empty path, got %v", resolved)
	}
	if value.Raw != root.Raw {
		t.Error("Expected root value back")
	}
}

func TestResolve_NegativeAndNonNumericIndex(t *testing.T) {
	root := gjson.Parse(`[10, 20]`)

	for _, seg := range []string{"-1", "x", "1.5", ""} {
		resolved, _ := Resolve(root, Path{seg})
		if len(resolved) != 0 {
			t.Errorf("Segment %q: expected truncation at root, got %v", seg, resolved)
		}
	}
}

// The longest-valid-prefix law: resolving the returned prefix again
// reaches the same value, and extending the prefix by the next
// requested segment is invalid.
func TestResolve_PrefixLaw(t *testing.T) {
	root := gjson.Parse(`{"users": [{"name": "ada", "tags": ["a", "b"]}], "n": 3}`)

	requests := []Path{
		{"users", "0", "name"},
		{"users", "0", "tags", "5"},
		{"users", "1", "name"},
		{"n", "anything"},
		{"missing"},
	}

	for _, want := range requests {
		prefix, value := Resolve(root, want)

		again, valueAgain := Resolve(root, prefix)
		if again.Key() != prefix.Key() {
			t.Errorf("Resolve(%v): prefix %v not stable", want, prefix)
		}
		if valueAgain.Raw != value.Raw {
			t.Errorf("Resolve(%v): re-resolving prefix reached a different value", want)
		}

		if len(prefix) < len(want) {
			extended, _ := Resolve(root, want[:len(prefix)+1])
			if len(extended) != len(prefix) {
				t.Errorf("Resolve(%v): prefix %v is not the longest valid prefix", want, prefix)
			}
		}
	}
}

func TestResolve_KeyWithPathSpecialChars(t *testing.T) {
	root := gjson.Parse(`{"a.b": {"*": 1}, "a": {"b": 2}}`)

	resolved, value := Resolve(root, Path{"a.b", "*"})

	if len(resolved) != 2 {
		t.Fatalf("Expected full resolution, got %v", resolved)
	}
	if value.Num != 1 {
		t.Errorf("Expected 1, got %v", value.Raw)
	}
}

func TestPath_String(t *testing.T) {
	if got := (Path{}).String(); got != "Root" {
		t.Errorf("Expected \"Root\" for empty path, got %q", got)
	}
	if got := (Path{"a", "2", "b"}).String(); got != "a → 2 → b" {
		t.Errorf("Unexpected breadcrumb: %q", got)
	}
}

func TestPath_KeyCollisions(t *testing.T) {
	// The concatenation scheme the key replaces was ambiguous for
	// sibling names sharing a separator; these must differ.
	a := Path{"a/b", "c"}.Key()
	b := Path{"a", "b/c"}.Key()
	if a == b {
		t.Errorf("Expected distinct keys, both were %q", a)
	}

	if got := (Path{}).Key(); got != "" {
		t.Errorf("Expected empty key for root, got %q", got)
	}
	if !strings.Contains((Path{"x~y"}).Key(), "~0") {
		t.Error("Expected tilde escaping in key")
	}
}

func TestPath_ChildDoesNotAliasParent(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "a"

	first := base.Child("b")
	second := base.Child("c")

	if first[1] != "b" || second[1] != "c" {
		t.Errorf("Child paths clobbered each other: %v / %v", first, second)
	}
}

func TestPath_Parent(t *testing.T) {
	p := Path{"a", "b"}
	if got := p.Parent().String(); got != "a" {
		t.Errorf("Expected parent \"a\", got %q", got)
	}
	if got := (Path{}).Parent(); len(got) != 0 {
		t.Errorf("Expected root parent to stay root, got %v", got)
	}
}
