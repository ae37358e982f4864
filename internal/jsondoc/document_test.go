package jsondoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadFile_Success(t *testing.T) {
	path := writeTemp(t, "data.json", `{"a": [1, 2, {"b": "x"}]}`)

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Name() != "data.json" {
		t.Errorf("Expected name data.json, got %q", doc.Name())
	}
	if !doc.Root.IsObject() {
		t.Error("Expected object root")
	}
	if doc.Size() == 0 {
		t.Error("Expected non-zero size")
	}
}

func TestLoadFile_ScalarRoot(t *testing.T) {
	path := writeTemp(t, "scalar.json", `42`)

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if KindOf(doc.Root) != KindNumber {
		t.Errorf("Expected number root, got %v", KindOf(doc.Root))
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))

	if !errors.Is(err, ErrRead) {
		t.Errorf("Expected ErrRead, got %v", err)
	}
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"a": [1, 2,}`)

	_, err := LoadFile(path)

	if !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse, got %v", err)
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.json", "")

	_, err := LoadFile(path)

	if !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse for empty file, got %v", err)
	}
}
