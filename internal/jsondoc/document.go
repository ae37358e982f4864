package jsondoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Load failures come in exactly two recoverable flavors. Callers match
// with errors.Is to decide how to present them; either way the previous
// document is left untouched.
var (
	ErrRead  = errors.New("could not read file")
	ErrParse = errors.New("invalid JSON")
)

// Document is a single loaded JSON file. The raw bytes are retained for
// the lifetime of the document so every gjson.Result derived from Root
// stays valid, and so object member order is exactly the file's order.
type Document struct {
	Path string
	Root gjson.Result

	raw []byte
}

// LoadFile reads and parses a JSON file. The load is all-or-nothing: on
// any failure no Document is returned and the caller's state is not
// affected. The file may contain any single JSON value at the top level
// (object, array, or scalar).
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrParse, path)
	}

	return &Document{
		Path: path,
		Root: gjson.ParseBytes(data),
		raw:  data,
	}, nil
}

// Name returns the display name of the loaded file
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Size returns the size of the raw document in bytes
func (d *Document) Size() int {
	return len(d.raw)
}
