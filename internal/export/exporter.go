package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rebeliceyang/lazyjson/internal/jsondoc"
)

// WriteJSON exports a JSON value to a file, pretty-printed with the
// given indent ("" means the default two spaces)
func WriteJSON(value gjson.Result, path, indent string) error {
	if indent == "" {
		indent = jsondoc.DefaultIndent
	}
	data := jsondoc.FormatIndent(value, indent)

	if err := os.WriteFile(path, []byte(data+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// WriteCSV exports an array of objects to a CSV file. The header is the
// union of keys in first-seen order; nested values are written compact.
func WriteCSV(value gjson.Result, path string) error {
	if !value.IsArray() {
		return fmt.Errorf("CSV export requires an array, got %s", jsondoc.KindOf(value))
	}

	rows := value.Array()

	// Collect the header from every row, preserving first-seen order
	var header []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if !row.IsObject() {
			return fmt.Errorf("CSV export requires an array of objects")
		}
		row.ForEach(func(key, _ gjson.Result) bool {
			if !seen[key.String()] {
				seen[key.String()] = true
				header = append(header, key.String())
			}
			return true
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, len(header))
		for i, key := range header {
			record[i] = cellText(row, key)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

func cellText(row gjson.Result, key string) string {
	var cell gjson.Result
	found := false
	row.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			cell = v
			found = true
			return false
		}
		return true
	})
	if !found {
		return ""
	}

	switch {
	case cell.Type == gjson.Null:
		return ""
	case cell.IsObject() || cell.IsArray():
		return jsondoc.Compact(cell)
	default:
		return cell.String()
	}
}

// SliceFileName builds an export file path next to the source document
// from the path of the exported subtree. The result never equals the
// source path, so an export cannot clobber the file being viewed.
func SliceFileName(docPath string, path jsondoc.Path, ext string) string {
	dir := filepath.Dir(docPath)
	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	if len(path) == 0 {
		return filepath.Join(dir, base+"_root."+ext)
	}

	parts := make([]string, 0, len(path))
	for _, seg := range path {
		parts = append(parts, sanitizeSegment(seg))
	}

	return filepath.Join(dir, base+"_"+strings.Join(parts, "_")+"."+ext)
}

func sanitizeSegment(seg string) string {
	var b strings.Builder
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
