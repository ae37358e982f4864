package jsondoc

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DefaultIndent is the indentation unit used when none is configured
const DefaultIndent = "  "

// formatPlaceholder is returned instead of propagating a serialization
// failure. It cannot occur for values that came from a loaded document.
const formatPlaceholder = "Error formatting JSON"

// Format pretty-prints a value: nested indentation, one key or element
// per line, member order preserved. Deterministic for identical input.
func Format(value gjson.Result) string {
	return FormatIndent(value, DefaultIndent)
}

// FormatIndent is Format with a custom indentation unit
func FormatIndent(value gjson.Result, indent string) string {
	if !value.Exists() || !gjson.Valid(value.Raw) {
		return formatPlaceholder
	}
	if indent == "" {
		indent = DefaultIndent
	}

	// Width 1 forces every non-empty container onto multiple lines, so
	// the output shape does not depend on how short a subtree happens
	// to be.
	out := pretty.PrettyOptions([]byte(value.Raw), &pretty.Options{
		Indent: indent,
		Width:  1,
	})
	return strings.TrimRight(string(out), "\n")
}

// Compact renders a value as single-line JSON
func Compact(value gjson.Result) string {
	if !value.Exists() || !gjson.Valid(value.Raw) {
		return formatPlaceholder
	}
	return string(pretty.Ugly([]byte(value.Raw)))
}

// Truncate shortens a display string to at most maxLen runes, marking
// the cut with an ellipsis
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "…"
}
