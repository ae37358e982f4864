package jsondoc

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind classifies a JSON value. The set is closed: every value a loaded
// document can contain maps to exactly one of these.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the display name used in tree labels
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// KindOf returns the Kind of a parsed value
func KindOf(value gjson.Result) Kind {
	switch value.Type {
	case gjson.False, gjson.True:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if value.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// IsContainer reports whether the value is an object or an array
func IsContainer(value gjson.Result) bool {
	return value.IsObject() || value.IsArray()
}

// Child is a single member of a container: an object entry keyed by its
// member name, or an array element keyed by its stringified index.
type Child struct {
	Key   string
	Value gjson.Result
}

// Children returns the direct members of a container in document order.
// Object member order is preserved as written in the source file.
// Scalars have no children.
func Children(value gjson.Result) []Child {
	if !IsContainer(value) {
		return nil
	}

	children := make([]Child, 0, countMembers(value))
	if value.IsObject() {
		value.ForEach(func(key, val gjson.Result) bool {
			children = append(children, Child{Key: key.String(), Value: val})
			return true
		})
		return children
	}

	for i, elem := range value.Array() {
		children = append(children, Child{Key: strconv.Itoa(i), Value: elem})
	}
	return children
}

// Count returns the number of direct members of a container, 0 for scalars
func Count(value gjson.Result) int {
	if !IsContainer(value) {
		return 0
	}
	return countMembers(value)
}

func countMembers(value gjson.Result) int {
	n := 0
	value.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}

// ScalarText returns the literal projection of a scalar value: strings
// keep their quotes, numbers, booleans and null are their source text.
// Containers fall back to their raw text.
func ScalarText(value gjson.Result) string {
	switch value.Type {
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return "null"
	default:
		return value.Raw
	}
}
