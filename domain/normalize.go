package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Normalize converts a heterogeneous scalar into its canonical trimmed string
// form. It is the defensive boundary against upstream matchers that hand back
// strings, byte slices, numbers, or nothing at all, and it never fails:
// nil becomes "", byte slices are decoded with invalid sequences replaced,
// and anything else is stringified before trimming.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(strings.ToValidUTF8(string(v), "�"))
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Flatten converts an XML match result into an ordered list of trimmed
// strings. The input may be nil (empty list), a single scalar (one-element
// list), or a slice whose elements are scalars or single-key maps produced by
// an upstream XML matcher. When a map unexpectedly carries more than one key,
// the keys are sorted and the first value wins, so the result never depends
// on map iteration order.
func Flatten(matches any) []string {
	if matches == nil {
		return []string{}
	}

	var elements []any
	switch m := matches.(type) {
	case []any:
		elements = m
	case []string:
		elements = make([]any, 0, len(m))
		for _, s := range m {
			elements = append(elements, s)
		}
	default:
		elements = []any{matches}
	}

	out := make([]string, 0, len(elements))
	for _, el := range elements {
		out = append(out, Normalize(matchValue(el)))
	}
	return out
}

// matchValue unwraps a single-key map element, picking the lexicographically
// first key when there is more than one.
func matchValue(element any) any {
	mapping, ok := element.(map[string]any)
	if !ok || len(mapping) == 0 {
		return element
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return mapping[keys[0]]
}

// FirstText returns the first flattened match, or fallback when there is none.
func FirstText(matches any, fallback string) string {
	values := Flatten(matches)
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}

// HasAny reports whether the match result contains at least one element.
func HasAny(matches any) bool {
	return len(Flatten(matches)) > 0
}
