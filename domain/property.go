package domain

import "regexp"

// propertyPattern matches values that are exactly one ${name} reference,
// tolerating surrounding whitespace. Partial occurrences inside a larger
// value do not count as references.
var propertyPattern = regexp.MustCompile(`^\s*\$\{([^}]+)\}\s*$`)

// IsPropertyRef reports whether the value is a ${name} property reference.
func IsPropertyRef(value string) bool {
	return propertyPattern.MatchString(value)
}

// PropertyName returns the name inside ${...}, or "" when the value is not a
// property reference.
func PropertyName(value string) string {
	m := propertyPattern.FindStringSubmatch(value)
	if m == nil {
		return ""
	}
	return m[1]
}

// ParseUpdateMode classifies a raw version value for callers deciding how it
// can be rewritten.
func ParseUpdateMode(value string) UpdateMode {
	return UpdateMode{
		IsPropRef: IsPropertyRef(value),
		PropName:  PropertyName(value),
	}
}
