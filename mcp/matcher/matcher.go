package matcher

import "strings"

// Match reports whether a tool name satisfies pattern.  "*" matches every
// name, an empty pattern none; a trailing "*" is stripped and the remainder
// compared by prefix, which is also the behaviour for plain patterns so that
// "gitbook_" selects every proxied documentation tool.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	pattern = strings.TrimSuffix(pattern, "*")
	return strings.HasPrefix(name, pattern)
}
