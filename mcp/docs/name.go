package docs

import "strings"

// DefaultPrefix namespaces every proxied documentation tool as well as the
// three fixed meta tools.
const DefaultPrefix = "gitbook"

// LocalName returns the prefixed name a remote tool is registered under.
func LocalName(prefix, remote string) string {
	return prefix + "_" + remote
}

// RemoteName strips the prefix from a local tool name; the second return is
// false when the name does not carry the prefix.
func RemoteName(prefix, local string) (string, bool) {
	head := prefix + "_"
	if !strings.HasPrefix(local, head) {
		return "", false
	}
	return strings.TrimPrefix(local, head), true
}
