// Package conv provides tiny generic helpers for moving between values and
// pointers.  The MCP protocol schema models optional fields as pointers
// (tool descriptions, error flags) which makes these one-liners ubiquitous
// across tool registration and result shaping code.
package conv
