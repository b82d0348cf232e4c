// Package tool defines the currency shared by every tool provider in
// swapscope-mcp: a registrable Entry (metadata plus handler) and helpers for
// shaping call results.  Both the static REST API tools and the dynamically
// proxied documentation tools produce entries consumed by the service
// registry.
package tool
