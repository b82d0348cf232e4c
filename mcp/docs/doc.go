// Package docs proxies the GitBook MCP server that hosts the SwapScope
// product documentation.  It discovers the remote tool definitions, translates
// their JSON schemas into locally enforceable validators, re-registers each
// tool under the gitbook_ prefix and adds a small set of meta tools (health,
// refresh, list_tools) that keep working when the upstream is unreachable.
package docs
