// Package mcp assembles the SwapScope MCP service.  Its central Service type
// loads configuration, registers the static REST API tools, wires the GitBook
// documentation proxy and exposes the combined registry over an MCP server,
// with an optional wrapper decorating every handler at registration time.
package mcp
