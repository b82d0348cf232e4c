// Package config declares the YAML configuration consumed by swapscope-mcp:
// MCP server options, REST API credentials, documentation proxy settings and
// analytics wiring.  Configuration can be loaded from a local path or any URL
// scheme the afs virtual filesystem understands.
package config
