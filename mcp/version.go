package mcp

// Version is reported during the MCP initialize exchange and by the CLI.
const Version = "0.1.0"
