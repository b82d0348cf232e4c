// Package api provides the SwapScope REST API client together with the
// static MCP tool definitions that expose the blockchain/DeFi data endpoints
// (chains, tokens, prices, pools, quotes, gas).  The client only shapes
// responses for tool output; the API's business semantics stay upstream.
package api
