package analytics

import (
	"github.com/swapscope/swapscope-mcp/internal/syncmap"
	"github.com/swapscope/swapscope-mcp/mcp/matcher"
)

// prefixRule assigns a group to every tool name matching a prefix pattern.
type prefixRule struct {
	pattern string
	group   string
}

// Groups maps a tool name to its logical category.  Explicit entries win,
// then prefix rules in declaration order, then the fallback.  The mapping is
// read-only at invocation time; overrides are applied during configuration.
type Groups struct {
	explicit *syncmap.Map[string]
	prefixes []prefixRule
	fallback string
}

// DefaultGroups returns the built-in tool categorisation.
func DefaultGroups() *Groups {
	g := &Groups{
		explicit: syncmap.NewRegistry[string](),
		prefixes: []prefixRule{{pattern: "gitbook_", group: "documentation"}},
		fallback: "api",
	}
	for name, group := range map[string]string{
		"list_chains":     "market",
		"get_token":       "tokens",
		"get_token_price": "tokens",
		"search_tokens":   "tokens",
		"list_pools":      "pools",
		"get_swap_quote":  "trading",
		"get_gas_price":   "gas",
	} {
		g.explicit.Set(name, group)
	}
	return g
}

// Override pins a tool name to a group, taking precedence over prefix rules.
func (g *Groups) Override(name, group string) {
	if name != "" && group != "" {
		g.explicit.Set(name, group)
	}
}

// Group resolves the category for a tool name.
func (g *Groups) Group(name string) string {
	if group, ok := g.explicit.Lookup(name); ok {
		return group
	}
	for _, rule := range g.prefixes {
		if matcher.Match(rule.pattern, name) {
			return rule.group
		}
	}
	return g.fallback
}
