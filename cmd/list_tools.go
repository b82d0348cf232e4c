package cmd

import (
	"fmt"

	"github.com/swapscope/swapscope-mcp/internal/conv"
)

// ListToolsCmd prints every registered tool, optionally filtered by pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name pattern (prefix or trailing *)" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	// Tools() already sorts by name for deterministic output.
	for _, entry := range svc.MatchTools(c.Pattern) {
		fmt.Printf("%s\t%s\n", entry.Metadata.Name, conv.Dereference(entry.Metadata.Description))
	}
	return nil
}
