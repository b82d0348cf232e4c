package cmd

import (
	"context"
	"fmt"
)

// StatusCmd reports which documentation tools are currently proxyable.  When
// the GitBook upstream cannot be reached the list degrades to the three meta
// tools.
type StatusCmd struct{}

func (c *StatusCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	names := svc.ProxyToolNames(context.Background())
	if len(names) == 0 {
		fmt.Println("documentation proxy not configured")
		return nil
	}
	fmt.Printf("proxyable documentation tools (%d):\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
