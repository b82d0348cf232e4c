package main

import (
	"os"

	"github.com/swapscope/swapscope-mcp/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
