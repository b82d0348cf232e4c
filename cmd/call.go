package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/swapscope/swapscope-mcp/mcp/tool"
)

// CallCmd invokes one registered tool from the CLI.  Arguments can be
// supplied either inline via -i/--input or loaded from a JSON file via
// --file.
type CallCmd struct {
	Name   string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name" required:"yes"`
	Inline string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File   string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	JSON   bool   `long:"json" description:"Print the full result as JSON"`
}

func (c *CallCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	args, err := c.arguments()
	if err != nil {
		return err
	}

	res, err := svc.CallTool(context.Background(), c.Name, args)
	if err != nil {
		return err
	}

	if c.JSON {
		data, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	for _, elem := range res.Content {
		fmt.Println(elem.Text)
	}
	if tool.IsError(res) {
		return fmt.Errorf("tool %q reported failure", c.Name)
	}
	return nil
}

func (c *CallCmd) arguments() (map[string]interface{}, error) {
	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}
