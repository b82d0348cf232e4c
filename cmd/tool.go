package cmd

import (
	"encoding/json"
	"fmt"
)

// ToolCmd prints metadata & input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" positional-arg-name:"name" description:"tool name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(struct {
			Name        string      `json:"name"`
			Description string      `json:"description"`
			InputSchema interface{} `json:"inputSchema"`
		}{c.Name, description, schema}, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Name : %s\n", c.Name)
	fmt.Printf("Desc : %s\n", description)
	js, _ := json.MarshalIndent(schema, "", "  ")
	fmt.Printf("InputSchema:\n%s\n", string(js))
	return nil
}
