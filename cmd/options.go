package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML path or URL"`

	Serve     *ServeCmd     `command:"serve"      description:"Start the MCP server exposing the SwapScope tools"`
	Call      *CallCmd      `command:"call"       description:"Invoke one registered tool"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one tool"`
	Status    *StatusCmd    `command:"status"     description:"Report documentation proxy status"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "call":
		o.Call = &CallCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "status":
		o.Status = &StatusCmd{}
	}
}
