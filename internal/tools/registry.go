// Package tools defines the tool catalog and the dispatch contract between
// the MCP transport and the dotfile queries. The dispatcher never returns an
// error to the transport: every failure mode renders to a human-readable
// text segment, and a result tag keeps the cases distinguishable for
// internal callers.
package tools

// Tool names accepted by the dispatcher.
const (
	ToolListDotfiles      = "list_dotfiles"
	ToolGetDotfileContent = "get_dotfile_content"
)

// ArgFilepath is the single argument get_dotfile_content accepts.
const ArgFilepath = "filepath"

// ArgSpec describes one accepted argument of a tool.
type ArgSpec struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Descriptor describes one tool: its name, a human-readable description,
// and the arguments it accepts.
type Descriptor struct {
	Name        string
	Description string
	Args        []ArgSpec
}

// Registry returns the static tool catalog. The catalog is fixed for the
// process lifetime: always the same two descriptors in the same order.
func Registry() []Descriptor {
	return []Descriptor{
		{
			Name:        ToolListDotfiles,
			Description: "List all dotfiles managed by the repository",
		},
		{
			Name:        ToolGetDotfileContent,
			Description: "Get the content of a specific dotfile",
			Args: []ArgSpec{
				{
					Name:        ArgFilepath,
					Type:        "string",
					Description: "Path to the dotfile",
					Required:    true,
				},
			},
		},
	}
}
