package accuracycharts

import (
	"strings"

	"github.com/spf13/cobra"
)

// runListCommands prints the command tree of root in a two-column layout.
func runListCommands(out *cobra.Command, root *cobra.Command) {
	commandData := collectCommandData(root, "", "")

	width := 0
	for _, data := range commandData {
		width = max(width, len(data.path))
	}

	out.Println("Commands and Subcommands:")
	for _, data := range commandData {
		if strings.Contains(data.path, "completion") || strings.HasSuffix(data.path, " help") {
			continue
		}
		out.Printf("  %s%s%s\n", data.path, strings.Repeat(" ", width-len(data.path)+2), data.description)
	}
}

// commandInfo is one line of the command listing.
type commandInfo struct {
	path        string
	description string
}

// collectCommandData flattens the command tree under cmd into path and
// description pairs, indenting each level by two spaces.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	all := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		all = append(all, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return all
}
