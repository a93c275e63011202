// internal/cli/list_commands.go
package accuracycharts

import "github.com/spf13/cobra"

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(cmd, rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}
