// internal/cli/list.go
package accuracycharts

import "github.com/spf13/cobra"

// listCmd groups the listing commands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
}

func init() {
	rootCmd.AddCommand(listCmd)
}
