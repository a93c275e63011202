// internal/cli/show.go
package accuracycharts

import (
	"github.com/spf13/cobra"
)

// showCmd groups the commands that display resolved settings.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying settings",
	Long:  `The 'show' command groups subcommands that display the loaded configuration and the resulting chart options.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
