// internal/cli/show_options.go
package accuracycharts

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

var showOptionsJSON bool

// showOptionsCmd prints the chart options after config overrides.
var showOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the chart options passed to the chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := chartOptions()
		if err != nil {
			return err
		}
		if showOptionsJSON {
			raw, err := opts.MarshalJSON()
			if err != nil {
				return err
			}
			cmd.Println(string(raw))
			return nil
		}
		_, err = pp.Fprintln(cmd.OutOrStdout(), opts.Map())
		return err
	},
}

func init() {
	showCmd.AddCommand(showOptionsCmd)
	showOptionsCmd.Flags().BoolVar(&showOptionsJSON, "json", false, "print the options as JSON")
}
