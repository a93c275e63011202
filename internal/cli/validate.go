// internal/cli/validate.go
package accuracycharts

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mwiater/accuracycharts/internal/records"
	"github.com/spf13/cobra"
)

var errInvalidRecords = errors.New("records failed validation")

// validateCmd checks a records file against the record schema.
var validateCmd = &cobra.Command{
	Use:   "validate [records-file]",
	Short: "Check a records file against the metric record schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveInput(args)
		if err != nil {
			return err
		}
		return runValidate(cmd.InOrStdin(), cmd.OutOrStdout(), path)
	},
}

func runValidate(stdin io.Reader, out io.Writer, path string) error {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var err error
	if path == stdinPath {
		raw, readErr := io.ReadAll(stdin)
		if readErr != nil {
			return fmt.Errorf("unable to read stdin: %w", readErr)
		}
		err = records.Validate(raw)
	} else {
		if _, statErr := os.Stat(path); statErr != nil {
			return fmt.Errorf("unable to read records file %s: %w", path, statErr)
		}
		err = records.ValidateFile(path)
	}

	var verr *records.ValidationError
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s %s\n", green("VALID"), path)
		return nil
	case errors.As(err, &verr):
		fmt.Fprintf(out, "%s %s\n", red("INVALID"), path)
		for _, p := range verr.Problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return errInvalidRecords
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
