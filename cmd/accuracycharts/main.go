// cmd/accuracycharts/main.go
package main

import (
	cmd "github.com/mwiater/accuracycharts/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main hands the build metadata to the CLI and runs the root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
