// Package main is the scribectl launcher. All command logic lives in
// pkg/cli; this file only maps errors to exit codes.
package main

import (
	"fmt"
	"os"

	"github.com/entrhq/scribe/pkg/cli"
)

func main() {
	cmd := cli.NewRootCommand()

	if err := cmd.Execute(); err != nil {
		// Tool failures print their own text on stdout and come back
		// with an empty message; those exit silently.
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
