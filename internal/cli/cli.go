// SPDX-License-Identifier: MIT

// Package cli implements the radar command-line interface.
//
// Commands:
//   - detect:  score the nodes of a graph described by a YAML/TOML run file
//   - demo:    run the built-in 4-node example
//   - version: print build information
//
// All commands support --verbose (-v) for debug logging. The logger travels
// through the command context (see withLogger / loggerFromContext).
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "radar"

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	version = "dev" // semantic version, set with SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the build information shown by `radar version` and --version.
// main calls it with values injected through -ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// NewRootCommand builds the command tree. Logs go to logOut; command results
// go to the command's standard output.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "radar ranks anomalous nodes of attributed graphs",
		Long: `radar scores every node of an attributed graph by residual analysis:
nodes whose attributes cannot be reconstructed from the rest of the graph
receive large residuals and rank first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}
	root.SetVersionTemplate(versionString() + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDetectCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with ctx, logging to logOut.
func Execute(ctx context.Context, logOut io.Writer) error {
	return NewRootCommand(logOut).ExecuteContext(ctx)
}

func versionString() string {
	s := fmt.Sprintf("%s %s", appName, version)
	if commit != "" {
		s += "\ncommit: " + commit
	}
	if date != "" {
		s += "\nbuilt: " + date
	}
	return s
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
