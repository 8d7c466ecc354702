// Package cli implements the ordtree command-line interface.
//
// ordtree replays scripted operations against the plain and AVL variants of
// Trees.Tree and prints the resulting keys and shape.
//
// # Commands
//
//   - run: replay one or more TOML scenario files
//   - demo: replay the built-in scenarios
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging of every
// step. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// Execute runs the ordtree CLI with the process arguments.
func Execute(ctx context.Context) error {
	root := newRootCmd(os.Stdout, os.Stderr)
	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Results go to out, logs to logw.
func newRootCmd(out, logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "ordtree",
		Short:        "ordtree replays operations on binary search trees",
		Long:         `ordtree replays put/get/delete scripts against a plain binary search tree or an AVL tree and prints the resulting keys, height and level-by-level shape.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newDemoCmd())
	return root
}
