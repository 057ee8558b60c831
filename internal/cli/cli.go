// Package cli implements the decimal command-line interface.
//
// This package provides commands for parsing DeciMaL models into trees,
// rendering them as Mermaid, PlantUML, or Graphviz diagrams, checking models
// for unhandled lines, and browsing trees interactively. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Parse a model file and export the tree as JSON
//   - render: Generate diagram notation (and SVG/PNG for Graphviz)
//   - check: Report unhandled lines in a model file
//   - tree: Browse the parsed tree interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/nidhal-selmi/DeciMaLExample/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/buildinfo"
)

// appName is the application name used for display and completion scripts.
const appName = "decimal"

// Execute runs the decimal CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (parse, render,
// check, tree, completion), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "DeciMaL converts SysML-style models into diagram notations",
		Long:         `DeciMaL is a CLI tool for converting indentation-based SysML-style model descriptions into Mermaid flowcharts, PlantUML containment diagrams, and Graphviz cluster graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
