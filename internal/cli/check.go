package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	policy string // scope policy: "indent" or "brace"
}

// newCheckCmd creates the check command. It parses a model file and reports
// every line the parser could not classify, failing when any are found.
// This makes it usable as a CI gate for model files.
func newCheckCmd() *cobra.Command {
	opts := checkOpts{policy: "indent"}

	cmd := &cobra.Command{
		Use:   "check <model>",
		Short: "Report unhandled lines in a model file",
		Long: `Check a DeciMaL model file for lines the parser does not understand.

The command exits non-zero when any unhandled lines are found, so it can
gate model files in CI.

Examples:
  decimal check drone.sysml
  decimal check drone.sysml --policy brace`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "scope policy: indent (default), brace")

	return cmd
}

// runCheck parses the model and reports statistics plus unhandled lines.
func runCheck(ctx context.Context, input string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Checking %s", input)

	tree, warnings, err := loadModel(input, opts.policy)
	if err != nil {
		return err
	}

	printStats(tree.Count(), tree.Depth(), len(warnings))
	reportWarnings(warnings)

	if len(warnings) > 0 {
		return fmt.Errorf("%d unhandled line(s) in %s", len(warnings), input)
	}
	printSuccess("%s parses cleanly", input)
	return nil
}
