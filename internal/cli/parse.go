package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/nidhal-selmi/DeciMaLExample/pkg/errors"
	pkgio "github.com/nidhal-selmi/DeciMaLExample/pkg/io"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/sysml"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path (stdout if empty)
	policy string // scope policy: "indent" or "brace"
}

// newParseCmd creates the parse command. It reads a DeciMaL model file,
// parses it into a tree, and writes the tree as JSON.
//
// Warnings about unhandled lines go to the terminal, never into the output,
// so the JSON stays machine-readable even for imperfect models.
func newParseCmd() *cobra.Command {
	opts := parseOpts{policy: "indent"}

	cmd := &cobra.Command{
		Use:   "parse <model>",
		Short: "Parse a model file and export the tree as JSON",
		Long: `Parse a DeciMaL model file into a containment tree and export it as JSON.

The JSON output can be fed back to 'render' in place of the model file,
skipping the parse step.

Examples:
  decimal parse drone.sysml                  # JSON to stdout
  decimal parse drone.sysml -o drone.json    # JSON to file
  decimal parse drone.sysml --policy brace   # brace-delimited scopes`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runParse(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "scope policy: indent (default), brace")

	return cmd
}

// runParse loads the model and writes the resulting tree as JSON.
func runParse(ctx context.Context, input string, opts *parseOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Parsing %s", input)

	prog := newProgress(logger)
	tree, warnings, err := loadModel(input, opts.policy)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d elements", tree.Count()))

	reportWarnings(warnings)
	return writeTree(tree, opts.output, logger)
}

// loadModel reads a model from path and returns the parsed tree.
//
// JSON files are imported directly and never produce warnings; anything else
// is parsed as DeciMaL notation under the given scope policy.
func loadModel(path, policy string) (*model.Node, []sysml.Warning, error) {
	if err := apperrors.ValidateModelPath(path); err != nil {
		return nil, nil, err
	}
	if err := apperrors.ValidateScopePolicy(policy); err != nil {
		return nil, nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		tree, err := pkgio.ImportJSON(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "model file not found: %s", path)
			}
			return nil, nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "import %s", path)
		}
		return tree, nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "model file not found: %s", path)
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "open %s", path)
	}
	defer f.Close()

	parser := sysml.New(sysml.Options{Policy: scopePolicy(policy)})
	tree, warnings, err := parser.Parse(f)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "parse %s", path)
	}
	return tree, warnings, nil
}

// scopePolicy maps a validated policy name onto the parser's enum.
func scopePolicy(name string) sysml.ScopePolicy {
	if name == "brace" {
		return sysml.PolicyBrace
	}
	return sysml.PolicyIndent
}

// reportWarnings prints one line per unhandled model line.
func reportWarnings(warnings []sysml.Warning) {
	for _, w := range warnings {
		printWarning("line %d: %s", w.Line, w.Raw)
	}
}

// writeTree serializes the tree as JSON to the specified path (or stdout if
// empty). The logger is notified on success with the output path.
func writeTree(tree *model.Node, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(tree, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote tree to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
