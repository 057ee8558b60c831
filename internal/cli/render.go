package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/config"
	apperrors "github.com/nidhal-selmi/DeciMaLExample/pkg/errors"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/dot"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/mermaid"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render/plantuml"
)

// textExts maps each notation to the file extension of its text output.
var textExts = map[string]string{
	"mermaid":  "mmd",
	"plantuml": "puml",
	"dot":      "dot",
}

// outputExts is the set of extensions stripped when deriving a base path
// from the --output flag.
var outputExts = map[string]bool{
	"mmd": true, "puml": true, "dot": true, "svg": true, "png": true, "json": true,
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs)
	notations  []string // target notations: "mermaid", "plantuml", "dot"
	formats    []string // output formats: "text", "svg", "png"
	configPath string   // TOML settings file
	policy     string   // scope policy override ("" uses the config value)
}

// newRenderCmd creates the render command for generating diagrams.
// It supports three notations (mermaid, plantuml, dot) and renders Graphviz
// documents to SVG or PNG in-process.
//
// Default settings:
//   - notation: mermaid
//   - format: text
//   - geometry and ordering come from the config file, or built-in defaults
func newRenderCmd() *cobra.Command {
	var notationsStr, formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <model>",
		Short: "Render a model as diagram notation",
		Long: `Render a DeciMaL model file (or a JSON tree export) as diagram notation.

Text output is the notation source itself. The svg and png formats are only
available for dot, where the Graphviz document is laid out in-process.

Examples:
  decimal render drone.sysml                          # Mermaid to stdout
  decimal render drone.sysml -n plantuml -o drone.puml
  decimal render drone.sysml -n dot -f svg            # drone.svg
  decimal render drone.json -n mermaid,plantuml,dot   # one file per notation`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts.notations = splitList(notationsStr, "mermaid")
			opts.formats = splitList(formatsStr, "text")
			for _, n := range opts.notations {
				if err := apperrors.ValidateNotation(n); err != nil {
					return err
				}
			}
			for _, f := range opts.formats {
				if err := apperrors.ValidateFormat(f); err != nil {
					return err
				}
			}
			return runRender(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single notation/format) or base path (multiple)")
	cmd.Flags().StringVarP(&notationsStr, "notation", "n", "", "target notation(s): mermaid (default), plantuml, dot (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML settings file")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "scope policy override: indent, brace")

	return cmd
}

// splitList parses a comma-separated flag value, falling back to def when empty.
func splitList(s, def string) []string {
	if s == "" {
		return []string{def}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a known format extension (.mmd, .svg, etc.), it strips that
// extension. This is used when generating multiple files
// (e.g., drone_mermaid.mmd, drone_dot.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if outputExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the model and renders it to the requested notations and
// formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load config")
	}

	policy := opts.policy
	if policy == "" {
		policy = cfg.Parser.ScopePolicy
	}

	logger.Infof("Rendering %s", input)
	tree, warnings, err := loadModel(input, policy)
	if err != nil {
		return err
	}
	logger.Infof("Loaded model: %d elements, depth %d", tree.Count(), tree.Depth())
	reportWarnings(warnings)

	if len(opts.notations) == 1 && len(opts.formats) == 1 {
		return renderSingle(ctx, tree, opts.notations[0], opts.formats[0], input, opts, cfg)
	}
	return renderMultiple(ctx, tree, input, opts, cfg)
}

// renderSingle renders a single notation and format to a single output file.
// If opts.output is empty, the output path is derived from the input file name.
func renderSingle(ctx context.Context, tree *model.Node, notation, format, input string, opts *renderOpts, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	data, err := renderNotation(ctx, tree, notation, format, cfg)
	if errors.Is(err, errSkipFormat) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "%s output is only available for dot", format)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s/%s: %d bytes", notation, format, len(data))

	if format == "text" && opts.output == "" {
		fmt.Println(string(data))
		return nil
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + outputExt(notation, format)
	}
	if err := writeFile(outputPath, data); err != nil {
		return err
	}
	logger.Infof("Generated %s", outputPath)
	return nil
}

// renderMultiple renders all requested notation/format combinations to
// separate files. File names are derived from basePath and include the
// notation when multiple notations are requested.
func renderMultiple(ctx context.Context, tree *model.Node, input string, opts *renderOpts, cfg config.Config) error {
	base := basePath(opts.output, input)

	for _, notation := range opts.notations {
		for _, format := range opts.formats {
			if err := renderAndWrite(ctx, tree, notation, format, base, opts, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderAndWrite renders a single notation/format combination and writes it
// to a file. If the combination is unsupported (e.g., mermaid PNG), it is
// silently skipped with a debug log.
func renderAndWrite(ctx context.Context, tree *model.Node, notation, format, base string, opts *renderOpts, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	data, err := renderNotation(ctx, tree, notation, format, cfg)
	if errors.Is(err, errSkipFormat) {
		logger.Debugf("Skipping %s/%s (unsupported combination)", notation, format)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s/%s: %w", notation, format, err)
	}

	// Build filename: base_notation.ext (or base.ext if single notation)
	var path string
	if len(opts.notations) == 1 {
		path = fmt.Sprintf("%s.%s", base, outputExt(notation, format))
	} else {
		path = fmt.Sprintf("%s_%s.%s", base, notation, outputExt(notation, format))
	}

	if err := writeFile(path, data); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	return nil
}

// errSkipFormat is a sentinel error indicating an unsupported
// notation/format combination.
var errSkipFormat = fmt.Errorf("skip unsupported format")

// outputExt returns the file extension for a notation/format pair.
func outputExt(notation, format string) string {
	if format == "text" {
		return textExts[notation]
	}
	return format
}

// newRenderer builds the renderer for a notation from the settings.
func newRenderer(notation string, cfg config.Config) (render.Renderer, error) {
	switch notation {
	case "mermaid":
		return mermaid.New(cfg.MermaidOptions()), nil
	case "plantuml":
		return plantuml.New(cfg.PlantUMLOptions()), nil
	case "dot":
		return dot.New(cfg.DotOptions()), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidNotation, "unknown notation %q", notation)
	}
}

// renderNotation dispatches to the appropriate renderer and format backend.
// It returns errSkipFormat for unsupported combinations (image output for
// notations other than dot).
func renderNotation(ctx context.Context, tree *model.Node, notation, format string, cfg config.Config) ([]byte, error) {
	r, err := newRenderer(notation, cfg)
	if err != nil {
		return nil, err
	}

	text, err := r.Render(tree)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRender, err, "render %s", notation)
	}
	if format == "text" {
		return text, nil
	}
	if notation != "dot" {
		return nil, errSkipFormat
	}
	return renderImage(ctx, text, format)
}

// renderImage lays out a DOT document with the in-process Graphviz engine.
func renderImage(ctx context.Context, dotSrc []byte, format string) ([]byte, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	defer spinner.Stop()

	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = dot.RenderSVG(ctx, dotSrc)
	case "png":
		data, err = dot.RenderPNG(ctx, dotSrc)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRender, err, "graphviz %s", format)
	}
	return data, nil
}

// writeFile writes rendered output to path.
func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}
