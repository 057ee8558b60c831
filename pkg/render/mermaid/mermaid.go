// Package mermaid renders a model tree as a Mermaid flowchart.
//
// Packages become subgraphs wrapping their children; logical functions
// become nodes with a two-compartment HTML label (name over description);
// logical components and actors become nodes with a bottom-only label; any
// other kind becomes a plain node showing just its name. Only containment is
// represented.
//
// Node identifiers are drawn from a per-call counter rather than derived
// from display names, so two parts sharing a name can never collide and
// names with spaces or punctuation need no escaping.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/render"
)

// Compartments describes the geometry of an HTML table label.
type Compartments struct {
	Width        int
	TopHeight    int
	BottomHeight int
}

// Label geometry defaults, matching the notation's established styling.
var (
	defaultFunction  = Compartments{Width: 120, TopHeight: 15, BottomHeight: 30}
	defaultComponent = Compartments{Width: 150, TopHeight: 10, BottomHeight: 40}
)

// Options configures flowchart rendering. Zero-valued geometry falls back
// to the defaults.
type Options struct {
	// Function is the label geometry for LogicalFunction nodes.
	Function Compartments

	// Component is the label geometry for LogicalComponent and LogicalActor
	// nodes.
	Component Compartments
}

// Renderer emits Mermaid flowchart documents.
type Renderer struct {
	opts Options
}

// New creates a flowchart renderer.
func New(opts Options) *Renderer {
	if opts.Function == (Compartments{}) {
		opts.Function = defaultFunction
	}
	if opts.Component == (Compartments{}) {
		opts.Component = defaultComponent
	}
	return &Renderer{opts: opts}
}

// Notation returns "mermaid".
func (r *Renderer) Notation() string { return "mermaid" }

// Render emits the flowchart for the tree, skipping the synthetic root.
func (r *Renderer) Render(tree *model.Node) ([]byte, error) {
	var b strings.Builder
	b.WriteString("flowchart TD\n")

	seq := render.NewSeq("n")
	for _, child := range tree.Parts {
		r.emit(&b, child, 1, seq)
	}
	return []byte(b.String()), nil
}

// emit writes one node (and, for containers, its children) at the given
// nesting level. Four spaces per level keep the generated code readable.
func (r *Renderer) emit(b *strings.Builder, n *model.Node, level int, seq *render.Seq) {
	spacing := strings.Repeat("    ", level)
	id := seq.Next()

	switch n.Kind {
	case model.KindPackage:
		fmt.Fprintf(b, "%ssubgraph %s[%s]\n", spacing, id, n.Name)
		for _, child := range n.Parts {
			r.emit(b, child, level+1, seq)
		}
		fmt.Fprintf(b, "%send\n", spacing)
		return
	case model.KindLogicalFunction:
		label := htmlLabel(n.Name, n.Description, r.opts.Function)
		fmt.Fprintf(b, "%s%s[%s]\n", spacing, id, label)
	case model.KindLogicalComponent, model.KindLogicalActor:
		label := htmlLabel("", n.Name, r.opts.Component)
		fmt.Fprintf(b, "%s%s[%s]\n", spacing, id, label)
	default:
		fmt.Fprintf(b, "%s%s[%s]\n", spacing, id, n.Name)
	}

	for _, child := range n.Parts {
		r.emit(b, child, level+1, seq)
	}
}

// htmlLabel builds a two-compartment HTML table label. A bottom-only label
// is the same table with an empty top cell.
func htmlLabel(top, bottom string, c Compartments) string {
	return fmt.Sprintf(`<table border="1" cellspacing="0" cellpadding="2">
  <tr><td fixedsize="true" width="%d" height="%d" align="center">%s</td></tr>
  <tr><td fixedsize="true" width="%d" height="%d" align="center">%s</td></tr>
</table>`, c.Width, c.TopHeight, top, c.Width, c.BottomHeight, bottom)
}
