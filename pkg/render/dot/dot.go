// Package dot renders a model tree as a Graphviz cluster graph.
//
// Every node, regardless of kind, becomes its own cluster subgraph holding a
// single representative node; container kinds additionally nest their
// children's clusters. The representative node is the connectable stand-in
// for the whole cluster. Identifiers come from one per-call counter shared
// by clusters and representatives, so they are unique by construction and
// never derived from display names.
//
// The osage layout engine packs clusters rather than routing edges, which
// suits a pure containment diagram. One deliberate exception exists: when
// two specific top-level clusters are both present, an invisible edge
// between their representatives nudges the layout into a stable vertical
// order. The edge carries no semantic relationship.
package dot

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

// Default endpoints of the invisible ordering edge.
const (
	DefaultOrderFrom = "DroneFunctions"
	DefaultOrderTo   = "DroneLogicalArchitecture"
)

// Label geometry defaults per kind.
var (
	defaultFunction  = Compartments{Width: 120, TopHeight: 15, BottomHeight: 30}
	defaultComponent = Compartments{Width: 150, TopHeight: 10, BottomHeight: 40}
	defaultActor     = Compartments{Width: 120, TopHeight: 10, BottomHeight: 40}
)

// Options configures cluster-graph rendering. Zero values take defaults.
type Options struct {
	// Function is the label geometry for LogicalFunction representatives.
	Function Compartments

	// Component is the label geometry for childless LogicalComponent
	// representatives.
	Component Compartments

	// Actor is the label geometry for LogicalActor representatives.
	Actor Compartments

	// OrderFrom and OrderTo name the two top-level nodes joined by the
	// invisible ordering edge. The edge is emitted only when both are
	// present among the tree's direct children.
	OrderFrom string
	OrderTo   string
}

// Renderer emits Graphviz DOT documents.
type Renderer struct {
	opts Options
}

// New creates a cluster-graph renderer.
func New(opts Options) *Renderer {
	if opts.Function == (Compartments{}) {
		opts.Function = defaultFunction
	}
	if opts.Component == (Compartments{}) {
		opts.Component = defaultComponent
	}
	if opts.Actor == (Compartments{}) {
		opts.Actor = defaultActor
	}
	if opts.OrderFrom == "" && opts.OrderTo == "" {
		opts.OrderFrom = DefaultOrderFrom
		opts.OrderTo = DefaultOrderTo
	}
	return &Renderer{opts: opts}
}

// Notation returns "dot".
func (r *Renderer) Notation() string { return "dot" }

// Render emits the DOT document for the tree, skipping the synthetic root.
func (r *Renderer) Render(tree *model.Node) ([]byte, error) {
	lines := []string{
		"digraph G {",
		`    graph [layout=osage, splines=ortho, rankdir=TB, compound=true, size="8,4!", ratio=0.5, stylesheet="mystyle.css"];`,
		`    node [fontname="Helvetica", fontsize=10];`,
		"",
	}

	seq := render.NewSeq("id")
	var orderFrom, orderTo string
	for _, child := range tree.Parts {
		rep, childLines := r.generate(child, 4, seq)
		switch strings.TrimSpace(child.Name) {
		case r.opts.OrderFrom:
			orderFrom = rep
		case r.opts.OrderTo:
			orderTo = rep
		}
		lines = append(lines, childLines...)
	}

	if orderFrom != "" && orderTo != "" {
		lines = append(lines, fmt.Sprintf("    %s -> %s [style=invis];", orderFrom, orderTo))
	}

	lines = append(lines, "}")
	return []byte(strings.Join(lines, "\n")), nil
}

// generate emits one node's cluster and returns the identifier of its
// representative node for use as an edge endpoint.
func (r *Renderer) generate(n *model.Node, indent int, seq *render.Seq) (string, []string) {
	pad := strings.Repeat(" ", indent)
	cluster := "cluster_" + seq.Next()
	rep := seq.Next()

	lines := []string{fmt.Sprintf("%ssubgraph %s {", pad, cluster)}

	switch n.Kind {
	case model.KindLogicalFunction:
		label := htmlLabel(n.Name, n.Description, r.opts.Function)
		lines = append(lines, fmt.Sprintf("%s    %s [shape=none, style=filled, fillcolor=lightgreen, label=%s];", pad, rep, label))

	case model.KindLogicalComponent:
		if len(n.Parts) > 0 {
			lines = append(lines,
				fmt.Sprintf("%s    label = %q;", pad, n.Name),
				pad+"    style=filled;",
				pad+"    fillcolor=lightblue;",
				pad+"    margin=10;",
				fmt.Sprintf(`%s    %s [shape=none, label=""];`, pad, rep))
			for _, child := range n.Parts {
				_, childLines := r.generate(child, indent+4, seq)
				lines = append(lines, childLines...)
			}
		} else {
			label := htmlLabel("", n.Name, r.opts.Component)
			lines = append(lines, fmt.Sprintf("%s    %s [shape=none, style=filled, fillcolor=lightblue, label=%s];", pad, rep, label))
		}

	case model.KindLogicalActor:
		label := htmlLabel("", n.Name, r.opts.Actor)
		lines = append(lines, fmt.Sprintf("%s    %s [shape=none, style=filled, fillcolor=lightblue, fixedsize=true, label=%s];", pad, rep, label))

	case model.KindPackage:
		lines = append(lines,
			fmt.Sprintf("%s    label = %q;", pad, n.Name),
			fmt.Sprintf(`%s    %s [shape=none, label=""];`, pad, rep))
		for _, child := range n.Parts {
			_, childLines := r.generate(child, indent+4, seq)
			lines = append(lines, childLines...)
		}

	default:
		lines = append(lines, fmt.Sprintf("%s    %s [label=%q];", pad, rep, n.Name))
	}

	lines = append(lines, pad+"}")
	return rep, lines
}

// htmlLabel builds a Graphviz HTML-like table label with two compartments.
// Bottom-only labels pass an empty top cell.
func htmlLabel(top, bottom string, c Compartments) string {
	return fmt.Sprintf(`<<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0" CELLPADDING="2">
  <TR><TD FIXEDSIZE="true" WIDTH="%d" HEIGHT="%d" ALIGN="CENTER">%s</TD></TR>
  <TR><TD FIXEDSIZE="true" WIDTH="%d" HEIGHT="%d" ALIGN="CENTER">%s</TD></TR>
</TABLE>>`, c.Width, c.TopHeight, top, c.Width, c.BottomHeight, bottom)
}
