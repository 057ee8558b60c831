// Package plantuml renders a model tree as a PlantUML containment diagram.
//
// Packages map to PlantUML packages, logical components and actors to
// stereotyped rectangles, and logical functions to stereotyped classes whose
// single attribute line carries the description. A fixed skinparam preamble
// styles the three stereotypes; the preamble is an opaque constant, not
// logic.
package plantuml

import (
	"fmt"
	"strings"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

// Default prefixes for the one hand-tuned layout exception (see Options).
const (
	DefaultDevelopmentPrefix = "DroneDevelopment"
	DefaultFunctionsPrefix   = "DroneFunctions"
)

// Options configures containment-diagram rendering.
type Options struct {
	// DevelopmentPrefix names the umbrella package whose direct children are
	// reordered so the functions group renders first. The reorder applies
	// only at packages whose display name starts with this prefix, never
	// recursively. Empty disables the rule.
	DevelopmentPrefix string

	// FunctionsPrefix selects which children of the umbrella package move to
	// the front. Relative order within the two groups is preserved.
	FunctionsPrefix string
}

// Renderer emits PlantUML documents.
type Renderer struct {
	opts Options
}

// New creates a containment-diagram renderer. Zero-valued options take the
// default prefixes.
func New(opts Options) *Renderer {
	if opts.DevelopmentPrefix == "" && opts.FunctionsPrefix == "" {
		opts.DevelopmentPrefix = DefaultDevelopmentPrefix
		opts.FunctionsPrefix = DefaultFunctionsPrefix
	}
	return &Renderer{opts: opts}
}

// Notation returns "plantuml".
func (r *Renderer) Notation() string { return "plantuml" }

// header is the fixed styling preamble: profile skinparams for the three
// logical stereotypes.
var header = []string{
	"@startuml",
	"'==================================================",
	"' Define Profile Styles with Stereotypes",
	"'==================================================",
	"",
	"allowmixing",
	"' Class for Logical Functions with custom formatting",
	"skinparam class {",
	"  BackgroundColor<<logicalFunction>> LightGreen",
	"  BorderColor<<logicalFunction>> DarkGreen",
	"  FontStyle<<logicalFunction>> Bold",
	"  FontColor<<logicalFunction>> Black",
	"}",
	"",
	"' Rectangle for Logical Components",
	"skinparam rectangle {",
	"  BackgroundColor<<logicalComponent>> LightSteelBlue",
	"  BorderColor<<logicalComponent>> DarkBlue",
	"  FontStyle<<logicalComponent>> Bold",
	"  FontColor<<logicalComponent>> Black",
	"}",
	"",
	"' Rectangle for Logical Actors",
	"skinparam rectangle {",
	"  BackgroundColor<<logicalActor>> LightBlue",
	"  BorderColor<<logicalActor>> Blue",
	"  FontStyle<<logicalActor>> Bold",
	"  FontColor<<logicalActor>> Black",
	"}",
	"",
	"'==================================================",
	"' Generated SysML Diagram",
	"'==================================================",
}

// Render emits the diagram for the tree, skipping the synthetic root.
func (r *Renderer) Render(tree *model.Node) ([]byte, error) {
	lines := make([]string, 0, len(header)+tree.Count()+1)
	lines = append(lines, header...)
	for _, child := range tree.Parts {
		lines = append(lines, r.generate(child, 0)...)
	}
	lines = append(lines, "@enduml")
	return []byte(strings.Join(lines, "\n")), nil
}

// generate emits one node at the given indent depth (four spaces per level).
func (r *Renderer) generate(n *model.Node, indent int) []string {
	pad := strings.Repeat("    ", indent)
	var lines []string

	switch n.Kind {
	case model.KindPackage:
		children := n.Parts
		if r.opts.DevelopmentPrefix != "" && strings.HasPrefix(strings.TrimSpace(n.Name), r.opts.DevelopmentPrefix) {
			children = r.reorder(children)
		}
		lines = append(lines, fmt.Sprintf("%spackage %s {", pad, element(n.Name, n.Alias)))
		for _, child := range children {
			lines = append(lines, r.generate(child, indent+1)...)
		}
		lines = append(lines, pad+"}")

	case model.KindLogicalComponent:
		text := element(n.Name, n.Alias) + " <<logicalComponent>>"
		if len(n.Parts) > 0 {
			lines = append(lines, fmt.Sprintf("%srectangle %s {", pad, text))
			for _, child := range n.Parts {
				lines = append(lines, r.generate(child, indent+1)...)
			}
			lines = append(lines, pad+"}")
		} else {
			lines = append(lines, fmt.Sprintf("%srectangle %s", pad, text))
		}

	case model.KindLogicalFunction:
		text := element(n.Name, n.Alias) + " <<logicalFunction>>"
		lines = append(lines,
			fmt.Sprintf("%sclass %s {", pad, text),
			fmt.Sprintf("%s    description = %q", pad, n.Description),
			pad+"}")

	case model.KindLogicalActor:
		lines = append(lines, fmt.Sprintf("%srectangle %s <<logicalActor>>", pad, element(n.Name, n.Alias)))

	default:
		lines = append(lines, fmt.Sprintf("%spackage %q", pad, n.Name))
	}

	return lines
}

// reorder partitions children into the functions group and the rest,
// functions first, each group keeping its original relative order.
func (r *Renderer) reorder(children []*model.Node) []*model.Node {
	out := make([]*model.Node, 0, len(children))
	for _, c := range children {
		if strings.HasPrefix(strings.TrimSpace(c.Name), r.opts.FunctionsPrefix) {
			out = append(out, c)
		}
	}
	for _, c := range children {
		if !strings.HasPrefix(strings.TrimSpace(c.Name), r.opts.FunctionsPrefix) {
			out = append(out, c)
		}
	}
	return out
}

// element formats a display name with its optional alias, e.g. `"Name" as a`.
func element(name, alias string) string {
	if alias != "" {
		return fmt.Sprintf("%q as %s", name, alias)
	}
	return fmt.Sprintf("%q", name)
}
