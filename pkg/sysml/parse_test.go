package sysml

import (
	"strings"
	"testing"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

const droneModel = `package DroneFunctions
  part Sense as S : LogicalFunction
    description = "Detect obstacles"
package DroneLogicalArchitecture
  part Lidar : LogicalComponent
`

func TestParseDroneModel(t *testing.T) {
	tree, warnings := ParseString(droneModel)

	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if !tree.IsRoot() {
		t.Fatal("top node is not the synthetic root")
	}
	if len(tree.Parts) != 2 {
		t.Fatalf("top-level parts = %d, want 2", len(tree.Parts))
	}

	functions := tree.Parts[0]
	if functions.Kind != model.KindPackage || functions.Name != "DroneFunctions" {
		t.Errorf("first child = %s %q, want Package DroneFunctions", functions.Kind, functions.Name)
	}
	if len(functions.Parts) != 1 {
		t.Fatalf("DroneFunctions parts = %d, want 1", len(functions.Parts))
	}

	sense := functions.Parts[0]
	if sense.Kind != model.KindLogicalFunction {
		t.Errorf("Sense kind = %q, want LogicalFunction", sense.Kind)
	}
	if sense.Alias != "S" {
		t.Errorf("Sense alias = %q, want S", sense.Alias)
	}
	if sense.Description != "Detect obstacles" {
		t.Errorf("Sense description = %q, want %q", sense.Description, "Detect obstacles")
	}

	arch := tree.Parts[1]
	if arch.Name != "DroneLogicalArchitecture" || len(arch.Parts) != 1 {
		t.Fatalf("second package = %q with %d parts, want DroneLogicalArchitecture with 1", arch.Name, len(arch.Parts))
	}
	if lidar := arch.Parts[0]; lidar.Kind != model.KindLogicalComponent || lidar.Name != "Lidar" {
		t.Errorf("leaf = %s %q, want LogicalComponent Lidar", lidar.Kind, lidar.Name)
	}
}

func TestParseReader(t *testing.T) {
	tree, warnings, err := New(Options{}).Parse(strings.NewReader(droneModel))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if tree.Count() != 4 {
		t.Errorf("node count = %d, want 4", tree.Count())
	}
}

func TestDepthMatchesIndentation(t *testing.T) {
	input := `package A
  part B : LogicalComponent
    part C : LogicalFunction
      description = "deep"
  part D : Sensor
package E
`
	tree, warnings := ParseString(input)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	depths := map[string]int{}
	tree.Walk(func(n *model.Node, depth int) {
		depths[n.Name] = depth
	})

	want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 1, "E": 0}
	for name, d := range want {
		if depths[name] != d {
			t.Errorf("depth of %s = %d, want %d", name, depths[name], d)
		}
	}
}

func TestIrregularDedentClosesAllDeeperScopes(t *testing.T) {
	// The dedent from width 8 to width 3 matches no previously recorded
	// width; every scope recorded at width >= 3 must close.
	input := "package A\n" +
		"    package B\n" +
		"        part C : LogicalFunction\n" +
		"   part D : Sensor\n"
	tree, warnings := ParseString(input)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	a := tree.Parts[0]
	if len(a.Parts) != 2 {
		t.Fatalf("A parts = %d, want 2 (B and D)", len(a.Parts))
	}
	if a.Parts[1].Name != "D" {
		t.Errorf("second child of A = %q, want D", a.Parts[1].Name)
	}
}

func TestDescriptionAttachesToInnermostScope(t *testing.T) {
	input := `package A
  part B : LogicalComponent
    description = "about B"
  description = "about A"
`
	tree, _ := ParseString(input)
	a := tree.Parts[0]
	b := a.Parts[0]
	if b.Description != "about B" {
		t.Errorf("B description = %q, want %q", b.Description, "about B")
	}
	if a.Description != "about A" {
		t.Errorf("A description = %q, want %q", a.Description, "about A")
	}
}

func TestDescriptionOverwrites(t *testing.T) {
	input := `package A
  description = "first"
  description = "second"
`
	tree, _ := ParseString(input)
	if got := tree.Parts[0].Description; got != "second" {
		t.Errorf("description = %q, want %q (later occurrences overwrite)", got, "second")
	}
}

func TestDescriptionBeforeAnyScope(t *testing.T) {
	// A description with no open scope attaches to the synthetic root
	// rather than raising.
	tree, warnings := ParseString(`description = "orphan"` + "\npackage A\n")
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if tree.Description != "orphan" {
		t.Errorf("root description = %q, want %q", tree.Description, "orphan")
	}
}

func TestUnrecognizedLines(t *testing.T) {
	input := `package A
  part B : LogicalComponent
  what is this
  part C : Sensor
nonsense at top level
`
	tree, warnings := ParseString(input)

	if len(warnings) != 2 {
		t.Fatalf("warnings = %d, want 2: %v", len(warnings), warnings)
	}
	if warnings[0].Line != 3 || warnings[0].Raw != "  what is this" {
		t.Errorf("warning[0] = %+v, want line 3 with original text", warnings[0])
	}
	if got := warnings[0].String(); got != "Unhandled line:   what is this" {
		t.Errorf("warning[0].String() = %q", got)
	}

	// Unrecognized lines contribute no node and leave scopes untouched: C
	// still nests under A next to B.
	a := tree.Parts[0]
	if len(a.Parts) != 2 || a.Parts[1].Name != "C" {
		t.Errorf("A parts = %v, want [B C]", names(a.Parts))
	}
}

func TestPlainTypedPartsAreLeaves(t *testing.T) {
	// A part with a non-logical type never opens a scope; the nested line
	// attaches to the enclosing package instead.
	input := `package A
  part B : Sensor
    part C : LogicalFunction
`
	tree, _ := ParseString(input)
	a := tree.Parts[0]
	if len(a.Parts) != 2 {
		t.Fatalf("A parts = %v, want [B C]", names(a.Parts))
	}
	if len(a.Parts[0].Parts) != 0 {
		t.Errorf("leaf part B gained children: %v", names(a.Parts[0].Parts))
	}
}

func TestActorOpensScope(t *testing.T) {
	input := `actor Pilot
  description = "flies the drone"
`
	tree, _ := ParseString(input)
	pilot := tree.Parts[0]
	if pilot.Kind != model.KindLogicalActor {
		t.Fatalf("actor kind = %q, want LogicalActor", pilot.Kind)
	}
	if pilot.Description != "flies the drone" {
		t.Errorf("actor description = %q", pilot.Description)
	}
}

func TestBracePolicy(t *testing.T) {
	input := `package A {
    part B : LogicalComponent {
        part C : LogicalFunction
    }
}
package D
`
	braced := New(Options{Policy: PolicyBrace})
	tree, warnings := braced.ParseLines(strings.Split(input, "\n"))
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none (closing braces are skipped)", warnings)
	}

	a := tree.Parts[0]
	if len(a.Parts) != 1 || a.Parts[0].Name != "B" {
		t.Fatalf("A parts = %v, want [B]", names(a.Parts))
	}
	if len(a.Parts[0].Parts) != 1 || a.Parts[0].Parts[0].Name != "C" {
		t.Errorf("B parts = %v, want [C]", names(a.Parts[0].Parts))
	}
	if tree.Parts[1].Name != "D" {
		t.Errorf("second top-level = %q, want D", tree.Parts[1].Name)
	}
}

func TestBracePolicyWithoutBracesStaysFlat(t *testing.T) {
	// The two policies diverge on scope-bearing lines that lack braces:
	// under PolicyBrace nothing opens a scope, so B lands at top level.
	input := "package A\n  part B : LogicalComponent\n"

	tree, _ := New(Options{Policy: PolicyBrace}).ParseLines(strings.Split(input, "\n"))
	if len(tree.Parts) != 2 {
		t.Fatalf("top-level parts = %v, want [A B]", names(tree.Parts))
	}

	tree, _ = ParseString(input)
	if len(tree.Parts) != 1 || len(tree.Parts[0].Parts) != 1 {
		t.Error("PolicyIndent should nest B under A")
	}
}

func names(nodes []*model.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
