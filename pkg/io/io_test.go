package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
	"github.com/nidhal-selmi/DeciMaLExample/pkg/sysml"
)

const droneModel = `package DroneFunctions
  part Sense as S : LogicalFunction
    description = "Detect obstacles"
package DroneLogicalArchitecture
  part Lidar : LogicalComponent
`

func TestRoundTrip(t *testing.T) {
	tree, _ := sysml.ParseString(droneModel)

	var buf bytes.Buffer
	if err := WriteJSON(tree, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("round trip changed the tree:\ngot  %+v\nwant %+v", got, tree)
	}
}

func TestFileRoundTrip(t *testing.T) {
	tree, _ := sysml.ParseString(droneModel)
	path := filepath.Join(t.TempDir(), "drone.json")

	if err := ExportJSON(tree, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.Count() != tree.Count() {
		t.Errorf("imported node count = %d, want %d", got.Count(), tree.Count())
	}
}

func TestReadHandWrittenDocument(t *testing.T) {
	doc := `{
  "name": "root",
  "parts": [
    {"name": "Avionics", "type": "Package", "parts": [
      {"name": "Navigate", "type": "LogicalFunction", "description": "Plan routes"}
    ]}
  ]
}`
	tree, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if tree.Kind != model.KindRoot {
		t.Errorf("root kind = %q, want %q", tree.Kind, model.KindRoot)
	}
	if len(tree.Parts) != 1 || tree.Parts[0].Name != "Avionics" {
		t.Fatalf("unexpected top level: %+v", tree.Parts)
	}
	fn := tree.Parts[0].Parts[0]
	if fn.Kind != model.KindLogicalFunction || fn.Description != "Plan routes" {
		t.Errorf("unexpected function node: %+v", fn)
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"name": `)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestReadRejectsNamelessNode(t *testing.T) {
	doc := `{"parts": [{"type": "Package"}]}`
	if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
		t.Error("expected error for nameless node below root")
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
