package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

// ReadJSON decodes a JSON model tree from r.
//
// The input must be a single JSON object in the format written by
// [WriteJSON]. A node without a "type" field is treated as the synthetic
// root, so both full exports and hand-written documents import cleanly.
//
// ReadJSON returns an error if the JSON is malformed or if any node is
// missing a name below the root. The returned tree is independent of r
// and can be modified safely. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*model.Node, error) {
	tree := &model.Node{}
	if err := json.NewDecoder(r).Decode(tree); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validate(tree, true); err != nil {
		return nil, err
	}
	return tree, nil
}

// ImportJSON reads the JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*model.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tree, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return tree, nil
}

// validate rejects nameless nodes below the root. The root itself may be
// nameless since it never renders.
func validate(n *model.Node, isRoot bool) error {
	if !isRoot && n.Name == "" {
		return fmt.Errorf("node of type %q has no name", n.Kind)
	}
	for _, child := range n.Parts {
		if err := validate(child, false); err != nil {
			return err
		}
	}
	return nil
}
