package model

import (
	"encoding/json"
	"fmt"
)

// jsonNode is the serialized form of a Node: a nested mapping with a "parts"
// list. Empty fields are omitted so the output stays close to hand-written
// model dumps. The synthetic root serializes with no type and no name.
type jsonNode struct {
	Name        string     `json:"name"`
	Type        string     `json:"type,omitempty"`
	Alias       string     `json:"alias,omitempty"`
	Description string     `json:"description,omitempty"`
	Parts       []jsonNode `json:"parts,omitempty"`
}

// MarshalJSON encodes the tree as a nested mapping of
// {name, type, alias, description, parts}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(n))
}

// UnmarshalJSON decodes a nested mapping produced by MarshalJSON (or an
// equivalent hand-written document). A node without a "type" field is taken
// to be the synthetic root.
func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return fmt.Errorf("decode model: %w", err)
	}
	*n = *fromJSON(jn)
	return nil
}

func toJSON(n *Node) jsonNode {
	jn := jsonNode{
		Name:        n.Name,
		Alias:       n.Alias,
		Description: n.Description,
	}
	if !n.IsRoot() {
		jn.Type = n.Kind
	}
	for _, p := range n.Parts {
		jn.Parts = append(jn.Parts, toJSON(p))
	}
	return jn
}

func fromJSON(jn jsonNode) *Node {
	n := &Node{
		Kind:        jn.Type,
		Name:        jn.Name,
		Alias:       jn.Alias,
		Description: jn.Description,
	}
	if n.Kind == "" {
		n.Kind = KindRoot
	}
	for _, p := range jn.Parts {
		n.Parts = append(n.Parts, fromJSON(p))
	}
	return n
}
