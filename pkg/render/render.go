// Package render defines the contract shared by the diagram backends.
//
// Each backend traverses the same immutable [model.Node] tree and emits a
// complete, self-contained document in its notation. Backends own their own
// identifier scheme and label composition, but all follow the same rules:
// the synthetic root is skipped, children render in declaration order, and
// node identifiers are generated values decoupled from display names so
// free-text names can never collide or break the target syntax.
package render

import (
	"fmt"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

// Renderer turns a model tree into one diagram notation.
//
// Render must be idempotent: rendering the same tree twice yields identical
// output. Implementations therefore keep identifier state per call, never in
// package or process globals.
type Renderer interface {
	// Notation returns the backend's name, e.g. "mermaid".
	Notation() string

	// Render emits the complete document for the tree. The tree is not
	// modified.
	Render(tree *model.Node) ([]byte, error)
}

// Seq generates sequential node identifiers within a single render pass.
// The zero value is not useful; create one with NewSeq per Render call and
// thread it through the traversal.
type Seq struct {
	prefix string
	n      int
}

// NewSeq returns a sequence producing prefix1, prefix2, ...
func NewSeq(prefix string) *Seq {
	return &Seq{prefix: prefix}
}

// Next returns the next identifier in the sequence.
func (s *Seq) Next() string {
	s.n++
	return fmt.Sprintf("%s%d", s.prefix, s.n)
}
