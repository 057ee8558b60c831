package sysml

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

// ScopePolicy selects how the parser decides when scopes open and close.
// Both policies close scopes by comparing indentation widths; they differ in
// what is required for a declaration to open a new scope.
type ScopePolicy int

const (
	// PolicyIndent is the default: indentation alone drives nesting. A
	// scope-bearing declaration always opens a scope at its own width, and a
	// dedent to width w closes every scope recorded at width >= w, however
	// many levels that spans. Braces are ignored entirely.
	PolicyIndent ScopePolicy = iota

	// PolicyBrace additionally requires a declaration line to end with "{"
	// before it opens a scope, and silently skips bare closing-brace lines.
	// Inputs whose scope-bearing lines lack braces parse flat under this
	// policy.
	PolicyBrace
)

// Options configures a Parser.
type Options struct {
	// Policy selects the scope handling strategy. The zero value is
	// PolicyIndent.
	Policy ScopePolicy
}

// Warning records a line the parser could not interpret. Warnings are data,
// not side-channel output: the caller decides whether and how to surface
// them.
type Warning struct {
	Line int    // 1-based line number in the input
	Raw  string // the original line text, unmodified
}

// String formats the warning as a human-readable diagnostic.
func (w Warning) String() string {
	return fmt.Sprintf("Unhandled line: %s", w.Raw)
}

// Parser builds model trees from DeciMaL text. A Parser is stateless between
// calls and safe to reuse.
type Parser struct {
	opts Options
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseString parses text with the default options. It is shorthand for
// New(Options{}).ParseString(text).
func ParseString(text string) (*model.Node, []Warning) {
	return New(Options{}).ParseString(text)
}

// Parse reads all lines from r and builds the model tree. The only possible
// error comes from reading r; malformed content is reported through the
// warnings instead.
func (p *Parser) Parse(r io.Reader) (*model.Node, []Warning, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	tree, warnings := p.ParseLines(lines)
	return tree, warnings, nil
}

// ParseString parses text and returns the tree plus any warnings.
func (p *Parser) ParseString(text string) (*model.Node, []Warning) {
	return p.ParseLines(strings.Split(text, "\n"))
}

// scopeEntry pairs an open scope with the indentation width it was declared
// at. The sentinel {0, root} sits at index 0 and is never popped.
type scopeEntry struct {
	indent int
	node   *model.Node
}

// ParseLines builds the model tree from a sequence of raw lines in a single
// forward pass.
//
// For each non-blank line the parser classifies it, adjusts the scope stack
// for the line's indentation, attaches a new node to the innermost open
// scope, and pushes the node if its kind may own children. Description lines
// attach to the innermost open node instead of creating one; unrecognized
// lines produce exactly one warning each and leave the scope stack and the
// tree untouched.
func (p *Parser) ParseLines(lines []string) (*model.Node, []Warning) {
	root := model.NewRoot()
	stack := []scopeEntry{{0, root}}
	var warnings []Warning
	prevIndent := 0

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := indentWidth(line)
		decl := Classify(line)

		if decl.Kind == DeclUnrecognized {
			if p.opts.Policy == PolicyBrace && braceOnly(line) {
				stack = closeDeeper(stack, width)
				continue
			}
			warnings = append(warnings, Warning{Line: i + 1, Raw: line})
			continue
		}

		switch p.opts.Policy {
		case PolicyBrace:
			stack = closeDeeper(stack, width)
		default:
			// Close-all-deeper-or-equal: a dedent need not return to a
			// previously seen width; every scope at >= width closes.
			if width <= prevIndent {
				for len(stack) > 1 && stack[len(stack)-1].indent >= width {
					stack = stack[:len(stack)-1]
				}
			}
			prevIndent = width
		}

		parent := stack[len(stack)-1].node

		if decl.Kind == DeclDescription {
			// Attaches to whatever scope is innermost, which may be the
			// synthetic root. Later descriptions overwrite earlier ones.
			parent.Description = decl.Text
			continue
		}

		node := newNode(decl)
		parent.Add(node)

		switch p.opts.Policy {
		case PolicyBrace:
			if model.IsContainer(node.Kind) && endsWithOpenBrace(line) {
				stack = append(stack, scopeEntry{width + 1, node})
			}
		default:
			if model.IsContainer(node.Kind) {
				stack = append(stack, scopeEntry{width, node})
			}
		}
	}

	return root, warnings
}

// closeDeeper pops scopes recorded strictly deeper than width, keeping the
// sentinel root. Used by PolicyBrace, where scopes are recorded one level
// deeper than their opening line.
func closeDeeper(stack []scopeEntry, width int) []scopeEntry {
	for len(stack) > 1 && stack[len(stack)-1].indent > width {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// newNode constructs a model node from a classified declaration. Actor
// declarations yield LogicalActor nodes; part declarations take their kind
// from the type annotation.
func newNode(d Decl) *model.Node {
	n := &model.Node{Name: d.Name, Alias: d.Alias}
	switch d.Kind {
	case DeclPackage:
		n.Kind = model.KindPackage
	case DeclActor:
		n.Kind = model.KindLogicalActor
	case DeclPart:
		n.Kind = d.Type
	}
	return n
}

// indentWidth returns the number of leading whitespace characters. Spaces
// and tabs each count as one; mixing them within a model is the author's
// problem.
func indentWidth(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}

// endsWithOpenBrace reports whether the raw line ends with an explicit
// scope-opening mark after trailing whitespace is removed.
func endsWithOpenBrace(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t"), "{")
}
