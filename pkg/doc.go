// Package pkg provides the core libraries for DeciMaL model conversion.
//
// # Overview
//
// DeciMaL turns indentation-based, SysML-style model descriptions into
// diagram notations. The pkg directory is organized into five main areas:
//
//  1. [sysml] - Parsing the DeciMaL text notation into a tree
//  2. [model] - The containment tree shared by parser and renderers
//  3. [render] - Diagram backends (Mermaid, PlantUML, Graphviz DOT)
//  4. [io] - JSON import/export of parsed trees
//  5. [config] - TOML settings for parser policy and renderer geometry
//
// # Architecture
//
// The typical data flow:
//
//	DeciMaL model file (.sysml)
//	         ↓
//	    [sysml] package (classify lines, resolve scopes)
//	         ↓
//	    [model] package (containment tree)
//	         ↓
//	    [render/mermaid] | [render/plantuml] | [render/dot]
//	         ↓
//	    notation text (and SVG/PNG for DOT)
//
// # Quick Start
//
// Parse a model and render it as a Mermaid flowchart:
//
//	import (
//	    "github.com/nidhal-selmi/DeciMaLExample/pkg/render/mermaid"
//	    "github.com/nidhal-selmi/DeciMaLExample/pkg/sysml"
//	)
//
//	tree, warnings, err := sysml.ParseString(src)
//	if err != nil {
//	    return err
//	}
//	for _, w := range warnings {
//	    fmt.Println(w)
//	}
//	out, err := mermaid.New(mermaid.Options{}).Render(tree)
//
// # Main Packages
//
// [sysml] - Line classifier and scope-resolving parser. Supports two scope
// policies: pure indentation and brace-delimited.
//
// [model] - The Node tree with kinds, aliases, and descriptions, plus its
// JSON representation.
//
// [render] - The Renderer contract and identifier sequencing shared by the
// backends.
//
// [render/dot] - Cluster graphs, including in-process SVG/PNG layout via
// the goccy/go-graphviz engine.
//
// [io] - Round-trip JSON serialization of trees for caching and tooling.
//
// [errors] - Structured error codes used across the CLI.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sysml/...    # Specific package
//
// [sysml]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/sysml
// [model]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/model
// [render]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/render
// [render/mermaid]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/render/mermaid
// [render/plantuml]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/render/plantuml
// [render/dot]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/render/dot
// [io]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/io
// [config]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/config
// [errors]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/nidhal-selmi/DeciMaLExample/pkg/buildinfo
package pkg
