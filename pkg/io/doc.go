// Package io provides JSON import and export for model trees.
//
// # Overview
//
// This package serializes parsed model trees to and from a simple JSON
// format. The format is designed for:
//
//   - Inspecting parser output without rendering a diagram
//   - Feeding a pre-parsed tree to the render pipeline, skipping the parser
//   - Integration with external tools that produce or consume tree data
//   - Round-trip preservation: export, re-import, and render identically
//
// # JSON Format
//
// Each node is an object; containment is expressed by nesting:
//
//	{
//	  "name": "root",
//	  "parts": [
//	    {
//	      "name": "DroneFunctions",
//	      "type": "Package",
//	      "parts": [
//	        {"name": "Sense", "type": "LogicalFunction", "alias": "S",
//	         "description": "Detect obstacles"}
//	      ]
//	    }
//	  ]
//	}
//
// The "type" field is omitted for the synthetic root and defaults back to
// it on import, so an exported document always re-imports to an equivalent
// tree. Empty "alias", "description", and "parts" fields are omitted.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	tree, err := io.ImportJSON("drone.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(tree, "drone.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned trees are independent of their source and can be modified
// freely after import.
package io
