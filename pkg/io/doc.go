// Package io provides JSON import and export for ordering rule graphs.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "97"},
//	    {"id": "75", "row": 1},
//	    {"id": "47", "row": 2}
//	  ],
//	  "edges": [
//	    {"from": "97", "to": "75"},
//	    {"from": "75", "to": "47"}
//	  ]
//	}
//
// An edge from A to B is the rule "A must precede B". Node ids are the
// items printed with fmt; row is the item's layer as computed by
// [ordering.Layers] and is ignored on import.
//
// # Export
//
//	err := io.WriteJSON(rules, os.Stdout)
//
// Rules containing a cycle cannot be layered; they are exported without
// rows, nodes in sorted order.
//
// # Import
//
//	rules, err := io.ImportJSON("rules.json")
//
// Imported rules are keyed by node id. Every edge must reference a listed
// node and ids must be unique. Cycles are allowed, matching export.
package io
