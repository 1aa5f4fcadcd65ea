// Package render draws ordering rule sets as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] turns a rule set into DOT source where each rule is an edge from
// the item that must come first to the item that must follow. Nodes are
// grouped into ranks by [ordering.Layers], so every edge points downwards
// and items that could be printed in any relative order share a row.
//
// [RenderSVG] lays the DOT out with the WebAssembly build of Graphviz
// bundled by github.com/goccy/go-graphviz, so no system install is needed.
//
//	dot, err := render.ToDOT(rules, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// Rule sets containing a cycle cannot be ranked; ToDOT reports them with
// the [*ordering.CycleError] from Layers.
package render
