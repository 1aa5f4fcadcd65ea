package render

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/advent/pkg/ordering"
)

// Options configures rule graph rendering.
type Options struct {
	// Detailed adds the layer and the number of outgoing rules to each
	// label. When false only the item is shown.
	Detailed bool
}

// ToDOT converts rules to Graphviz DOT. Items are ranked by their layer and
// sorted within a layer; edges are sorted by endpoints so the output is
// deterministic.
//
// Cyclic rules cannot be layered: every item is then listed unranked in
// sorted order and Graphviz picks the layout.
func ToDOT[T cmp.Ordered](rules *ordering.RuleSet[T], opts Options) (string, error) {
	items := slices.Sorted(rules.Items())
	layers, err := ordering.Layers(items, rules)
	ranked := err == nil
	if errors.Is(err, ordering.ErrNoValidStart) {
		layers = [][]T{items}
	} else if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph rules {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for depth, layer := range layers {
		buf.WriteString("\n")
		if ranked {
			buf.WriteString("  { rank=same;")
			for _, item := range layer {
				fmt.Fprintf(&buf, " %s;", nodeID(item))
			}
			buf.WriteString(" }\n")
		} else {
			depth = -1
		}
		for _, item := range layer {
			fmt.Fprintf(&buf, "  %s [label=%q];\n", nodeID(item), label(item, depth, rules, opts.Detailed))
		}
	}

	edges := slices.SortedFunc(rules.Rules(), func(a, b ordering.Rule[T]) int {
		return cmp.Or(cmp.Compare(a.Before, b.Before), cmp.Compare(a.After, b.After))
	})
	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(e.Before), nodeID(e.After))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeID[T any](item T) string {
	return strconv.Quote(fmt.Sprint(item))
}

func label[T comparable](item T, depth int, rules *ordering.RuleSet[T], detailed bool) string {
	name := fmt.Sprint(item)
	if !detailed {
		return name
	}
	out := 0
	for range rules.SuccessorsOf(item) {
		out++
	}
	lines := []string{name}
	if depth >= 0 {
		lines = append(lines, fmt.Sprintf("layer: %d", depth))
	}
	lines = append(lines, fmt.Sprintf("before: %d", out))
	return strings.Join(lines, "\n")
}

// RenderSVG lays out a DOT graph and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-sized svg tag with one whose
// viewBox starts at the origin and whose width and height match it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
