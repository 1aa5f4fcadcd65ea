package io

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/advent/pkg/ordering"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID  string `json:"id"`
	Row *int   `json:"row,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes rules as JSON and writes it to w. Nodes are listed
// layer by layer and edges are sorted, so equal rule sets encode equally.
// Cyclic rules are written unranked: nodes in sorted order without rows.
func WriteJSON[T cmp.Ordered](rules *ordering.RuleSet[T], w io.Writer) error {
	items := slices.Sorted(rules.Items())
	layers, err := ordering.Layers(items, rules)
	ranked := err == nil
	if errors.Is(err, ordering.ErrNoValidStart) {
		layers = [][]T{items}
	} else if err != nil {
		return err
	}

	out := graph{Nodes: []node{}, Edges: []edge{}}
	for row, layer := range layers {
		for _, item := range layer {
			nd := node{ID: fmt.Sprint(item)}
			if ranked && row != 0 {
				r := row
				nd.Row = &r
			}
			out.Nodes = append(out.Nodes, nd)
		}
	}
	edges := slices.SortedFunc(rules.Rules(), func(a, b ordering.Rule[T]) int {
		return cmp.Or(cmp.Compare(a.Before, b.Before), cmp.Compare(a.After, b.After))
	})
	for _, e := range edges {
		out.Edges = append(out.Edges, edge{From: fmt.Sprint(e.Before), To: fmt.Sprint(e.After)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes rules to a JSON file at path.
func ExportJSON[T cmp.Ordered](rules *ordering.RuleSet[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(rules, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
