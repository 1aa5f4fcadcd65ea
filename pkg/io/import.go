package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/advent/pkg/ordering"
)

var (
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node")
	// ErrUnknownNode is returned when an edge references an unlisted node.
	ErrUnknownNode = errors.New("unknown node")
)

// ReadJSON decodes a JSON rule graph from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*ordering.RuleSet[string], error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	ids := make(map[string]bool, len(data.Nodes))
	for _, n := range data.Nodes {
		if ids[n.ID] {
			return nil, fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNode)
		}
		ids[n.ID] = true
	}

	rules := ordering.NewRuleSet[string]()
	for _, e := range data.Edges {
		for _, id := range []string{e.From, e.To} {
			if !ids[id] {
				return nil, fmt.Errorf("edge %s->%s: %w %q", e.From, e.To, ErrUnknownNode, id)
			}
		}
		rules.AddRule(e.From, e.To)
	}
	return rules, nil
}

// ImportJSON reads a JSON file at path and returns the decoded rules.
func ImportJSON(path string) (*ordering.RuleSet[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
