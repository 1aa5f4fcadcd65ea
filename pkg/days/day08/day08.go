// Package day08 solves "Resonant Collinearity": locating antinodes created
// by pairs of same-frequency antennas.
package day08

import (
	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/grid"
	"github.com/matzehuels/advent/pkg/multimap"
)

const empty = '.'

// City is a map of antennas grouped by frequency.
type City struct {
	Width, Height int
	Antennas      *multimap.MultiMap[byte, grid.Point]
}

// Parse reads the antenna map. Every byte other than '.' is a frequency.
func Parse(input string) (*City, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid antenna map")
	}
	c := &City{Width: g.Width, Height: g.Height, Antennas: multimap.New[byte, grid.Point]()}
	for p := range g.Points() {
		if b, _ := g.At(p); b != empty {
			c.Antennas.Insert(b, p)
		}
	}
	return c, nil
}

func (c *City) inBounds(p grid.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.Width && p.Y < c.Height
}

// pairs yields each unordered pair of same-frequency antennas once.
func (c *City) pairs(fn func(a, b grid.Point)) {
	for _, points := range c.Antennas.Grouped() {
		var group []grid.Point
		for p := range points {
			group = append(group, p)
		}
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				fn(group[i], group[j])
			}
		}
	}
}

// Antinodes returns the in-bounds points at 2a-b and 2b-a for every pair.
func (c *City) Antinodes() map[grid.Point]struct{} {
	out := make(map[grid.Point]struct{})
	c.pairs(func(a, b grid.Point) {
		for _, p := range []grid.Point{a.Scale(2).Sub(b), b.Scale(2).Sub(a)} {
			if c.inBounds(p) {
				out[p] = struct{}{}
			}
		}
	})
	return out
}

// ResonantAntinodes returns every in-bounds point reached from either
// antenna of a pair by repeated steps of their difference, including the
// antennas themselves.
func (c *City) ResonantAntinodes() map[grid.Point]struct{} {
	out := make(map[grid.Point]struct{})
	walk := func(from, step grid.Point) {
		for p := from; c.inBounds(p); p = p.Add(step) {
			out[p] = struct{}{}
		}
	}
	c.pairs(func(a, b grid.Point) {
		walk(a, a.Sub(b))
		walk(b, b.Sub(a))
	})
	return out
}

// Part1 counts distinct antinode locations.
func Part1(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return len(c.Antinodes()), nil
}

// Part2 counts distinct antinode locations with resonant harmonics.
func Part2(input string) (int, error) {
	c, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return len(c.ResonantAntinodes()), nil
}
