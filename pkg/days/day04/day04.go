// Package day04 solves "Ceres Search": a word search over a letter grid.
package day04

import (
	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/grid"
)

// CountWord counts occurrences of word starting at any cell and running in
// any of the eight directions.
func CountWord(g *grid.Grid, word string) int {
	if word == "" {
		return 0
	}
	n := 0
	for p := range g.Points() {
		if !g.Is(p, word[0]) {
			continue
		}
		for _, d := range grid.Dirs8 {
			if wordAt(g, p, d, word) {
				n++
			}
		}
	}
	return n
}

func wordAt(g *grid.Grid, p, d grid.Point, word string) bool {
	for i := 1; i < len(word); i++ {
		if !g.Is(p.Add(d.Scale(i)), word[i]) {
			return false
		}
	}
	return true
}

// CountCrosses counts cells holding 'A' whose two diagonals both read "MAS"
// in either direction.
func CountCrosses(g *grid.Grid) int {
	n := 0
	for p := range g.Points() {
		if !g.Is(p, 'A') {
			continue
		}
		// Diagonals run clockwise from up-left, so i and i+2 are opposite.
		if masDiagonal(g, p, grid.Diagonals[0], grid.Diagonals[2]) &&
			masDiagonal(g, p, grid.Diagonals[1], grid.Diagonals[3]) {
			n++
		}
	}
	return n
}

func masDiagonal(g *grid.Grid, p, a, b grid.Point) bool {
	pa, pb := p.Add(a), p.Add(b)
	return (g.Is(pa, 'M') && g.Is(pb, 'S')) || (g.Is(pa, 'S') && g.Is(pb, 'M'))
}

func parse(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid word search")
	}
	return g, nil
}

// Part1 counts XMAS in every direction.
func Part1(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return CountWord(g, "XMAS"), nil
}

// Part2 counts X-shaped MAS pairs.
func Part2(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return CountCrosses(g), nil
}
