// Package day06 solves "Guard Gallivant": simulating a guard's patrol
// across a lab map.
package day06

import (
	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/grid"
)

const (
	guard    = '^'
	obstacle = '#'
)

// Lab is a parsed map with the guard's starting position. The guard
// always starts facing up.
type Lab struct {
	Map   *grid.Grid
	Start grid.Point
}

// Parse reads the lab map and locates the guard.
func Parse(input string) (*Lab, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid lab map")
	}
	start, ok := g.Find(guard)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "lab map has no guard %q", string(rune(guard)))
	}
	return &Lab{Map: g, Start: start}, nil
}

type state struct {
	pos, dir grid.Point
}

// Patrol walks the guard until it leaves the map or revisits a position
// with the same heading. It returns the distinct cells visited and whether
// the walk ended in a loop.
func (l *Lab) Patrol() (visited map[grid.Point]struct{}, loops bool) {
	visited = make(map[grid.Point]struct{})
	seen := make(map[state]struct{})
	pos, dir := l.Start, grid.Up
	for {
		visited[pos] = struct{}{}
		s := state{pos, dir}
		if _, ok := seen[s]; ok {
			return visited, true
		}
		seen[s] = struct{}{}

		next := pos.Add(dir)
		if !l.Map.InBounds(next) {
			return visited, false
		}
		if l.Map.Is(next, obstacle) {
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

// LoopObstructions returns how many single new obstacles would trap the
// guard in a loop. The guard's starting cell is never obstructed, and only
// cells on the original route can change the walk.
func (l *Lab) LoopObstructions() int {
	route, _ := l.Patrol()
	n := 0
	for p := range route {
		if p == l.Start {
			continue
		}
		l.Map.Set(p, obstacle)
		if _, loops := l.Patrol(); loops {
			n++
		}
		l.Map.Set(p, '.')
	}
	return n
}

// Part1 counts distinct positions visited before the guard leaves.
func Part1(input string) (int, error) {
	lab, err := Parse(input)
	if err != nil {
		return 0, err
	}
	visited, loops := lab.Patrol()
	if loops {
		return 0, errors.New(errors.ErrCodeNoSolution, "guard never leaves the lab")
	}
	return len(visited), nil
}

// Part2 counts obstruction positions that cause a loop.
func Part2(input string) (int, error) {
	lab, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return lab.LoopObstructions(), nil
}
