// Package days registers every solved puzzle.
package days

import (
	"github.com/matzehuels/advent/pkg/days/day01"
	"github.com/matzehuels/advent/pkg/days/day02"
	"github.com/matzehuels/advent/pkg/days/day03"
	"github.com/matzehuels/advent/pkg/days/day04"
	"github.com/matzehuels/advent/pkg/days/day05"
	"github.com/matzehuels/advent/pkg/days/day06"
	"github.com/matzehuels/advent/pkg/days/day07"
	"github.com/matzehuels/advent/pkg/days/day08"
	"github.com/matzehuels/advent/pkg/days/day09"
	"github.com/matzehuels/advent/pkg/puzzle"
)

// All returns the solved days in calendar order.
func All() []puzzle.Day {
	return []puzzle.Day{
		{Number: 1, Title: "Historian Hysteria", Parts: []puzzle.Solver{day01.Part1, day01.Part2}},
		{Number: 2, Title: "Red-Nosed Reports", Parts: []puzzle.Solver{day02.Part1, day02.Part2}},
		{Number: 3, Title: "Mull It Over", Parts: []puzzle.Solver{day03.Part1, day03.Part2}},
		{Number: 4, Title: "Ceres Search", Parts: []puzzle.Solver{day04.Part1, day04.Part2}},
		{Number: 5, Title: "Print Queue", Parts: []puzzle.Solver{day05.Part1, day05.Part2}},
		{Number: 6, Title: "Guard Gallivant", Parts: []puzzle.Solver{day06.Part1, day06.Part2}},
		{Number: 7, Title: "Bridge Repair", Parts: []puzzle.Solver{day07.Part1, day07.Part2}},
		{Number: 8, Title: "Resonant Collinearity", Parts: []puzzle.Solver{day08.Part1, day08.Part2}},
		{Number: 9, Title: "Disk Fragmenter", Parts: []puzzle.Solver{day09.Part1, day09.Part2}},
	}
}

// Registry returns a registry over All.
func Registry() *puzzle.Registry {
	r, err := puzzle.NewRegistry(All()...)
	if err != nil {
		panic("days: " + err.Error())
	}
	return r
}
