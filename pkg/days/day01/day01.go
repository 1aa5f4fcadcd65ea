// Package day01 solves "Historian Hysteria": comparing two lists of
// location IDs.
package day01

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/grid"
)

// Parse splits whitespace separated pairs into a left and a right list.
// Blank lines are skipped.
func Parse(input string) (left, right []int, err error) {
	lineNo := 0
	for line := range strings.Lines(input) {
		lineNo++
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, errors.AtLine(lineNo, nil, "expected two numbers, got %d fields", len(fields))
		}
		l, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, errors.AtLine(lineNo, err, "bad left id %q", fields[0])
		}
		r, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, errors.AtLine(lineNo, err, "bad right id %q", fields[1])
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

// Part1 pairs the lists smallest to smallest and sums the distances.
func Part1(input string) (int, error) {
	left, right, err := Parse(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)

	sum := 0
	for i := range left {
		sum += grid.AbsDiff(left[i], right[i])
	}
	return sum, nil
}

// Part2 sums each left id multiplied by how often it occurs on the right.
func Part2(input string) (int, error) {
	left, right, err := Parse(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}

	score := 0
	for _, l := range left {
		score += l * counts[l]
	}
	return score, nil
}
