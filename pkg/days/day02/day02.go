// Package day02 solves "Red-Nosed Reports": checking level reports for
// gradual, strictly monotone change.
package day02

import (
	"strconv"
	"strings"

	"github.com/matzehuels/advent/pkg/errors"
)

// Report is one line of levels.
type Report []int

// Parse reads one report per non-blank line.
func Parse(input string) ([]Report, error) {
	var reports []Report
	lineNo := 0
	for line := range strings.Lines(input) {
		lineNo++
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		r := make(Report, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.AtLine(lineNo, err, "bad level %q", f)
			}
			r[i] = n
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Safe reports whether levels all increase or all decrease, each step by
// 1 to 3. Reports with fewer than two levels are safe.
func (r Report) Safe() bool {
	if len(r) < 2 {
		return true
	}
	sign := 1
	if r[1] < r[0] {
		sign = -1
	}
	for i := 1; i < len(r); i++ {
		d := (r[i] - r[i-1]) * sign
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// SafeWithDampener reports whether the report is safe once at most one
// level is removed.
func (r Report) SafeWithDampener() bool {
	if r.Safe() {
		return true
	}
	sub := make(Report, 0, len(r)-1)
	for skip := range r {
		sub = sub[:0]
		sub = append(sub, r[:skip]...)
		sub = append(sub, r[skip+1:]...)
		if sub.Safe() {
			return true
		}
	}
	return false
}

// Part1 counts safe reports.
func Part1(input string) (int, error) {
	return count(input, Report.Safe)
}

// Part2 counts reports that are safe with the problem dampener.
func Part2(input string) (int, error) {
	return count(input, Report.SafeWithDampener)
}

func count(input string, ok func(Report) bool) (int, error) {
	reports, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range reports {
		if ok(r) {
			n++
		}
	}
	return n, nil
}
