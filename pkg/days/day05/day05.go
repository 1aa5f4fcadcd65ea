// Package day05 solves "Print Queue": page updates that must respect a set
// of pairwise ordering rules.
package day05

import (
	"strconv"
	"strings"

	"github.com/matzehuels/advent/pkg/errors"
	"github.com/matzehuels/advent/pkg/ordering"
)

// Page is a page number in a safety manual update.
type Page int

// Input is a parsed puzzle input.
type Input struct {
	Rules   *ordering.RuleSet[Page]
	Updates [][]Page
}

// Parse reads the "X|Y" rule section, a blank line, then one
// comma-separated update per line.
func Parse(input string) (*Input, error) {
	in := &Input{Rules: ordering.NewRuleSet[Page]()}
	inRules := true
	lineNo := 0
	for line := range strings.Lines(input) {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			if inRules && in.Rules.Len() > 0 {
				inRules = false
			}
			continue
		}
		if inRules && strings.Contains(line, "|") {
			before, after, err := parseRule(line)
			if err != nil {
				return nil, errors.AtLine(lineNo, err, "malformed rule %q", line)
			}
			in.Rules.AddRule(before, after)
			continue
		}
		inRules = false
		update, err := parseUpdate(line)
		if err != nil {
			return nil, errors.AtLine(lineNo, err, "malformed update %q", line)
		}
		in.Updates = append(in.Updates, update)
	}
	return in, nil
}

func parseRule(line string) (Page, Page, error) {
	l, r, _ := strings.Cut(line, "|")
	before, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return 0, 0, err
	}
	after, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, err
	}
	return Page(before), Page(after), nil
}

func parseUpdate(line string) ([]Page, error) {
	fields := strings.Split(line, ",")
	update := make([]Page, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		update = append(update, Page(n))
	}
	return update, nil
}

// Middle returns the middle page of an update. Even-length updates use the
// upper middle.
func Middle(update []Page) Page {
	if len(update) == 0 {
		return 0
	}
	return update[len(update)/2]
}

// Part1 sums the middle pages of updates that already respect the rules.
func Part1(input string) (int, error) {
	in, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, u := range in.Updates {
		if ordering.IsValid(u, in.Rules) {
			sum += int(Middle(u))
		}
	}
	return sum, nil
}

// Part2 repairs every update that violates the rules and sums the middle
// pages of the repaired updates.
func Part2(input string) (int, error) {
	in, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, u := range in.Updates {
		if ordering.IsValid(u, in.Rules) {
			continue
		}
		fixed, err := ordering.Repair(u, in.Rules)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeCycleDetected, err, "update %d cannot be repaired", i+1)
		}
		sum += int(Middle(fixed))
	}
	return sum, nil
}
