package ordering

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidStart is returned by [Repair] and [Layers] when no remaining
// item is free of predecessors, which means the relevant rules form a cycle.
var ErrNoValidStart = errors.New("no valid start item")

// CycleError reports a cycle found among the relevant rules. It unwraps to
// [ErrNoValidStart].
type CycleError[T comparable] struct {
	// Cycle lists the items along the cycle; the first item is repeated at
	// the end. It is empty if the cycle could not be traced.
	Cycle []T
}

func (e *CycleError[T]) Error() string {
	if len(e.Cycle) == 0 {
		return ErrNoValidStart.Error() + ": rules form a cycle"
	}
	parts := make([]string, len(e.Cycle))
	for i, item := range e.Cycle {
		parts[i] = fmt.Sprint(item)
	}
	return ErrNoValidStart.Error() + ": rules form a cycle: " + strings.Join(parts, " -> ")
}

func (e *CycleError[T]) Unwrap() error { return ErrNoValidStart }

// Repair returns a permutation of seq in which every rule between items of
// seq is respected. rules may be the full rule set or an already filtered
// subset; only rules relevant to seq are used and rules itself is never
// modified.
//
// Items repeated in seq are emitted together, as many times as they occur.
// Ties between ready items are broken by stack order: the most recently
// enabled item comes first, and successors are enabled in sequence order.
func Repair[T comparable](seq []T, rules *RuleSet[T]) ([]T, error) {
	work := rules.RelevantSubset(seq)

	counts := make(map[T]int, len(seq))
	order := make([]T, 0, len(seq))
	for _, item := range seq {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	emitted := make(map[T]bool, len(order))
	result := make([]T, 0, len(seq))

	for len(emitted) < len(order) {
		start, ok := findStart(order, emitted, work)
		if !ok {
			return nil, &CycleError[T]{Cycle: FindCycle(pending(order, emitted), work)}
		}

		stack := []T{start}
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			emitted[item] = true
			for range counts[item] {
				result = append(result, item)
			}

			for _, next := range order {
				if !work.Precedes(item, next) {
					continue
				}
				work.RemoveRule(item, next)
				if work.HasNoIncomingRules(next) {
					stack = append(stack, next)
				}
			}
		}
	}

	return result, nil
}

// findStart returns the first item of order that was not emitted yet and
// has no incoming rule left.
func findStart[T comparable](order []T, emitted map[T]bool, rules *RuleSet[T]) (T, bool) {
	for _, item := range order {
		if !emitted[item] && rules.HasNoIncomingRules(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func pending[T comparable](order []T, emitted map[T]bool) []T {
	var out []T
	for _, item := range order {
		if !emitted[item] {
			out = append(out, item)
		}
	}
	return out
}
