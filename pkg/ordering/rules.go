package ordering

import (
	"iter"

	"github.com/matzehuels/advent/pkg/multimap"
)

// Rule requires Before to appear earlier than After in any sequence that
// contains both.
type Rule[T comparable] struct {
	Before T
	After  T
}

// RuleSet is a set of precedence rules. Duplicate rules collapse.
// The zero value is an empty rule set ready for use.
type RuleSet[T comparable] struct {
	succ multimap.MultiMap[T, T] // before -> afters
}

// NewRuleSet creates a rule set holding the given rules.
func NewRuleSet[T comparable](rules ...Rule[T]) *RuleSet[T] {
	rs := &RuleSet[T]{}
	for _, r := range rules {
		rs.AddRule(r.Before, r.After)
	}
	return rs
}

// AddRule adds the rule "before precedes after".
func (rs *RuleSet[T]) AddRule(before, after T) {
	rs.succ.Insert(before, after)
}

// RemoveRule deletes the rule "before precedes after" if present.
func (rs *RuleSet[T]) RemoveRule(before, after T) {
	rs.succ.Remove(before, after)
}

// Precedes reports whether a rule directly requires before to come ahead
// of after. Rules are not chained.
func (rs *RuleSet[T]) Precedes(before, after T) bool {
	return rs.succ.Contains(before, after)
}

// SuccessorsOf returns the items that item must precede.
func (rs *RuleSet[T]) SuccessorsOf(item T) iter.Seq[T] {
	return rs.succ.Get(item)
}

// HasNoIncomingRules reports whether no rule in the set lists item as the
// item that must come after.
func (rs *RuleSet[T]) HasNoIncomingRules(item T) bool {
	for after := range rs.succ.Values() {
		if after == item {
			return false
		}
	}
	return true
}

// RelevantSubset returns a new rule set with only the rules whose both
// endpoints appear in seq. The receiver is left untouched.
func (rs *RuleSet[T]) RelevantSubset(seq []T) *RuleSet[T] {
	present := make(map[T]struct{}, len(seq))
	for _, item := range seq {
		present[item] = struct{}{}
	}

	sub := &RuleSet[T]{}
	for before, after := range rs.succ.All() {
		_, hasBefore := present[before]
		_, hasAfter := present[after]
		if hasBefore && hasAfter {
			sub.AddRule(before, after)
		}
	}
	return sub
}

// Rules returns every rule in unspecified order.
func (rs *RuleSet[T]) Rules() iter.Seq[Rule[T]] {
	return func(yield func(Rule[T]) bool) {
		for before, after := range rs.succ.All() {
			if !yield(Rule[T]{Before: before, After: after}) {
				return
			}
		}
	}
}

// Items returns every item that takes part in at least one rule, once.
func (rs *RuleSet[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for before, after := range rs.succ.All() {
			for _, item := range [2]T{before, after} {
				if _, ok := seen[item]; ok {
					continue
				}
				seen[item] = struct{}{}
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Len returns the number of rules.
func (rs *RuleSet[T]) Len() int { return rs.succ.Len() }

// Clone returns an independent copy of the rule set.
func (rs *RuleSet[T]) Clone() *RuleSet[T] {
	return &RuleSet[T]{succ: *rs.succ.Clone()}
}
