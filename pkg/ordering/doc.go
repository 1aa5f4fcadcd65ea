// Package ordering validates and repairs sequences against pairwise
// precedence rules.
//
// # Overview
//
// A [RuleSet] holds rules of the form "before must appear earlier than
// after". Rules are stored in a [multimap.MultiMap] keyed by the before
// item, so the successors of an item are a direct lookup. No transitive
// closure is ever computed: [RuleSet.Precedes] answers only for rules that
// were added explicitly.
//
// # Validation
//
// [IsValid] checks adjacent pairs only. A sequence is rejected iff some
// adjacent pair (a, b) has a rule saying b must precede a. This is a weak,
// local check and is kept that way on purpose: repair and scoring operate on
// the same rule semantics.
//
// # Repair
//
// [Repair] turns an invalid sequence into a permutation that satisfies
// every rule between its items. It works on a private copy of
// [RuleSet.RelevantSubset] and consumes it destructively:
//
//  1. Pick the first item (in sequence order) with no incoming rule.
//  2. Push it on a work stack.
//  3. Pop an item, emit it, and remove its outgoing rules. Every successor
//     left without a predecessor is pushed.
//  4. When the stack runs dry while items remain, pick a new start among
//     them. If none is ready the remaining rules contain a cycle and
//     [ErrNoValidStart] is returned.
//
// Successors are visited in sequence order, so the output is deterministic
// for a given input.
//
// # Layers
//
// [Layers] groups items by longest-path depth over the relevant rules. The
// CLI uses it to rank nodes when rendering a rule graph.
//
// [multimap.MultiMap]: github.com/matzehuels/advent/pkg/multimap
package ordering
