package ordering

// IsValid reports whether seq breaks no rule between adjacent items.
// Sequences shorter than two items are always valid.
func IsValid[T comparable](seq []T, rules *RuleSet[T]) bool {
	_, violated := FirstViolation(seq, rules)
	return !violated
}

// FirstViolation returns the index i of the first adjacent pair
// (seq[i], seq[i+1]) for which a rule requires seq[i+1] to come first.
func FirstViolation[T comparable](seq []T, rules *RuleSet[T]) (int, bool) {
	for i := 0; i+1 < len(seq); i++ {
		if rules.Precedes(seq[i+1], seq[i]) {
			return i, true
		}
	}
	return -1, false
}
