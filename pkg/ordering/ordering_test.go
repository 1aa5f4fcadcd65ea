package ordering

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageRules is the rule block from the print queue sample.
func pageRules() *RuleSet[int] {
	pairs := [][2]int{
		{47, 53}, {97, 13}, {97, 61}, {97, 47}, {75, 29}, {61, 13}, {75, 53},
		{29, 13}, {97, 29}, {53, 29}, {61, 53}, {97, 53}, {61, 29}, {47, 13},
		{75, 47}, {97, 75}, {47, 61}, {75, 61}, {47, 29}, {75, 13}, {53, 13},
	}
	rs := &RuleSet[int]{}
	for _, p := range pairs {
		rs.AddRule(p[0], p[1])
	}
	return rs
}

func pageUpdates() [][]int {
	return [][]int{
		{75, 47, 61, 53, 29},
		{97, 61, 53, 29, 13},
		{75, 29, 13},
		{75, 97, 47, 61, 53},
		{61, 13, 29},
		{97, 13, 75, 29, 47},
	}
}

// respectsAll checks every rule between items of seq, not only adjacent ones.
func respectsAll(seq []int, rules *RuleSet[int]) bool {
	pos := make(map[int]int, len(seq))
	for i, item := range seq {
		pos[item] = i
	}
	for r := range rules.Rules() {
		bi, okB := pos[r.Before]
		ai, okA := pos[r.After]
		if okB && okA && bi >= ai {
			return false
		}
	}
	return true
}

func TestRuleSetBasics(t *testing.T) {
	rs := NewRuleSet(Rule[int]{1, 2}, Rule[int]{1, 3}, Rule[int]{1, 2})

	assert.Equal(t, 2, rs.Len())
	assert.True(t, rs.Precedes(1, 2))
	assert.False(t, rs.Precedes(2, 1))
	assert.ElementsMatch(t, []int{2, 3}, slices.Collect(rs.SuccessorsOf(1)))
	assert.Empty(t, slices.Collect(rs.SuccessorsOf(9)))
	assert.ElementsMatch(t, []int{1, 2, 3}, slices.Collect(rs.Items()))

	rs.RemoveRule(1, 2)
	assert.False(t, rs.Precedes(1, 2))
	assert.Equal(t, 1, rs.Len())
}

func TestPrecedesIsDirectOnly(t *testing.T) {
	rs := NewRuleSet(Rule[string]{"a", "b"}, Rule[string]{"b", "c"})

	assert.True(t, rs.Precedes("a", "b"))
	assert.True(t, rs.Precedes("b", "c"))
	assert.False(t, rs.Precedes("a", "c"), "no transitive closure")
}

func TestHasNoIncomingRules(t *testing.T) {
	rs := pageRules()

	assert.True(t, rs.HasNoIncomingRules(97))
	assert.False(t, rs.HasNoIncomingRules(75))
	assert.True(t, rs.HasNoIncomingRules(1000))
}

func TestRelevantSubset(t *testing.T) {
	rs := pageRules()

	for _, update := range pageUpdates() {
		sub := rs.RelevantSubset(update)
		for r := range sub.Rules() {
			assert.Contains(t, update, r.Before)
			assert.Contains(t, update, r.After)
			assert.True(t, rs.Precedes(r.Before, r.After))
		}
		for r := range rs.Rules() {
			if slices.Contains(update, r.Before) && slices.Contains(update, r.After) {
				assert.True(t, sub.Precedes(r.Before, r.After), "missing %v", r)
			}
		}
	}

	sub := rs.RelevantSubset([]int{75, 29, 13})
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 21, rs.Len(), "receiver must not change")
}

func TestCloneIsIndependent(t *testing.T) {
	rs := pageRules()
	c := rs.Clone()
	c.RemoveRule(97, 13)

	assert.True(t, rs.Precedes(97, 13))
	assert.False(t, c.Precedes(97, 13))
}

func TestIsValid(t *testing.T) {
	rs := pageRules()
	want := []bool{true, true, true, false, false, false}

	for i, update := range pageUpdates() {
		assert.Equal(t, want[i], IsValid(update, rs), "update %v", update)
	}
}

func TestIsValidShortSequences(t *testing.T) {
	rs := NewRuleSet(Rule[int]{2, 1})

	assert.True(t, IsValid(nil, rs))
	assert.True(t, IsValid([]int{1}, rs))
	assert.False(t, IsValid([]int{1, 2}, rs))
}

func TestIsValidIsAdjacentOnly(t *testing.T) {
	// 3 must precede 1, but they are not neighbours.
	rs := NewRuleSet(Rule[int]{3, 1})

	assert.True(t, IsValid([]int{1, 2, 3}, rs))
	assert.False(t, respectsAll([]int{1, 2, 3}, rs))
}

func TestFirstViolation(t *testing.T) {
	rs := pageRules()

	i, ok := FirstViolation([]int{75, 97, 47, 61, 53}, rs)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = FirstViolation([]int{61, 13, 29}, rs)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = FirstViolation([]int{75, 29, 13}, rs)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestRepair(t *testing.T) {
	rs := pageRules()

	tests := []struct {
		update []int
		want   []int
	}{
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}},
		{[]int{61, 13, 29}, []int{61, 29, 13}},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.update), func(t *testing.T) {
			got, err := Repair(tt.update, rs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 21, rs.Len(), "rules must not be consumed")
		})
	}
}

func TestRepairWithFilteredSubset(t *testing.T) {
	rs := pageRules()
	update := []int{75, 97, 47, 61, 53}

	fromFull, err := Repair(update, rs)
	require.NoError(t, err)
	fromSubset, err := Repair(update, rs.RelevantSubset(update))
	require.NoError(t, err)

	assert.Equal(t, fromFull, fromSubset)
	assert.Equal(t, 47, fromSubset[len(fromSubset)/2])
}

func TestRepairSortsChain(t *testing.T) {
	rs := NewRuleSet(
		Rule[int]{0, 22}, Rule[int]{0, 11}, Rule[int]{11, 44}, Rule[int]{11, 33},
		Rule[int]{11, 22}, Rule[int]{22, 44}, Rule[int]{22, 33}, Rule[int]{33, 44},
	)

	got, err := Repair([]int{11, 44, 33, 0, 22}, rs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 11, 22, 33, 44}, got)
}

func TestRepairProducesConsistentPermutations(t *testing.T) {
	rs := pageRules()

	for _, update := range pageUpdates() {
		sub := rs.RelevantSubset(update)
		got, err := Repair(update, sub)
		require.NoError(t, err)

		assert.ElementsMatch(t, update, got, "must be a permutation")
		assert.True(t, IsValid(got, sub), "repaired %v -> %v is not valid", update, got)
		assert.True(t, respectsAll(got, sub), "repaired %v -> %v breaks a rule", update, got)
	}
}

func TestRepairValidSequenceStaysValid(t *testing.T) {
	rs := pageRules()
	update := []int{75, 47, 61, 53, 29}

	got, err := Repair(update, rs)
	require.NoError(t, err)
	assert.True(t, IsValid(got, rs))
	assert.Equal(t, update, got)
}

func TestRepairDisconnectedItems(t *testing.T) {
	// 5 and 6 are not linked to the 1 -> 2 chain.
	rs := NewRuleSet(Rule[int]{1, 2}, Rule[int]{6, 5})

	got, err := Repair([]int{2, 5, 1, 6}, rs)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 5, 6}, got)
	assert.True(t, respectsAll(got, rs))
}

func TestRepairDuplicates(t *testing.T) {
	rs := NewRuleSet(Rule[int]{1, 2})

	got, err := Repair([]int{2, 1, 2}, rs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, got)
}

func TestRepairEmpty(t *testing.T) {
	got, err := Repair(nil, pageRules())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepairCycle(t *testing.T) {
	rs := NewRuleSet(Rule[int]{1, 2}, Rule[int]{2, 3}, Rule[int]{3, 1})

	_, err := Repair([]int{3, 2, 1}, rs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoValidStart))

	var cycleErr *CycleError[int]
	require.True(t, errors.As(err, &cycleErr))
	require.NotEmpty(t, cycleErr.Cycle)
	assert.Equal(t, cycleErr.Cycle[0], cycleErr.Cycle[len(cycleErr.Cycle)-1])
	assert.Contains(t, err.Error(), "->")
}

func TestRepairCycleAfterProgress(t *testing.T) {
	// 9 can be emitted, but 1 and 2 depend on each other.
	rs := NewRuleSet(Rule[int]{9, 1}, Rule[int]{1, 2}, Rule[int]{2, 1})

	_, err := Repair([]int{1, 9, 2}, rs)
	assert.ErrorIs(t, err, ErrNoValidStart)
}

func TestFindCycle(t *testing.T) {
	acyclic := NewRuleSet(Rule[string]{"a", "b"}, Rule[string]{"b", "c"})
	assert.Nil(t, FindCycle([]string{"a", "b", "c"}, acyclic))

	cyclic := NewRuleSet(Rule[string]{"a", "b"}, Rule[string]{"b", "c"}, Rule[string]{"c", "b"})
	assert.Equal(t, []string{"b", "c", "b"}, FindCycle([]string{"a", "b", "c"}, cyclic))

	self := NewRuleSet(Rule[string]{"x", "x"})
	assert.Equal(t, []string{"x", "x"}, FindCycle([]string{"x"}, self))
}

func TestLayers(t *testing.T) {
	rs := pageRules()

	layers, err := Layers([]int{75, 97, 47, 61, 53}, rs)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{97}, {75}, {47}, {61}, {53}}, layers)

	diamond := NewRuleSet(Rule[string]{"a", "b"}, Rule[string]{"a", "c"}, Rule[string]{"b", "d"}, Rule[string]{"c", "d"})
	layers2, err := Layers([]string{"d", "c", "b", "a", "e"}, diamond)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "e"}, {"c", "b"}, {"d"}}, layers2)
}

func TestLayersCycle(t *testing.T) {
	rs := NewRuleSet(Rule[int]{1, 2}, Rule[int]{2, 1}, Rule[int]{2, 3})

	_, err := Layers([]int{1, 2, 3}, rs)
	var cycleErr *CycleError[int]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []int{1, 2, 1}, cycleErr.Cycle)
}

func TestRepairGolden(t *testing.T) {
	rs := pageRules()

	var b strings.Builder
	for _, update := range pageUpdates() {
		if IsValid(update, rs) {
			continue
		}
		fixed, err := Repair(update, rs)
		require.NoError(t, err)
		fmt.Fprintf(&b, "%s -> %s (middle %d)\n", join(update), join(fixed), fixed[len(fixed)/2])
	}

	g := goldie.New(t)
	g.Assert(t, "repair_sample", []byte(b.String()))
}

func join(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
