package ordering

import "slices"

// FindCycle returns one cycle among the rules restricted to items, or nil if
// those rules are acyclic. The returned path starts and ends with the same
// item. Items are explored in the order given, so the result is stable.
func FindCycle[T comparable](items []T, rules *RuleSet[T]) []T {
	const (
		white = iota
		gray
		black
	)

	color := make(map[T]int, len(items))
	var path, cycle []T

	var dfs func(node T) bool
	dfs = func(node T) bool {
		color[node] = gray
		path = append(path, node)
		for _, child := range items {
			if !rules.Precedes(node, child) {
				continue
			}
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				i := slices.Index(path, child)
				cycle = append(slices.Clone(path[i:]), child)
				return true
			}
		}
		path = path[:len(path)-1]
		color[node] = black
		return false
	}

	for _, n := range items {
		if color[n] == white && dfs(n) {
			return cycle
		}
	}
	return nil
}
