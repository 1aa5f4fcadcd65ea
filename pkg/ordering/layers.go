package ordering

// Layers groups the distinct items of seq into layers by longest-path depth
// over the rules relevant to seq.
//
// Items with no incoming rule sit in layer 0, and every other item sits one
// layer below its deepest predecessor, so each rule points strictly
// downwards. Within a layer items keep their order of first appearance in
// seq.
//
// # Algorithm
//
// Kahn's algorithm with a FIFO queue: sources start at depth 0, each
// processed item pushes its successors to max(depth+1), and a successor is
// queued once its in-degree drops to zero. Items left unprocessed are part
// of a cycle, reported as a [*CycleError] wrapping [ErrNoValidStart].
//
// Time complexity is O(V²) because successors are scanned in sequence order.
func Layers[T comparable](seq []T, rules *RuleSet[T]) ([][]T, error) {
	sub := rules.RelevantSubset(seq)

	var order []T
	seen := make(map[T]bool, len(seq))
	for _, item := range seq {
		if !seen[item] {
			seen[item] = true
			order = append(order, item)
		}
	}

	inDegree := make(map[T]int, len(order))
	for r := range sub.Rules() {
		inDegree[r.After]++
	}

	depth := make(map[T]int, len(order))
	queue := make([]T, 0, len(order))
	for _, item := range order {
		if inDegree[item] == 0 {
			queue = append(queue, item)
		}
	}

	processed := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		processed++

		for _, child := range order {
			if !sub.Precedes(curr, child) {
				continue
			}
			if d := depth[curr] + 1; d > depth[child] {
				depth[child] = d
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if processed < len(order) {
		var stuck []T
		for _, item := range order {
			if inDegree[item] > 0 {
				stuck = append(stuck, item)
			}
		}
		return nil, &CycleError[T]{Cycle: FindCycle(stuck, sub)}
	}

	var layers [][]T
	for _, item := range order {
		d := depth[item]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], item)
	}
	return layers, nil
}
