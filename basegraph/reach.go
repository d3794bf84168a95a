package basegraph

// HasPath reports whether at least one path exists from start to end in adj,
// by breadth-first search. It is a pure existence check: no path is recorded.
//
// Edge behavior:
//   - start == end is reflexively true for any valid index, even without edges.
//   - An empty structure, or either id outside [0, len(adj)), is false.
//   - The search returns true the instant end is discovered as a neighbor.
//
// Complexity: O(V + E) time, O(V) memory.
func HasPath(adj [][]BaseEdge, start, end int) bool {
	if len(adj) == 0 {
		return false
	}
	if start < 0 || start >= len(adj) {
		return false
	}
	if end < 0 || end >= len(adj) {
		return false
	}
	if start == end {
		return true
	}

	visited := make([]bool, len(adj))
	queue := make([]int, 0, len(adj))
	queue = append(queue, start)
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, edge := range adj[current] {
			if edge.To == end {
				return true
			}
			if !visited[edge.To] {
				visited[edge.To] = true
				queue = append(queue, edge.To)
			}
		}
	}

	return false
}
