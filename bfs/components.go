package bfs

// Components partitions g into connected components. Each component lists
// its indices in BFS order from its smallest index; components are ordered
// by that smallest index. A nil adjacency has no components.
func Components(g Adjacency) [][]int {
	if g == nil {
		return nil
	}
	n := g.Order()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}
