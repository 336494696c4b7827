package routingalgorithm

// ConnectedComponents labels every node with the id of its connected
// component. Ids are dense and assigned in node order, starting at 0.
// Roads are two-way, so one DFS sweep finds the same sets as an SCC pass.
func ConnectedComponents(g Graph) ([]int32, int) {
	n := g.GetNumNodes()
	comp := make([]int32, n)
	for i := range comp {
		comp[i] = -1
	}

	count := int32(0)
	stack := make([]int32, 0)
	for s := int32(0); s < int32(n); s++ {
		if comp[s] != -1 {
			continue
		}

		comp[s] = count
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, edgeID := range g.GetNodeEdges(u) {
				v := g.GetEdge(edgeID).Other(u)
				if comp[v] == -1 {
					comp[v] = count
					stack = append(stack, v)
				}
			}
		}
		count++
	}

	return comp, int(count)
}
