package graph

// Reachable lists the vertices reachable from a vertex (itself included) in
// breadth-first order. Cycles are visited once.
func Reachable(g DirectedGraph, from int) []int {
	visited := make(map[int]bool, g.NumberOfVertices())
	visited[from] = true
	agenda := []int{from}
	retval := make([]int, 0, g.NumberOfVertices())
	for len(agenda) > 0 {
		cur := agenda[0]
		agenda = agenda[1:]
		retval = append(retval, cur)
		for _, edgeId := range g.Outgoing(cur) {
			next := g.GetDirectedEdge(edgeId).To()
			if !visited[next] {
				visited[next] = true
				agenda = append(agenda, next)
			}
		}
	}
	return retval
}

// Reentrancies lists the vertices that are the target of more than one edge,
// in ascending order.
func Reentrancies(g DirectedGraph) []int {
	inDegree := make([]int, g.NumberOfVertices())
	for _, edgeId := range g.GetEdges() {
		inDegree[g.GetDirectedEdge(edgeId).To()]++
	}
	var retval []int
	for v, d := range inDegree {
		if d > 1 {
			retval = append(retval, v)
		}
	}
	return retval
}
