package graph

import "github.com/esmanning/emmAMR/util"

// BasicLabeledEdge is (id, from, to, label)
type BasicLabeledEdge struct {
	Id       int
	Src, Dst int
	Rel      string
}

// Arena is a directed labeled multigraph over dense vertex ids. Vertices and
// edges are never removed, so ids stay stable for the life of the arena.
type Arena struct {
	Edges    []BasicLabeledEdge
	out      [][]int
	inDegree []int
}

var _ LabeledEdge = BasicLabeledEdge{}
var _ DirectedGraph = &Arena{}

func (e BasicLabeledEdge) ID() int {
	return e.Id
}

func (e BasicLabeledEdge) From() int {
	return e.Src
}

func (e BasicLabeledEdge) To() int {
	return e.Dst
}

func (e BasicLabeledEdge) Label() string {
	return e.Rel
}

func (e BasicLabeledEdge) Vertices() []int {
	return []int{e.Src, e.Dst}
}

func NewArena(vertices, edges int) *Arena {
	return &Arena{
		Edges:    make([]BasicLabeledEdge, 0, edges),
		out:      make([][]int, 0, vertices),
		inDegree: make([]int, 0, vertices),
	}
}

func (g *Arena) AddVertex() int {
	g.out = append(g.out, nil)
	g.inDegree = append(g.inDegree, 0)
	return len(g.out) - 1
}

func (g *Arena) AddEdge(from int, label string, to int) int {
	if from < 0 || from >= len(g.out) || to < 0 || to >= len(g.out) {
		panic("edge endpoint out of range")
	}
	id := len(g.Edges)
	g.Edges = append(g.Edges, BasicLabeledEdge{id, from, to, label})
	g.out[from] = append(g.out[from], id)
	g.inDegree[to]++
	return id
}

func (g *Arena) GetVertices() []int {
	return util.RangeInt(len(g.out))
}

func (g *Arena) GetEdges() []int {
	return util.RangeInt(len(g.Edges))
}

func (g *Arena) GetDirectedEdge(i int) DirectedEdge {
	return g.Edges[i]
}

func (g *Arena) GetLabeledEdge(i int) BasicLabeledEdge {
	return g.Edges[i]
}

func (g *Arena) Outgoing(v int) []int {
	return g.out[v]
}

func (g *Arena) InDegree(v int) int {
	return g.inDegree[v]
}

func (g *Arena) NumberOfVertices() int {
	return len(g.out)
}

func (g *Arena) NumberOfEdges() int {
	return len(g.Edges)
}
