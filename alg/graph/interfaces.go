package graph

type Edge interface {
	Vertices() []int
	ID() int
}

type DirectedEdge interface {
	Edge
	From() int
	To() int
}

type LabeledEdge interface {
	DirectedEdge
	Label() string
}

type Graph interface {
	GetVertices() []int
	GetEdges() []int
	NumberOfVertices() int
	NumberOfEdges() int
}

type DirectedGraph interface {
	Graph
	GetDirectedEdge(int) DirectedEdge
	// Outgoing returns the ids of edges leaving a vertex, in insertion order
	Outgoing(int) []int
}
