package search

// Dimension is one axis of a cube: a sequence of candidates sorted by
// ascending cost. The search only ever sees costs, whatever the candidates
// actually are.
type Dimension interface {
	Len() int
	Cost(int) float64
}

// Cube is an ordered list of dimensions.
type Cube []Dimension

// Indices is a lattice point, one index per cube dimension.
type Indices []int

// ExpandFunc materializes the hypothesis found at a lattice point. An error
// aborts the search.
type ExpandFunc func(Indices) error

// Empty is true if the cube has no lattice points at all.
func (c Cube) Empty() bool {
	if len(c) == 0 {
		return true
	}
	for _, dim := range c {
		if dim.Len() == 0 {
			return true
		}
	}
	return false
}

// Bound is the optimistic cost of a lattice point: the sum of the cost of
// each dimension at its index.
func (c Cube) Bound(at Indices) float64 {
	var sum float64
	for d, dim := range c {
		sum += dim.Cost(at[d])
	}
	return sum
}
