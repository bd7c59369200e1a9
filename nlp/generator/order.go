package generator

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/types"
)

const (
	// NEUTRAL_COST is given to every ordering when no model is loaded
	NEUTRAL_COST = 0.5

	// MAX_PERMUTED_CHILDREN is the largest child count for which all
	// orderings are enumerated
	MAX_PERMUTED_CHILDREN = 5

	// ROOT_POSITION stands for the node's own realization in an ordering
	ROOT_POSITION = -1
)

// PairModel is p(a precedes b) keyed by the relation labels of a and b.
type PairModel map[[2]string]float64

// CorenessModel is the expected normalized position of a relation on its
// side of the head.
type CorenessModel map[string]float64

// Ordering is a linearization of a node's children and the node itself.
// Positions hold child indices, with ROOT_POSITION for the node.
type Ordering struct {
	Cost      float64
	Positions []int
}

// Orderings is a cube dimension.
type Orderings []Ordering

func (o Orderings) Len() int {
	return len(o)
}

func (o Orderings) Cost(i int) float64 {
	return o[i].Cost
}

// OrderScorer scores linearizations with up to two models; either may be nil.
type OrderScorer struct {
	Pairs    PairModel
	Coreness CorenessModel

	// IncludeSelfPairs also scores each element paired with itself
	IncludeSelfPairs bool
}

func (o *OrderScorer) Configured() bool {
	return o != nil && (o.Pairs != nil || o.Coreness != nil)
}

func (o *OrderScorer) pairCost(labels []string) float64 {
	var cost float64
	for i := range labels {
		start := i + 1
		if o.IncludeSelfPairs {
			start = i
		}
		for j := start; j < len(labels); j++ {
			if p, exists := o.Pairs[[2]string{labels[i], labels[j]}]; exists && p > 0 {
				cost -= math.Log(p)
			}
		}
	}
	return cost
}

func (o *OrderScorer) sideCost(side []string) float64 {
	var cost float64
	if len(side) < 2 {
		return cost
	}
	for i, label := range side {
		expected, exists := o.Coreness[label]
		if !exists {
			continue
		}
		observed := float64(i) / float64(len(side)-1)
		if diff := math.Abs(expected - observed); diff != 0 {
			cost -= math.Log(diff)
		}
	}
	return cost
}

// corenessCost splits the sequence at the root marker. The side before the
// root is read outward from the root, so position 0 is always adjacent to it.
func (o *OrderScorer) corenessCost(labels []string) float64 {
	var (
		before, after []string
		seenRoot      bool
	)
	for _, label := range labels {
		switch {
		case label == types.ROOT_LABEL:
			seenRoot = true
		case seenRoot:
			after = append(after, label)
		default:
			before = append([]string{label}, before...)
		}
	}
	return o.sideCost(before) + o.sideCost(after)
}

// Score is the cost of a sequence of relation labels, the root marker being
// types.ROOT_LABEL. Lower is more natural.
func (o *OrderScorer) Score(labels []string) float64 {
	switch {
	case !o.Configured():
		return NEUTRAL_COST
	case o.Coreness == nil:
		return o.pairCost(labels)
	case o.Pairs == nil:
		return o.corenessCost(labels)
	default:
		return (o.pairCost(labels) + o.corenessCost(labels)) / 2
	}
}

func labelsOf(positions []int, children []amr.Edge) []string {
	labels := make([]string, len(positions))
	for i, pos := range positions {
		if pos == ROOT_POSITION {
			labels[i] = types.ROOT_LABEL
		} else {
			labels[i] = children[pos].Rel
		}
	}
	return labels
}

// canonicalOrderings puts the node second to last, first, and last.
func canonicalOrderings(n int) [][]int {
	penult := make([]int, 0, n+1)
	for i := 0; i < n-1; i++ {
		penult = append(penult, i)
	}
	penult = append(penult, ROOT_POSITION)
	if n > 0 {
		penult = append(penult, n-1)
	}

	first := make([]int, 0, n+1)
	first = append(first, ROOT_POSITION)
	last := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		first = append(first, i)
		last = append(last, i)
	}
	last = append(last, ROOT_POSITION)
	return [][]int{penult, first, last}
}

// allOrderings enumerates every permutation of the children and the node.
func allOrderings(n int) [][]int {
	perms := combin.Permutations(n+1, n+1)
	for _, perm := range perms {
		for i, item := range perm {
			if item == n {
				perm[i] = ROOT_POSITION
			}
		}
	}
	return perms
}

// Orderings returns the candidate linearizations of a node's children,
// sorted by cost with ties in generation order.
func (o *OrderScorer) Orderings(children []amr.Edge) Orderings {
	var candidates [][]int
	if o.Configured() && len(children) <= MAX_PERMUTED_CHILDREN {
		candidates = allOrderings(len(children))
	} else {
		candidates = canonicalOrderings(len(children))
	}
	retval := make(Orderings, len(candidates))
	for i, positions := range candidates {
		retval[i] = Ordering{o.Score(labelsOf(positions, children)), positions}
	}
	sort.SliceStable(retval, func(i, j int) bool {
		return retval[i].Cost < retval[j].Cost
	})
	return retval
}
