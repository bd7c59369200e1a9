package search

import (
	"strconv"

	"github.com/esmanning/emmAMR/alg/rlheap"
)

type pointState byte

const (
	inFrontier pointState = iota + 1
	expanded
)

type frontierPoint struct {
	at    Indices
	bound float64
}

// MAX_SIZE_HINT bounds the expansions the frontier is preallocated for;
// beyond it storage grows on demand.
const MAX_SIZE_HINT = 64

func pointKey(at Indices) string {
	buf := make([]byte, 0, len(at)*3)
	for i, idx := range at {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(idx), 10)
	}
	return string(buf)
}

// Prune runs a best-first walk of the cube lattice starting at its corner.
// At most k points are expanded; every expansion pushes the unseen successor
// of each dimension onto the frontier, keyed by its additive bound. Ties on
// the bound are expanded in the order they entered the frontier. A point is
// never in the frontier and expanded at the same time, and never expanded
// twice. Prune returns the number of expansions performed, which is less
// than k only when the frontier runs dry.
func Prune(cube Cube, k int, expand ExpandFunc) (int, error) {
	if cube.Empty() || k <= 0 {
		return 0, nil
	}
	var (
		hint     = min(k, MAX_SIZE_HINT) * len(cube)
		state    = make(map[string]pointState, hint)
		frontier = rlheap.New(hint, func(a, b frontierPoint) bool {
			return a.bound < b.bound
		})
		expansions int
	)
	corner := make(Indices, len(cube))
	frontier.Push(frontierPoint{corner, cube.Bound(corner)})
	state[pointKey(corner)] = inFrontier

	for expansions < k {
		point, ok := frontier.Pop()
		if !ok {
			break
		}
		state[pointKey(point.at)] = expanded
		if err := expand(append(Indices(nil), point.at...)); err != nil {
			return expansions, err
		}
		expansions++

		for d, dim := range cube {
			if point.at[d]+1 >= dim.Len() {
				continue
			}
			next := append(Indices(nil), point.at...)
			next[d]++
			key := pointKey(next)
			if _, seen := state[key]; seen {
				continue
			}
			state[key] = inFrontier
			frontier.Push(frontierPoint{next, cube.Bound(next)})
		}
	}
	return expansions, nil
}
