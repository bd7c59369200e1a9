package generator

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/types"
)

func childrenOf(n int) []amr.Edge {
	retval := make([]amr.Edge, n)
	for i := range retval {
		retval[i] = amr.Edge{Head: 0, Rel: ":ARG" + string(rune('0'+i)), Dep: i + 1}
	}
	return retval
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

var testPairs = PairModel{
	{":ARG0", types.ROOT_LABEL}: 0.9,
	{types.ROOT_LABEL, ":ARG1"}: 0.8,
	{":ARG0", ":ARG1"}:          0.7,
	{":ARG1", ":ARG0"}:          0.3,
}

func TestOrderingsNeutral(t *testing.T) {
	orders := (&OrderScorer{}).Orderings(childrenOf(3))
	require.Len(t, orders, 3)
	for _, o := range orders {
		assert.Equal(t, NEUTRAL_COST, o.Cost)
	}
	assert.Equal(t, []int{0, 1, ROOT_POSITION, 2}, orders[0].Positions)
	assert.Equal(t, []int{ROOT_POSITION, 0, 1, 2}, orders[1].Positions)
	assert.Equal(t, []int{0, 1, 2, ROOT_POSITION}, orders[2].Positions)

	var none *OrderScorer
	assert.False(t, none.Configured())
	assert.Len(t, none.Orderings(childrenOf(1)), 3)
}

func TestOrderingsCount(t *testing.T) {
	scorer := &OrderScorer{Pairs: testPairs}
	properties := gopter.NewProperties(nil)

	properties.Property("all permutations up to the threshold, canonical above", prop.ForAll(
		func(n int) bool {
			orders := scorer.Orderings(childrenOf(n))
			if n <= MAX_PERMUTED_CHILDREN {
				return len(orders) == factorial(n+1)
			}
			return len(orders) == 3
		},
		gen.IntRange(0, 8),
	))

	properties.Property("every ordering places each child and the node once", prop.ForAll(
		func(n int) bool {
			for _, o := range scorer.Orderings(childrenOf(n)) {
				positions := append([]int{}, o.Positions...)
				sort.Ints(positions)
				if len(positions) != n+1 || positions[0] != ROOT_POSITION {
					return false
				}
				for i := 1; i <= n; i++ {
					if positions[i] != i-1 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 8),
	))

	properties.Property("orderings are sorted by cost", prop.ForAll(
		func(n int) bool {
			orders := scorer.Orderings(childrenOf(n))
			return sort.SliceIsSorted(orders, func(i, j int) bool {
				return orders[i].Cost < orders[j].Cost
			})
		},
		gen.IntRange(0, 5),
	))
	properties.TestingRun(t)
}

func TestPairScore(t *testing.T) {
	scorer := &OrderScorer{Pairs: testPairs}
	good := scorer.Score([]string{":ARG0", types.ROOT_LABEL, ":ARG1"})
	bad := scorer.Score([]string{":ARG1", types.ROOT_LABEL, ":ARG0"})
	assert.InDelta(t, -math.Log(0.9)-math.Log(0.8)-math.Log(0.7), good, 1e-9)
	assert.InDelta(t, -math.Log(0.3), bad, 1e-9)

	// unknown pairs cost nothing, so the node last wins here
	best := scorer.Orderings(childrenOf(2))[0]
	assert.Equal(t, []int{0, 1, ROOT_POSITION}, best.Positions)
	assert.InDelta(t, -math.Log(0.9)-math.Log(0.7), best.Cost, 1e-9)
}

func TestPairScoreSelfPairs(t *testing.T) {
	pairs := PairModel{{":ARG0", ":ARG0"}: 0.5}
	labels := []string{":ARG0", ":ARG0"}

	assert.InDelta(t, -math.Log(0.5), (&OrderScorer{Pairs: pairs}).Score(labels), 1e-9)
	assert.InDelta(t, -3*math.Log(0.5), (&OrderScorer{Pairs: pairs, IncludeSelfPairs: true}).Score(labels), 1e-9)
}

func TestCorenessScore(t *testing.T) {
	scorer := &OrderScorer{Coreness: CorenessModel{":ARG0": 0, ":ARG1": 0.25}}

	// before the root is read outward: ARG0 is adjacent to the root
	near := scorer.Score([]string{":ARG1", ":ARG0", types.ROOT_LABEL})
	far := scorer.Score([]string{":ARG0", ":ARG1", types.ROOT_LABEL})
	assert.InDelta(t, -math.Log(0.75), near, 1e-9)
	assert.InDelta(t, -math.Log(0.25), far, 1e-9)

	// a single element side is not scored
	assert.Equal(t, 0.0, scorer.Score([]string{":ARG1", types.ROOT_LABEL, ":ARG0"}))
	assert.Equal(t, 0.0, scorer.Score([]string{types.ROOT_LABEL, ":ARG0", ":unknown"}))
}

func TestScoreMean(t *testing.T) {
	pairs := &OrderScorer{Pairs: testPairs}
	coreness := &OrderScorer{Coreness: CorenessModel{":ARG0": 0, ":ARG1": 0.25}}
	both := &OrderScorer{Pairs: testPairs, Coreness: coreness.Coreness}

	labels := []string{":ARG0", ":ARG1", types.ROOT_LABEL}
	assert.InDelta(t, (pairs.Score(labels)+coreness.Score(labels))/2, both.Score(labels), 1e-9)
}

func TestScoreNeverUndefined(t *testing.T) {
	rels := []string{":ARG0", ":ARG1", ":ARG2", ":mod", types.ROOT_LABEL}
	scorer := &OrderScorer{
		Pairs:    PairModel{{":ARG0", ":ARG1"}: 1, {":mod", ":ARG2"}: 0.5},
		Coreness: CorenessModel{":ARG0": 0, ":ARG1": 0.5, ":ARG2": 1, ":mod": 0.5},
	}
	properties := gopter.NewProperties(nil)
	properties.Property("scores are finite", prop.ForAll(
		func(picks []int) bool {
			labels := make([]string, len(picks))
			for i, p := range picks {
				labels[i] = rels[p]
			}
			score := scorer.Score(labels)
			return !math.IsNaN(score) && !math.IsInf(score, 0)
		},
		gen.SliceOf(gen.IntRange(0, len(rels)-1)),
	))
	properties.TestingRun(t)
}

func TestReadModels(t *testing.T) {
	pairs, err := ReadPairModel(strings.NewReader("# pairs\n:ARG0\t:ARG1\t0.7\n:ARG1\t:ARG0\t0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, PairModel{{":ARG0", ":ARG1"}: 0.7, {":ARG1", ":ARG0"}: 0.3}, pairs)

	coreness, err := ReadCorenessModel(strings.NewReader(":ARG0\t0\n:mod\t0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, CorenessModel{":ARG0": 0, ":mod": 0.5}, coreness)

	for _, bad := range []string{
		":ARG0\t:ARG1\n",
		":ARG0\t:ARG1\tzero\n",
		":ARG0\t:ARG1\t0\n",
		":ARG0\t:ARG1\t1.5\n",
	} {
		_, err := ReadPairModel(strings.NewReader(bad))
		assert.True(t, errors.Is(err, ErrModel), bad)
	}
	for _, bad := range []string{":ARG0\n", ":ARG0\t-0.1\n", ":ARG0\t2\n"} {
		_, err := ReadCorenessModel(strings.NewReader(bad))
		assert.True(t, errors.Is(err, ErrModel), bad)
	}
}
