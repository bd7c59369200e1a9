package types

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// ROOT_LABEL marks where a node's own realization sits among its children
	ROOT_LABEL = "ROOT"
)

// A Hypothesis is one scored realization of a node or subtree. Lower cost is
// better.
type Hypothesis struct {
	Cost float64
	Tag  int
	Text string
}

func (h Hypothesis) String() string {
	return fmt.Sprintf("(%.4f %d %q)", h.Cost, h.Tag, h.Text)
}

// Hypotheses is a k-best list. Once sorted it is ordered by ascending cost,
// ties in insertion order.
type Hypotheses []Hypothesis

func (h Hypotheses) Len() int {
	return len(h)
}

func (h Hypotheses) Cost(i int) float64 {
	return h[i].Cost
}

func (h Hypotheses) Sort() {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Cost < h[j].Cost
	})
}

// Best returns the lowest cost hypothesis, the earliest one on ties.
func (h Hypotheses) Best() (Hypothesis, bool) {
	if len(h) == 0 {
		return Hypothesis{}, false
	}
	best := 0
	for i := 1; i < len(h); i++ {
		if h[i].Cost < h[best].Cost {
			best = i
		}
	}
	return h[best], true
}

func (h Hypotheses) Texts() []string {
	retval := make([]string, len(h))
	for i, hyp := range h {
		retval[i] = hyp.Text
	}
	return retval
}

func (h Hypotheses) String() string {
	strs := make([]string, len(h))
	for i, hyp := range h {
		strs[i] = hyp.String()
	}
	return "[" + strings.Join(strs, " ") + "]"
}
