package generator

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/esmanning/emmAMR/alg/search"
	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/types"
)

// structural relations are realized through their head, never on their own
var structural = map[string]bool{
	amr.REL_INSTANCE: true,
	amr.REL_WIKI:     true,
	amr.REL_MODE:     true,
	amr.REL_NAME:     true,
}

func (gen *generation) children(node int) []amr.Edge {
	var retval []amr.Edge
	for _, e := range gen.graph.Edges(node) {
		if !structural[e.Rel] {
			retval = append(retval, e)
		}
	}
	return retval
}

// subtree returns the k-best realizations of the subtree under an edge's
// dependent. Cube dimension 0 holds the orderings, 1 the node's own
// lexicalizations and 2.. each child's k-best, in child order.
func (gen *generation) subtree(e amr.Edge) (types.Hypotheses, error) {
	gen.stats.Nodes++
	children := gen.children(e.Dep)
	if len(children) == 0 || gen.seen[e.Dep] {
		return gen.lexicalize(e)
	}

	orders := gen.Orders.Orderings(children)
	own, err := gen.lexicalize(e)
	if err != nil {
		return nil, err
	}
	cube := make(search.Cube, 0, len(children)+2)
	cube = append(cube, orders, own)
	kids := make([]types.Hypotheses, len(children))
	for i, child := range children {
		if kids[i], err = gen.subtree(child); err != nil {
			return nil, err
		}
		cube = append(cube, kids[i])
	}

	results := make(types.Hypotheses, 0, min(gen.BeamSize, search.MAX_SIZE_HINT))
	expansions, err := search.Prune(cube, gen.BeamSize, func(at search.Indices) error {
		positions := orders[at[0]].Positions
		parts := make([]string, 0, len(positions))
		for _, pos := range positions {
			var text string
			if pos == ROOT_POSITION {
				text = own[at[1]].Text
			} else {
				text = kids[pos][at[2+pos]].Text
			}
			if len(text) > 0 {
				parts = append(parts, text)
			}
		}
		text := strings.Join(parts, " ")
		cost, err := gen.cost(text, false, false)
		if err != nil {
			return err
		}
		results = append(results, types.Hypothesis{Cost: cost, Tag: e.Dep, Text: text})
		return nil
	})
	gen.stats.Expansions += expansions
	if err != nil {
		return nil, err
	}
	results.Sort()
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{
			"node":       gen.graph.Node(e.Dep).String(),
			"children":   len(children),
			"orderings":  len(orders),
			"expansions": expansions,
			"best":       results[0].Text,
		}).Debug("Subtree")
	}
	return results, nil
}
