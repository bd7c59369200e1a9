// Package generator realizes AMR graphs as English sentences.
//
// Every node gets a k-best list of realizations, built bottom-up: a leaf
// takes its own lexicalizations, an internal node combines candidate
// orderings of its children, its own lexicalizations and its children's
// k-best lists with cube pruning. The root's list is rescored as complete
// sentences and the best one wins.
package generator

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/lm"
	"github.com/esmanning/emmAMR/nlp/types"
	"github.com/esmanning/emmAMR/util"
)

const (
	DEFAULT_BEAM_SIZE = 100

	SENTENCE_END = "."
)

// Generator holds the read-only configuration shared by all generations. It
// is safe for concurrent use as long as its Oracle is.
type Generator struct {
	Oracle   lm.Oracle
	Orders   *OrderScorer
	BeamSize int
}

// Stats counts the work done by one generation.
type Stats struct {
	Nodes       int
	Expansions  int
	OracleCalls int
}

func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Expansions += other.Expansions
	s.OracleCalls += other.OracleCalls
}

type Result struct {
	Sentence string
	Cost     float64
	// Candidates are the root's realizations rescored as full sentences,
	// in k-best order
	Candidates types.Hypotheses
	Stats      Stats
}

// generation is the state of one Generate call. The seen set records the
// nodes already realized so that reentrant nodes are spelled out only at
// their first occurrence.
type generation struct {
	*Generator
	graph *amr.Graph
	seen  map[int]bool
	stats Stats
}

func (gen *Generator) newGeneration(g *amr.Graph) *generation {
	return &generation{
		Generator: gen,
		graph:     g,
		seen:      make(map[int]bool, g.Len()),
	}
}

func (gen *generation) cost(text string, bos, eos bool) (float64, error) {
	gen.stats.OracleCalls++
	return lm.Cost(gen.Oracle, text, bos, eos)
}

func (gen *Generator) validate() error {
	if gen.Oracle == nil {
		return errors.New("generator: no oracle")
	}
	if gen.BeamSize < 1 {
		return errors.Errorf("generator: beam size %d < 1", gen.BeamSize)
	}
	return nil
}

// Generate realizes a graph as a single sentence.
func (gen *Generator) Generate(g *amr.Graph) (*Result, error) {
	if err := gen.validate(); err != nil {
		return nil, err
	}
	root, err := g.Root()
	if err != nil {
		return nil, err
	}
	state := gen.newGeneration(g)
	candidates, err := state.subtree(root)
	if err != nil {
		return nil, err
	}

	rescored := make(types.Hypotheses, len(candidates))
	for i, candidate := range candidates {
		text := SENTENCE_END
		if len(candidate.Text) > 0 {
			text = candidate.Text + " " + SENTENCE_END
		}
		cost, err := state.cost(text, true, true)
		if err != nil {
			return nil, err
		}
		rescored[i] = types.Hypothesis{Cost: cost, Tag: candidate.Tag, Text: text}
	}
	best, ok := rescored.Best()
	if !ok {
		return nil, errors.New("generator: no candidates for the root")
	}
	log.WithFields(log.Fields{
		"candidates":  len(rescored),
		"cost":        best.Cost,
		"nodes":       state.stats.Nodes,
		"expansions":  state.stats.Expansions,
		"oracleCalls": state.stats.OracleCalls,
	}).Debug("Generated")
	return &Result{
		Sentence:   util.UpperFirst(best.Text),
		Cost:       best.Cost,
		Candidates: rescored,
		Stats:      state.stats,
	}, nil
}

// Lexicalize returns the realizations of an edge's dependent on its own, as
// seen at the start of a generation.
func (gen *Generator) Lexicalize(g *amr.Graph, e amr.Edge) (types.Hypotheses, error) {
	if err := gen.validate(); err != nil {
		return nil, err
	}
	return gen.newGeneration(g).lexicalize(e)
}
