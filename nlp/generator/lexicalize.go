package generator

import (
	"sort"
	"strings"

	"github.com/esmanning/emmAMR/nlp/amr"
	"github.com/esmanning/emmAMR/nlp/types"
)

func (gen *generation) constantRealizations(e amr.Edge) []string {
	value := gen.graph.Value(e.Dep)
	switch {
	case value == NEGATIVE_POLARITY:
		return negations
	case e.Rel == amr.REL_MONTH:
		if month, exists := months[value]; exists {
			return []string{month}
		}
	case e.Rel == amr.REL_VALUE && gen.graph.Concept(e.Head) == ORDINAL_CONCEPT:
		return []string{ordinal(value)}
	}
	return []string{value}
}

// entityName joins the :opN parts of a node's :name, in N order.
func (gen *generation) entityName(node int) string {
	var name amr.Edge
	for _, e := range gen.graph.Edges(node) {
		if e.Rel == amr.REL_NAME {
			name = e
			break
		}
	}
	type part struct {
		n    int
		text string
	}
	var parts []part
	for _, e := range gen.graph.Edges(name.Dep) {
		n, isOp := amr.OpIndex(e.Rel)
		if !isOp {
			continue
		}
		text := gen.graph.Value(e.Dep)
		if !gen.graph.IsConstant(e.Dep) {
			text = nounBase(gen.graph.Concept(e.Dep))
		}
		parts = append(parts, part{n, text})
	}
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].n < parts[j].n
	})
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = p.text
	}
	return strings.Join(strs, " ")
}

// lexicalize returns the scored realizations of the dependent of an edge on
// its own, wrapped in the function words of the edge's relation.
func (gen *generation) lexicalize(e amr.Edge) (types.Hypotheses, error) {
	var (
		kind     = classify(gen.graph, gen.seen, e)
		affix    = roleAffixes(e.Rel)
		concept  = gen.graph.Concept(e.Dep)
		concepts []string
	)
	if kind.realized() {
		gen.seen[e.Dep] = true
	}
	switch kind {
	case KindReentrant:
		return types.Hypotheses{{Cost: 0, Tag: e.Dep, Text: ""}}, nil
	case KindString:
		concepts = []string{gen.graph.Value(e.Dep)}
	case KindConstant:
		concepts = gen.constantRealizations(e)
	case KindNamedEntity:
		concepts = []string{gen.entityName(e.Dep)}
	case KindRoleSuppressed, KindReifiedAbstract:
		concepts = []string{""}
	case KindSpecialMapped:
		concepts = functionWords[concept]
	case KindPredicateFrame:
		concepts = frameRealizations(frameBase(concept))
	case KindPronoun:
		p := pronouns[nounBase(concept)]
		if e.Rel == amr.REL_POSS {
			// the possessive form already carries the genitive
			concepts, affix = []string{p.possessive}, affixes{}
		} else {
			concepts = p.forms
		}
	default:
		concepts = nounRealizations(nounBase(concept))
	}
	return gen.hypotheses(e.Dep, affix, concepts)
}

// hypotheses crosses concepts with affixes. The bare concept is only a
// candidate when the relation has no affixes.
func (gen *generation) hypotheses(tag int, affix affixes, concepts []string) (types.Hypotheses, error) {
	retval := make(types.Hypotheses, 0, len(concepts)*max(1, len(affix.prefixes)+len(affix.suffixes)))
	add := func(text string) error {
		cost, err := gen.cost(text, false, false)
		if err != nil {
			return err
		}
		retval = append(retval, types.Hypothesis{Cost: cost, Tag: tag, Text: text})
		return nil
	}
	for _, concept := range concepts {
		for _, prefix := range affix.prefixes {
			if err := add(prefix + concept); err != nil {
				return nil, err
			}
		}
		for _, suffix := range affix.suffixes {
			if err := add(concept + suffix); err != nil {
				return nil, err
			}
		}
		if affix.empty() {
			if err := add(concept); err != nil {
				return nil, err
			}
		}
	}
	retval.Sort()
	return retval, nil
}
