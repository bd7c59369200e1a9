package generator

import (
	"strings"

	"github.com/esmanning/emmAMR/nlp/amr"
)

// Kind is how a node gets lexicalized. It is decided once per node
// occurrence, before any candidate is generated.
type Kind int

const (
	// KindString is a quoted literal, realized verbatim
	KindString Kind = iota
	// KindConstant is an unquoted constant: polarity, months, ordinals, numbers
	KindConstant
	// KindReentrant is a variable already realized in this generation
	KindReentrant
	// KindNamedEntity is a variable with a :name child
	KindNamedEntity
	// KindRoleSuppressed is a person whose role predicate names it
	KindRoleSuppressed
	// KindSpecialMapped is a concept with a fixed set of function words
	KindSpecialMapped
	// KindReifiedAbstract is a structural -91/-entity/-quantity concept
	KindReifiedAbstract
	KindPredicateFrame
	KindPronoun
	KindGenericNoun
)

var kindNames = [...]string{
	"string", "constant", "reentrant", "named-entity", "role-suppressed",
	"special-mapped", "reified-abstract", "predicate-frame", "pronoun", "generic-noun",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// realized is true for kinds that consume the node's first mention.
func (k Kind) realized() bool {
	return k >= KindNamedEntity
}

func isReified(concept string) bool {
	for _, marker := range reifiedMarkers {
		if strings.Contains(concept, marker) {
			return true
		}
	}
	return false
}

func classify(g *amr.Graph, seen map[int]bool, e amr.Edge) Kind {
	node := g.Node(e.Dep)
	switch {
	case node.Constant && node.Quoted:
		return KindString
	case node.Constant:
		return KindConstant
	case seen[e.Dep]:
		return KindReentrant
	}

	edges := g.Edges(e.Dep)
	for _, child := range edges {
		if child.Rel == amr.REL_NAME {
			return KindNamedEntity
		}
	}
	if node.Concept == PERSON_CONCEPT {
		for _, child := range edges {
			if child.Rel == amr.REL_ARG0_OF && roleConcepts[g.Concept(child.Dep)] {
				return KindRoleSuppressed
			}
		}
	}
	if _, exists := functionWords[node.Concept]; exists {
		return KindSpecialMapped
	}
	if isReified(node.Concept) {
		return KindReifiedAbstract
	}
	if g.IsFrame(e.Dep) {
		return KindPredicateFrame
	}
	if _, exists := pronouns[nounBase(node.Concept)]; exists {
		return KindPronoun
	}
	return KindGenericNoun
}

// Classify returns the kind of an edge's dependent when it is first met.
func Classify(g *amr.Graph, e amr.Edge) Kind {
	return classify(g, map[int]bool{}, e)
}
