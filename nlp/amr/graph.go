// Package amr holds a parsed Abstract Meaning Representation graph.
//
// Nodes live in an arena and are addressed by stable integer ids, so a
// reentrant node reached over several edges is simply the same id appearing
// more than once. The graph is never mutated once it has been handed to the
// generator.
package amr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/esmanning/emmAMR/alg/graph"
	"github.com/esmanning/emmAMR/util"
)

const (
	// TOP is the head of the synthetic root edge
	TOP = -1

	REL_TOP      = ":top"
	REL_INSTANCE = ":instance-of"
	REL_NAME     = ":name"
	REL_WIKI     = ":wiki"
	REL_MODE     = ":mode"
	REL_POSS     = ":poss"
	REL_MONTH    = ":month"
	REL_VALUE    = ":value"
	REL_ARG0_OF  = ":ARG0-of"
	REL_OP       = ":op"
	REL_POLARITY = ":polarity"
)

var ErrMissingRoot = errors.New("amr: graph has no root")

var frameRegexp = regexp.MustCompile(`^\S+-\d+$`)

// Node is either a variable bound to a concept or a constant.
type Node struct {
	ID       int
	Var      string
	Concept  string
	Value    string
	Constant bool
	// Quoted constants are string literals, Value holds them unquoted
	Quoted bool
}

func (n Node) String() string {
	switch {
	case n.Constant && n.Quoted:
		return strconv.Quote(n.Value)
	case n.Constant:
		return n.Value
	default:
		return fmt.Sprintf("%s/%s", n.Var, n.Concept)
	}
}

// Edge is a (head, relation, dependent) triple.
type Edge struct {
	Head int
	Rel  string
	Dep  int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d %s %d)", e.Head, e.Rel, e.Dep)
}

// OpIndex returns n for an :op<n> relation.
func OpIndex(rel string) (int, bool) {
	if !strings.HasPrefix(rel, REL_OP) {
		return 0, false
	}
	n, err := strconv.Atoi(rel[len(REL_OP):])
	if err != nil {
		return 0, false
	}
	return n, true
}

type Graph struct {
	arena *graph.Arena
	nodes []Node
	vars  *util.EnumSet[string]
	varID []int
	root  int
}

func New() *Graph {
	return &Graph{
		arena: graph.NewArena(16, 16),
		vars:  util.NewEnumSet[string](16),
		root:  TOP,
	}
}

func (g *Graph) addNode(n Node) int {
	n.ID = g.arena.AddVertex()
	g.nodes = append(g.nodes, n)
	return n.ID
}

// Variable returns the node of a variable, creating it on first mention.
// Variables may be referenced before their concept is known.
func (g *Graph) Variable(name string) int {
	enum, isNew := g.vars.Add(name)
	if isNew {
		g.varID = append(g.varID, g.addNode(Node{Var: name}))
	}
	return g.varID[enum]
}

// Lookup returns the node of an already mentioned variable.
func (g *Graph) Lookup(name string) (int, bool) {
	enum, exists := g.vars.IndexOf(name)
	if !exists {
		return 0, false
	}
	return g.varID[enum], true
}

func (g *Graph) SetConcept(id int, concept string) error {
	n := &g.nodes[id]
	if n.Constant {
		return errors.Errorf("amr: constant %v cannot bind a concept", n)
	}
	if n.Concept != "" && n.Concept != concept {
		return errors.Errorf("amr: variable %s bound to both %s and %s", n.Var, n.Concept, concept)
	}
	n.Concept = concept
	return nil
}

func (g *Graph) AddConstant(value string, quoted bool) int {
	return g.addNode(Node{Value: value, Constant: true, Quoted: quoted})
}

func (g *Graph) AddEdge(head int, rel string, dep int) {
	g.arena.AddEdge(head, rel, dep)
}

func (g *Graph) SetRoot(id int) {
	g.root = id
}

// Root returns the synthetic (TOP, :top, root) edge.
func (g *Graph) Root() (Edge, error) {
	if g.root == TOP {
		return Edge{}, ErrMissingRoot
	}
	return Edge{TOP, REL_TOP, g.root}, nil
}

// Edges returns the edges headed by a node in the order they were written.
func (g *Graph) Edges(head int) []Edge {
	if head < 0 || head >= len(g.nodes) {
		return nil
	}
	out := g.arena.Outgoing(head)
	retval := make([]Edge, len(out))
	for i, edgeId := range out {
		e := g.arena.GetLabeledEdge(edgeId)
		retval[i] = Edge{e.From(), e.Label(), e.To()}
	}
	return retval
}

func (g *Graph) Node(id int) Node {
	return g.nodes[id]
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return g.arena.NumberOfEdges()
}

func (g *Graph) IsConstant(id int) bool {
	return g.nodes[id].Constant
}

// IsFrame is true for concepts carrying a numbered sense, e.g. want-01.
func (g *Graph) IsFrame(id int) bool {
	n := g.nodes[id]
	return !n.Constant && frameRegexp.MatchString(n.Concept)
}

// Concept returns the concept of a variable; TOP and constants have none.
func (g *Graph) Concept(id int) string {
	if id < 0 || id >= len(g.nodes) {
		return ""
	}
	return g.nodes[id].Concept
}

func (g *Graph) Value(id int) string {
	return g.nodes[id].Value
}

// Reentrancies lists the nodes reachable over more than one edge.
func (g *Graph) Reentrancies() []int {
	return graph.Reentrancies(g.arena)
}

// Reachable lists the nodes reachable from the root.
func (g *Graph) Reachable() []int {
	if g.root == TOP {
		return nil
	}
	return graph.Reachable(g.arena, g.root)
}

// Validate checks that a root is set and that every variable has a concept.
func (g *Graph) Validate() error {
	if g.root == TOP {
		return ErrMissingRoot
	}
	for _, n := range g.nodes {
		if !n.Constant && n.Concept == "" {
			return errors.Errorf("amr: variable %s has no concept", n.Var)
		}
	}
	return nil
}
