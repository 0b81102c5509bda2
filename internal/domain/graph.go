package domain

import (
	"fmt"
	"slices"
)

// Edge is a directed transition between two statuses of one kind. Paired
// edges are only applied together with a transition on a related entity.
type Edge struct {
	From   Status
	To     Status
	Paired bool
}

// Step declares a single-entity edge.
func Step(from, to Status) Edge {
	return Edge{From: from, To: to}
}

// Paired declares an edge reachable only through a paired transition.
func Paired(from, to Status) Edge {
	return Edge{From: from, To: to, Paired: true}
}

type edgeKey struct {
	from Status
	to   Status
}

// Graph is the fixed transition graph of one entity kind. Graphs are built
// once at package initialization and never mutated afterwards.
type Graph struct {
	kind     Kind
	initial  Status
	statuses []Status
	edges    map[edgeKey]Edge
}

// NewGraph builds a graph. It panics on a malformed definition (unknown
// status, self-transition, duplicate edge) because graphs are static
// program data.
func NewGraph(kind Kind, initial Status, statuses []Status, edges ...Edge) *Graph {
	g := &Graph{
		kind:     kind,
		initial:  initial,
		statuses: slices.Clone(statuses),
		edges:    make(map[edgeKey]Edge, len(edges)),
	}
	if !g.Has(initial) {
		panic(fmt.Sprintf("domain: %s graph: initial status %q not declared", kind, initial))
	}
	for _, e := range edges {
		switch {
		case !g.Has(e.From) || !g.Has(e.To):
			panic(fmt.Sprintf("domain: %s graph: edge %s->%s uses undeclared status", kind, e.From, e.To))
		case e.From == e.To:
			panic(fmt.Sprintf("domain: %s graph: self-transition on %s", kind, e.From))
		}
		k := edgeKey{from: e.From, to: e.To}
		if _, dup := g.edges[k]; dup {
			panic(fmt.Sprintf("domain: %s graph: duplicate edge %s->%s", kind, e.From, e.To))
		}
		g.edges[k] = e
	}
	return g
}

// Kind returns the entity kind this graph governs.
func (g *Graph) Kind() Kind { return g.kind }

// Initial returns the status assigned on creation.
func (g *Graph) Initial() Status { return g.initial }

// Statuses returns the declared statuses in declaration order.
func (g *Graph) Statuses() []Status { return slices.Clone(g.statuses) }

// Has reports whether s is a status of this kind.
func (g *Graph) Has(s Status) bool {
	return slices.Contains(g.statuses, s)
}

// Edge returns the edge from -> to, if declared.
func (g *Graph) Edge(from, to Status) (Edge, bool) {
	e, ok := g.edges[edgeKey{from: from, to: to}]
	return e, ok
}

// Allows reports whether the edge from -> to exists.
func (g *Graph) Allows(from, to Status) bool {
	_, ok := g.Edge(from, to)
	return ok
}

// IsTerminal reports whether s has no outgoing edges.
func (g *Graph) IsTerminal(s Status) bool {
	for k := range g.edges {
		if k.from == s {
			return false
		}
	}
	return true
}

// Check validates the move from -> to. It depends only on the two statuses.
// It returns an error wrapping ErrInvalidTransition when to is not a status
// of this kind or the edge is absent.
func (g *Graph) Check(from, to Status) error {
	if !g.Has(to) {
		return fmt.Errorf("%w: %q is not a %s status", ErrInvalidTransition, to, g.kind)
	}
	if !g.Allows(from, to) {
		return fmt.Errorf("%w: %s cannot move from %s to %s", ErrInvalidTransition, g.kind, from, to)
	}
	return nil
}
