// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by graph construction and queries.
var (
	// ErrInvalidEdge indicates an edge with a negative (or NaN) weight, or an
	// endpoint missing from the supplied vertex collection.
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrVertexNotFound indicates a query referenced a vertex not in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNoPathExists indicates that no path connects the requested vertices.
	ErrNoPathExists = errors.New("graph: no path exists")
)

// Edge is the capability contract every edge type must satisfy: two incident
// vertices and a non-negative weight. The order of Vertex1 and Vertex2 carries
// no meaning; edges are undirected.
type Edge[V comparable] interface {
	Vertex1() V
	Vertex2() V
	Weight() float64
}

// Weighted is the weight half of the Edge contract; helpers that never look at
// endpoints accept it so the vertex type need not be spelled out.
type Weighted interface {
	Weight() float64
}

// Compare orders two edges by weight: negative if a is lighter than b, zero if
// equal, positive otherwise. Kruskal sorts with it stably.
func Compare[E Weighted](a, b E) int {
	return cmp.Compare(a.Weight(), b.Weight())
}

// WeightedEdge is a ready-made Edge for callers without their own edge type.
type WeightedEdge[V comparable] struct {
	From V
	To   V
	Cost float64
}

// NewEdge returns a WeightedEdge from → to with the given cost.
func NewEdge[V comparable](from, to V, cost float64) WeightedEdge[V] {
	return WeightedEdge[V]{From: from, To: to, Cost: cost}
}

// Vertex1 returns the first endpoint.
func (e WeightedEdge[V]) Vertex1() V { return e.From }

// Vertex2 returns the second endpoint.
func (e WeightedEdge[V]) Vertex2() V { return e.To }

// Weight returns the edge cost.
func (e WeightedEdge[V]) Weight() float64 { return e.Cost }

// TotalWeight sums the weights of edges.
func TotalWeight[E Weighted](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}
