// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
)

// Graph is an immutable, undirected, weighted graph.
//
// vertices and edges keep the caller's order; adjacency maps every vertex to
// the positions (indices into edges) of its incident edges.
type Graph[V comparable, E Edge[V]] struct {
	vertices  []V
	edges     []E
	adjacency map[V][]int
}

// New builds a Graph from a vertex slice and an edge slice.
//
// Error Conditions:
//   - ErrInvalidEdge : an edge has a negative, infinite or NaN weight, or an endpoint
//     that is not in vertices. Validation runs over every edge before the
//     adjacency index is built, so no partially built graph is ever returned.
//
// Duplicate vertices are collapsed (first occurrence keeps its position).
// A self-loop appears once in its vertex's incidence list; parallel edges all
// appear.
//
// Complexity: O(V + E) time and memory.
func New[V comparable, E Edge[V]](vertices []V, edges []E) (*Graph[V, E], error) {
	// 1) Collect the vertex set, dropping duplicates.
	known := make(map[V]struct{}, len(vertices))
	uniq := make([]V, 0, len(vertices))
	for _, v := range vertices {
		if _, ok := known[v]; ok {
			continue
		}
		known[v] = struct{}{}
		uniq = append(uniq, v)
	}

	// 2) Validate every edge before indexing anything.
	for i, e := range edges {
		if err := validateEdge(known, i, e); err != nil {
			return nil, err
		}
	}

	// 3) Build the incidence index.
	adjacency := make(map[V][]int, len(uniq))
	for _, v := range uniq {
		adjacency[v] = nil
	}
	for i, e := range edges {
		u, v := e.Vertex1(), e.Vertex2()
		adjacency[u] = append(adjacency[u], i)
		if u != v {
			adjacency[v] = append(adjacency[v], i)
		}
	}

	own := make([]E, len(edges))
	copy(own, edges)

	return &Graph[V, E]{
		vertices:  uniq,
		edges:     own,
		adjacency: adjacency,
	}, nil
}

// FromSets builds a Graph from unordered vertex and edge collections.
// Iteration order of the maps becomes the graph's order, which only matters
// for tie-breaking among equal-weight edges in MinimumSpanningTree; callers
// that need reproducible results should use New with ordered slices.
func FromSets[V comparable, E interface {
	comparable
	Edge[V]
}](vertices map[V]struct{}, edges map[E]struct{}) (*Graph[V, E], error) {
	vs := make([]V, 0, len(vertices))
	for v := range vertices {
		vs = append(vs, v)
	}
	es := make([]E, 0, len(edges))
	for e := range edges {
		es = append(es, e)
	}

	return New[V, E](vs, es)
}

// validateEdge checks that the weight of edge i is finite and non-negative
// and that both endpoints are vertices.
func validateEdge[V comparable, E Edge[V]](known map[V]struct{}, i int, e E) error {
	w := e.Weight()
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: edge #%d %v–%v has weight %g", ErrInvalidEdge, i, e.Vertex1(), e.Vertex2(), w)
	}
	if _, ok := known[e.Vertex1()]; !ok {
		return fmt.Errorf("%w: edge #%d endpoint %v is not a vertex", ErrInvalidEdge, i, e.Vertex1())
	}
	if _, ok := known[e.Vertex2()]; !ok {
		return fmt.Errorf("%w: edge #%d endpoint %v is not a vertex", ErrInvalidEdge, i, e.Vertex2())
	}

	return nil
}

// NumVertices returns the number of distinct vertices. O(1).
func (g *Graph[V, E]) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges, counting parallels and loops. O(1).
func (g *Graph[V, E]) NumEdges() int { return len(g.edges) }

// HasVertex reports whether v is a vertex of g.
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Vertices returns a copy of the vertex list in construction order.
func (g *Graph[V, E]) Vertices() []V {
	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edge list in construction order.
func (g *Graph[V, E]) Edges() []E {
	out := make([]E, len(g.edges))
	copy(out, g.edges)

	return out
}

// IncidentEdges returns the edges touching v, in construction order.
// Returns ErrVertexNotFound if v is not in g.
func (g *Graph[V, E]) IncidentEdges(v V) ([]E, error) {
	idx, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]E, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.edges[i])
	}

	return out, nil
}

// opposite returns the endpoint of edge i that is not v (v itself for loops).
func (g *Graph[V, E]) opposite(i int, v V) V {
	e := g.edges[i]
	if e.Vertex1() == v {
		return e.Vertex2()
	}

	return e.Vertex1()
}
