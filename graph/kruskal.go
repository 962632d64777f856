// SPDX-License-Identifier: MIT

package graph

import (
	"slices"

	"github.com/katalvlaran/mazegraph/disjoint"
)

// MinimumSpanningTree returns the edges of a minimum spanning tree, computed
// with Kruskal's algorithm.
//
// Steps:
//  1. Stable-sort edge positions by weight, so equal weights keep input order.
//  2. Create one union-find singleton per vertex.
//  3. Scan the sorted edges; whenever an edge's endpoints have different
//     representatives, union them and keep the edge.
//  4. Stop once |V|-1 edges are kept.
//
// Self-loops never pass step 3 (both endpoints share a representative), and of
// several parallel edges only the lightest (earliest on ties) can be kept.
//
// The result is ordered by selection (ascending weight). If the graph is
// disconnected the result is a minimum spanning forest; no error is reported.
// The returned slice is never nil.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func (g *Graph[V, E]) MinimumSpanningTree() []E {
	n := len(g.vertices)
	mst := make([]E, 0, max(n-1, 0))
	if n < 2 {
		return mst
	}

	order := g.sortedEdgeOrder()
	ds := g.singletons()

	for _, i := range order {
		e := g.edges[i]
		u, v := e.Vertex1(), e.Vertex2()
		ru, _ := ds.FindSet(u) // endpoints were validated in New
		rv, _ := ds.FindSet(v)
		if ru == rv {
			continue
		}
		_ = ds.Union(u, v) // distinct roots: cannot fail
		mst = append(mst, e)
		if len(mst) == n-1 {
			break
		}
	}

	return mst
}

// IsConnected reports whether every vertex is reachable from every other.
// Graphs with zero or one vertex are connected.
// Complexity: O(V + α(V)·E).
func (g *Graph[V, E]) IsConnected() bool {
	if len(g.vertices) < 2 {
		return true
	}
	ds := g.singletons()
	for _, e := range g.edges {
		_ = ds.Union(e.Vertex1(), e.Vertex2()) // ErrAlreadyUnioned is expected and harmless
		if ds.Count() == 1 {
			return true
		}
	}

	return ds.Count() == 1
}

// sortedEdgeOrder returns edge positions stably sorted by ascending weight.
func (g *Graph[V, E]) sortedEdgeOrder() []int {
	order := make([]int, len(g.edges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return Compare(g.edges[a], g.edges[b])
	})

	return order
}

// singletons returns a fresh DisjointSet holding every vertex alone.
func (g *Graph[V, E]) singletons() *disjoint.DisjointSet[V] {
	ds := disjoint.New[V](disjoint.WithCapacity(len(g.vertices)))
	for _, v := range g.vertices {
		_ = ds.MakeSet(v) // vertices are unique by construction
	}

	return ds
}
