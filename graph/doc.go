// SPDX-License-Identifier: MIT

// Package graph provides an immutable, undirected, weighted graph over any
// comparable vertex type and any edge type satisfying the Edge contract, with
// two queries: Kruskal's minimum spanning tree and Dijkstra's shortest path.
//
// What & Why
//
//   - Vertices are opaque caller values (V comparable); the graph stores only
//     their identity.
//   - Edges are caller values (E Edge[V]) exposing two endpoints and a
//     non-negative weight. Self-loops and parallel edges are allowed; edges are
//     tracked by their position in the input slice, so even value-identical
//     duplicates stay distinct.
//   - The graph is built once by New (or FromSets) and never mutated afterwards.
//
// Construction
//
//	New validates every edge before anything is indexed: weight must be ≥ 0
//	(and not NaN) and both endpoints must appear in the vertex slice. Any
//	violation returns ErrInvalidEdge and no graph.
//
// Algorithms Provided
//
//   - MinimumSpanningTree() []E
//     Kruskal: stable sort by weight (input order breaks ties), one union-find
//     singleton per vertex, keep every edge joining two different groups.
//     Time O(E log E + α(V)·E), memory O(V + E). On a disconnected graph the
//     result is a spanning forest.
//
//   - ShortestPath(start, end V) ([]E, error)
//     Dijkstra with a binary-heap frontier keyed by accumulated distance
//     (ties broken by insertion order) and lazy decrease-key.
//     Time O((V + E) log V), memory O(V + E). The path is ordered from the edge
//     leaving start to the edge entering end.
//
// Errors (sentinel):
//
//   - ErrInvalidEdge     negative/NaN weight or dangling endpoint at construction.
//   - ErrVertexNotFound  query references a vertex absent from the graph.
//   - ErrNoPathExists    the frontier empties before end is reached.
//
// Concurrency:
//
//	Every query allocates its own union-find, heap and bookkeeping maps, and
//	the graph is never written after New returns, so concurrent queries on one
//	*Graph are safe without locks.
package graph
