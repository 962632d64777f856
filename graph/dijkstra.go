// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/mazegraph/pqueue"
)

// ShortestPath returns the edges of a minimum-weight path from start to end,
// ordered from the edge leaving start to the edge entering end.
//
// Error Conditions:
//   - ErrVertexNotFound : start or end is not a vertex of g.
//   - ErrNoPathExists   : end is unreachable from start.
//
// If start == end the result is an empty, non-nil slice and no error, even
// before vertex membership is checked.
//
// Steps:
//  1. dist[v] = +∞ for all v, dist[start] = 0; start is pushed on the frontier.
//  2. Pop the frontier entry with the smallest accumulated distance; skip it if
//     its vertex is already settled. Settle it; if it is end, rebuild the path.
//  3. For every incident edge whose opposite endpoint is unsettled, compute
//     dist[u] + weight; if strictly better, record it with the edge that got
//     there and push the new entry (lazy decrease-key).
//
// Each edge is relaxed at most once: from whichever endpoint settles first.
// Equal distances leave the frontier in insertion order.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (g *Graph[V, E]) ShortestPath(start, end V) ([]E, error) {
	if start == end {
		return []E{}, nil
	}
	if err := g.checkEndpoints(start, end); err != nil {
		return nil, err
	}

	r := newPathRunner(g, start)
	if !r.run(end) {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPathExists, start, end)
	}

	return r.path(end), nil
}

// Distance returns the total weight of the shortest path from start to end.
// Errors are those of ShortestPath; Distance(v, v) is 0.
func (g *Graph[V, E]) Distance(start, end V) (float64, error) {
	path, err := g.ShortestPath(start, end)
	if err != nil {
		return 0, err
	}

	return TotalWeight(path), nil
}

// checkEndpoints verifies both query endpoints are vertices of g.
func (g *Graph[V, E]) checkEndpoints(start, end V) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: end %v", ErrVertexNotFound, end)
	}

	return nil
}

// noEdge marks a vertex not yet reached through any edge.
const noEdge = -1

// frontierItem is a tentative distance to vertex id, stamped with an insertion
// sequence number so equal distances pop in FIFO order.
type frontierItem[V comparable] struct {
	id   V
	dist float64
	seq  int
}

// pathRunner holds the mutable state of a single ShortestPath query.
type pathRunner[V comparable, E Edge[V]] struct {
	g       *Graph[V, E]                   // read-only
	start   V                              // query source
	dist    map[V]float64                  // best known distance from start
	via     map[V]int                      // edge position that reached v (noEdge for start)
	settled map[V]bool                     // distance is final
	pq      *pqueue.Queue[frontierItem[V]] // frontier keyed by accumulated distance
	seq     int                            // next insertion stamp
}

// newPathRunner initialises distances and seeds the frontier with start.
func newPathRunner[V comparable, E Edge[V]](g *Graph[V, E], start V) *pathRunner[V, E] {
	n := len(g.vertices)
	r := &pathRunner[V, E]{
		g:       g,
		start:   start,
		dist:    make(map[V]float64, n),
		via:     make(map[V]int, n),
		settled: make(map[V]bool, n),
		pq: pqueue.New(func(a, b frontierItem[V]) bool {
			if a.dist != b.dist {
				return a.dist < b.dist
			}
			return a.seq < b.seq
		}),
	}
	for _, v := range g.vertices {
		r.dist[v] = math.Inf(1)
		r.via[v] = noEdge
	}
	r.dist[start] = 0
	r.push(start, 0)

	return r
}

// push enqueues a tentative distance for v.
func (r *pathRunner[V, E]) push(v V, d float64) {
	r.pq.Insert(frontierItem[V]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// run drains the frontier until end settles (true) or nothing is left (false).
func (r *pathRunner[V, E]) run(end V) bool {
	for !r.pq.IsEmpty() {
		item, _ := r.pq.RemoveMin() // non-empty checked above
		u := item.id
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true
		if u == end {
			return true
		}
		r.relax(u)
	}

	return false
}

// relax tries to improve every unsettled neighbour of the settled vertex u.
func (r *pathRunner[V, E]) relax(u V) {
	for _, i := range r.g.adjacency[u] {
		v := r.g.opposite(i, u)
		if r.settled[v] {
			continue // includes self-loops
		}
		cand := r.dist[u] + r.g.edges[i].Weight()
		if cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.via[v] = i
		r.push(v, cand)
	}
}

// path walks the via links back from end and returns the edges start → end.
func (r *pathRunner[V, E]) path(end V) []E {
	var out []E
	for v := end; v != r.start; {
		i := r.via[v]
		out = append(out, r.g.edges[i])
		v = r.g.opposite(i, v)
	}
	slices.Reverse(out)

	return out
}
