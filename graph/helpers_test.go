// SPDX-License-Identifier: MIT

package graph_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mazegraph/graph"
)

// E is the edge type used throughout the tests.
type E = graph.WeightedEdge[string]

// triangle returns A—B(1), B—C(2), A—C(5).
func triangle() ([]string, []E) {
	return []string{"A", "B", "C"}, []E{
		graph.NewEdge("A", "B", 1),
		graph.NewEdge("B", "C", 2),
		graph.NewEdge("A", "C", 5),
	}
}

// randomGraph builds n int vertices and m random edges with integer weights in
// [0, maxW]. Self-loops and parallel edges are allowed. When connected is true a
// random spanning chain is added first.
func randomGraph(r *rand.Rand, n, m, maxW int, connected bool) ([]int, []graph.WeightedEdge[int]) {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	var es []graph.WeightedEdge[int]
	if connected {
		perm := r.Perm(n)
		for i := 1; i < n; i++ {
			es = append(es, graph.NewEdge(perm[i-1], perm[i], float64(r.Intn(maxW+1))))
		}
	}
	for len(es) < m {
		es = append(es, graph.NewEdge(r.Intn(n), r.Intn(n), float64(r.Intn(maxW+1))))
	}

	return vs, es
}

// floydWarshall returns all-pairs shortest distances over vertex ids 0..n-1.
func floydWarshall(n int, es []graph.WeightedEdge[int]) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range es {
		u, v := e.From, e.To
		if e.Cost < d[u][v] {
			d[u][v], d[v][u] = e.Cost, e.Cost
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// bruteForceMST enumerates all (n-1)-edge subsets and returns the minimum total
// weight of those forming a spanning tree. Only for tiny graphs.
func bruteForceMST(n int, es []graph.WeightedEdge[int]) float64 {
	best := math.Inf(1)
	m := len(es)
	for mask := 0; mask < 1<<m; mask++ {
		if popcount(mask) != n-1 {
			continue
		}
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			if parent[x] != x {
				parent[x] = find(parent[x])
			}
			return parent[x]
		}
		ok, w := true, 0.0
		for i := 0; i < m; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			a, b := find(es[i].From), find(es[i].To)
			if a == b {
				ok = false
				break
			}
			parent[a] = b
			w += es[i].Cost
		}
		if ok && w < best {
			best = w
		}
	}

	return best
}

func popcount(x int) int {
	c := 0
	for ; x != 0; x &= x - 1 {
		c++
	}
	return c
}
