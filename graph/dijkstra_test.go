// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/graph"
)

// TestShortestPath_Triangle covers A→C = [(A,B,1), (B,C,2)], distance 3.
func TestShortestPath_Triangle(t *testing.T) {
	vs, es := triangle()
	g, err := graph.New(vs, es)
	require.NoError(t, err)

	path, err := g.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []E{graph.NewEdge("A", "B", 1), graph.NewEdge("B", "C", 2)}, path)

	d, err := g.Distance("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	// Reverse direction walks the same edges backwards.
	back, err := g.ShortestPath("C", "A")
	require.NoError(t, err)
	assert.Equal(t, []E{graph.NewEdge("B", "C", 2), graph.NewEdge("A", "B", 1)}, back)
}

// TestShortestPath_SameVertex returns an empty, non-nil path.
func TestShortestPath_SameVertex(t *testing.T) {
	vs, es := triangle()
	g, err := graph.New(vs, es)
	require.NoError(t, err)

	path, err := g.ShortestPath("B", "B")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

// TestShortestPath_Errors covers unknown endpoints and unreachable targets.
func TestShortestPath_Errors(t *testing.T) {
	es := []E{graph.NewEdge("A", "B", 1), graph.NewEdge("C", "D", 1), graph.NewEdge("A", "A", 0)}
	g, err := graph.New([]string{"A", "B", "C", "D"}, es)
	require.NoError(t, err)

	_, err = g.ShortestPath("A", "D")
	assert.ErrorIs(t, err, graph.ErrNoPathExists)
	_, err = g.Distance("D", "B")
	assert.ErrorIs(t, err, graph.ErrNoPathExists)

	_, err = g.ShortestPath("Q", "A")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.ShortestPath("A", "Q")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	// A failed query leaves the graph fully usable.
	path, err := g.ShortestPath("B", "A")
	require.NoError(t, err)
	assert.Len(t, path, 1)
}

// TestShortestPath_ChainVersusDirect checks that a chain of light edges beats a
// heavier direct edge, and that a light enough direct edge beats the chain.
//
//	S —1— A —1— B —1— C —1— T
//	S —————————5———————————— T
func TestShortestPath_ChainVersusDirect(t *testing.T) {
	vs := []string{"S", "T", "A", "B", "C"}
	es := []E{
		graph.NewEdge("S", "A", 1),
		graph.NewEdge("A", "B", 1),
		graph.NewEdge("B", "C", 1),
		graph.NewEdge("C", "T", 1),
		graph.NewEdge("S", "T", 5),
	}
	g, err := graph.New(vs, es)
	require.NoError(t, err)

	d, err := g.Distance("S", "T")
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	es[4] = graph.NewEdge("S", "T", 3)
	g, err = graph.New(vs, es)
	require.NoError(t, err)
	path, err := g.ShortestPath("S", "T")
	require.NoError(t, err)
	assert.Equal(t, []E{graph.NewEdge("S", "T", 3)}, path)
}

// TestShortestPath_ParallelEdges picks the lighter of two parallel edges.
// TestShortestPath_HugeWeight routes through the largest finite weight.
func TestShortestPath_HugeWeight(t *testing.T) {
	g, err := graph.New([]string{"A", "B"}, []E{graph.NewEdge("A", "B", math.MaxFloat64)})
	require.NoError(t, err)
	assert.True(t, g.IsConnected())

	path, err := g.ShortestPath("A", "B")
	require.NoError(t, err)
	assert.Equal(t, []E{graph.NewEdge("A", "B", math.MaxFloat64)}, path)
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	es := []E{graph.NewEdge("A", "B", 4), graph.NewEdge("B", "A", 2), graph.NewEdge("A", "B", 3)}
	g, err := graph.New([]string{"A", "B"}, es)
	require.NoError(t, err)
	path, err := g.ShortestPath("A", "B")
	require.NoError(t, err)
	assert.Equal(t, []E{graph.NewEdge("B", "A", 2)}, path)
}

// TestShortestPath_RandomCrossCheck compares path weights with Floyd–Warshall on
// random graphs with widely varying weights, and validates path continuity.
func TestShortestPath_RandomCrossCheck(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		n := 2 + r.Intn(25)
		m := r.Intn(3 * n)
		connected := round%3 != 0
		t.Run(fmt.Sprintf("n%d_m%d", n, m), func(t *testing.T) {
			vs, es := randomGraph(r, n, m, 10000, connected)
			g, err := graph.New(vs, es)
			require.NoError(t, err)
			dist := floydWarshall(n, es)

			for k := 0; k < 10; k++ {
				s, e := r.Intn(n), r.Intn(n)
				path, err := g.ShortestPath(s, e)
				if math.IsInf(dist[s][e], 1) {
					require.ErrorIs(t, err, graph.ErrNoPathExists)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, dist[s][e], graph.TotalWeight(path))

				// The path must be a walk s → e.
				at := s
				for _, edge := range path {
					switch at {
					case edge.From:
						at = edge.To
					case edge.To:
						at = edge.From
					default:
						t.Fatalf("edge %v does not continue from %d", edge, at)
					}
				}
				assert.Equal(t, e, at)
			}
		})
	}
}
