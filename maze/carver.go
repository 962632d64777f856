// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegraph/graph"
)

// Carver chooses which walls of a maze to remove.
type Carver interface {
	WallsToRemove(m *Maze) ([]Wall, error)
}

// defaultSeed is used when no seed or RNG is configured, or when the seed is 0.
const defaultSeed int64 = 1

// WeightFn draws a wall weight from rng. It must return values ≥ 0.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn draws a uniform non-negative 31-bit integer.
func DefaultWeightFn(rng *rand.Rand) float64 {
	return float64(rng.Int31())
}

// carverConfig collects CarverOption settings.
type carverConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// CarverOption configures a KruskalCarver.
type CarverOption func(*carverConfig)

// WithSeed seeds the carver's RNG; seed 0 selects the default seed.
func WithSeed(seed int64) CarverOption {
	return func(c *carverConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the carver draw from r. Panics on nil.
func WithRand(r *rand.Rand) CarverOption {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *carverConfig) { c.rng = r }
}

// WithWeightFn overrides how wall weights are drawn. Panics on nil.
// Negative weights make WallsToRemove fail with graph.ErrInvalidEdge.
func WithWeightFn(fn WeightFn) CarverOption {
	if fn == nil {
		panic("maze: WithWeightFn(nil)")
	}
	return func(c *carverConfig) { c.weightFn = fn }
}

// KruskalCarver carves a maze by removing the walls of a minimum spanning tree
// over randomly weighted walls. It owns a *rand.Rand and is not goroutine-safe.
type KruskalCarver struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// NewKruskalCarver returns a carver configured by opts.
// Default: seed 1, DefaultWeightFn.
func NewKruskalCarver(opts ...CarverOption) *KruskalCarver {
	cfg := carverConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return &KruskalCarver{rng: cfg.rng, weightFn: cfg.weightFn}
}

// WallsToRemove returns the walls whose removal connects every room with a
// spanning tree.
//
// Steps:
//  1. Copy every wall with an independently drawn weight; m is not touched.
//  2. Build a graph over m.Rooms() and the weighted copies.
//  3. Take the minimum spanning tree and reset each chosen wall's distance.
//
// Error Conditions:
//   - graph.ErrInvalidEdge : a wall references a foreign room, or the
//     WeightFn produced a negative weight.
//   - ErrDisconnected      : the walls do not link every room.
func (c *KruskalCarver) WallsToRemove(m *Maze) ([]Wall, error) {
	walls := m.Walls()
	weighted := make([]Wall, len(walls))
	for i, w := range walls {
		weighted[i] = w.WithDistance(c.weightFn(c.rng))
	}

	g, err := graph.New(m.Rooms(), weighted)
	if err != nil {
		return nil, fmt.Errorf("maze: carve: %w", err)
	}
	if !g.IsConnected() {
		return nil, fmt.Errorf("%w: %d rooms, %d walls", ErrDisconnected, g.NumVertices(), g.NumEdges())
	}

	mst := g.MinimumSpanningTree()
	out := make([]Wall, len(mst))
	for i, w := range mst {
		out[i] = w.ResetDistance()
	}

	return out, nil
}

// Carve returns a copy of m with the walls chosen by c removed.
func Carve(m *Maze, c Carver) (*Maze, error) {
	remove, err := c.WallsToRemove(m)
	if err != nil {
		return nil, err
	}

	return m.RemoveWalls(remove)
}
