// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/graph"
)

// Solve returns the rooms on the shortest route from one room to another,
// moving only through passages, both ends included. Passage weights are the
// walls' distances (center to center by default).
//
// Error Conditions:
//   - ErrUnknownRoom        : from or to is not a room of m.
//   - graph.ErrNoPathExists : the passages do not link the two rooms.
func Solve(m *Maze, from, to Room) ([]Room, error) {
	g, err := graph.New(m.Rooms(), m.Passages())
	if err != nil {
		return nil, fmt.Errorf("maze: solve: %w", err)
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: route %d → %d", ErrUnknownRoom, from.ID, to.ID)
	}

	path, err := g.ShortestPath(from, to)
	if err != nil {
		return nil, fmt.Errorf("maze: solve: %w", err)
	}

	route := make([]Room, 0, len(path)+1)
	route = append(route, from)
	at := from
	for _, w := range path {
		if w.room1 == at {
			at = w.room2
		} else {
			at = w.room1
		}
		route = append(route, at)
	}

	return route, nil
}
