// SPDX-License-Identifier: MIT

package maze

import "fmt"

// Maze is an immutable set of rooms, the walls still standing between them,
// and the passages opened so far. Grid mazes also remember their dimensions.
type Maze struct {
	rooms    []Room
	walls    []Wall
	passages []Wall

	width, height int // zero unless built by NewGrid
}

// NewMaze returns a maze over the given rooms and walls with no passages.
// The slices are copied.
func NewMaze(rooms []Room, walls []Wall) *Maze {
	return &Maze{
		rooms: append([]Room(nil), rooms...),
		walls: append([]Wall(nil), walls...),
	}
}

// Rooms returns a copy of the rooms.
func (m *Maze) Rooms() []Room { return append([]Room(nil), m.rooms...) }

// Walls returns a copy of the walls still standing.
func (m *Maze) Walls() []Wall { return append([]Wall(nil), m.walls...) }

// Passages returns a copy of the walls removed so far.
func (m *Maze) Passages() []Wall { return append([]Wall(nil), m.passages...) }

// Dims returns the grid width and height, or zeros for non-grid mazes.
func (m *Maze) Dims() (width, height int) { return m.width, m.height }

// RemoveWalls returns a new maze where every wall in remove has become a
// passage. Walls are matched by rooms and dividing line, ignoring weight, so
// weighted copies returned by a Carver match the originals.
// Returns ErrUnknownWall if a wall is not standing in m. m is never modified.
func (m *Maze) RemoveWalls(remove []Wall) (*Maze, error) {
	drop := make(map[wallKey]struct{}, len(remove))
	standing := make(map[wallKey]struct{}, len(m.walls))
	for _, w := range m.walls {
		standing[w.key()] = struct{}{}
	}
	for _, w := range remove {
		k := w.key()
		if _, ok := standing[k]; !ok {
			return nil, fmt.Errorf("%w: between rooms %d and %d", ErrUnknownWall, w.room1.ID, w.room2.ID)
		}
		drop[k] = struct{}{}
	}

	out := &Maze{
		rooms:    m.Rooms(),
		walls:    make([]Wall, 0, len(m.walls)-len(drop)),
		passages: m.Passages(),
		width:    m.width,
		height:   m.height,
	}
	for _, w := range m.walls {
		if _, ok := drop[w.key()]; ok {
			out.passages = append(out.passages, w)
			continue
		}
		out.walls = append(out.walls, w)
	}

	return out, nil
}
