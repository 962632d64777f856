// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"math"
)

// Sentinel errors for maze construction, carving and solving.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrBadCellSize indicates a non-positive grid cell size.
	ErrBadCellSize = errors.New("maze: cell size must be positive")

	// ErrUnknownWall indicates RemoveWalls was asked to remove a wall that is not standing.
	ErrUnknownWall = errors.New("maze: wall not found")

	// ErrUnknownRoom indicates a room that does not belong to the maze.
	ErrUnknownRoom = errors.New("maze: room not found")

	// ErrDisconnected indicates the rooms cannot all be linked through the walls.
	ErrDisconnected = errors.New("maze: rooms are not connected")

	// ErrNotGrid indicates Render was called on a maze not built by NewGrid.
	ErrNotGrid = errors.New("maze: not a grid maze")
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line is the segment between Start and End.
type Line struct {
	Start, End Point
}

// Room is a maze cell. Two rooms are the same room iff all fields are equal.
type Room struct {
	ID     int
	Center Point
}

// Wall separates two rooms along a dividing line. Its distance is the weight
// seen by graph algorithms; original remembers the construction-time distance
// so weighted copies can be reset.
type Wall struct {
	room1, room2 Room
	line         Line
	distance     float64
	original     float64
}

// NewWall returns a wall between r1 and r2. Its distance is the distance
// between the two room centers.
func NewWall(r1, r2 Room, line Line) Wall {
	d := r1.Center.Dist(r2.Center)
	return Wall{room1: r1, room2: r2, line: line, distance: d, original: d}
}

// Room1 returns the first adjacent room.
func (w Wall) Room1() Room { return w.room1 }

// Room2 returns the second adjacent room.
func (w Wall) Room2() Room { return w.room2 }

// DividingLine returns the segment the wall occupies.
func (w Wall) DividingLine() Line { return w.line }

// Distance returns the wall's current weight.
func (w Wall) Distance() float64 { return w.distance }

// WithDistance returns a copy of w carrying distance d. w itself is unchanged.
func (w Wall) WithDistance(d float64) Wall {
	w.distance = d
	return w
}

// ResetDistance returns a copy of w with its original distance restored.
func (w Wall) ResetDistance() Wall {
	w.distance = w.original
	return w
}

// Vertex1 implements graph.Edge.
func (w Wall) Vertex1() Room { return w.room1 }

// Vertex2 implements graph.Edge.
func (w Wall) Vertex2() Room { return w.room2 }

// Weight implements graph.Edge.
func (w Wall) Weight() float64 { return w.distance }

// wallKey identifies a wall regardless of weight and of the order of its rooms.
type wallKey struct {
	lo, hi Room
	line   Line
}

func (w Wall) key() wallKey {
	lo, hi := w.room1, w.room2
	if roomLess(hi, lo) {
		lo, hi = hi, lo
	}
	return wallKey{lo: lo, hi: hi, line: w.line}
}

// roomLess orders rooms by ID, then by center.
func roomLess(a, b Room) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	if a.Center.X != b.Center.X {
		return a.Center.X < b.Center.X
	}
	return a.Center.Y < b.Center.Y
}
