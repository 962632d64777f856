// SPDX-License-Identifier: MIT

package maze

import "fmt"

// GridOptions tunes NewGrid.
type GridOptions struct {
	// CellSize is the side length of a square room. Must be > 0.
	CellSize float64
}

// DefaultGridOptions returns CellSize = 1.
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: 1}
}

// GridOption configures GridOptions.
type GridOption func(*GridOptions)

// WithCellSize sets the room side length. Non-positive values make NewGrid
// return ErrBadCellSize.
func WithCellSize(size float64) GridOption {
	return func(o *GridOptions) { o.CellSize = size }
}

// gridOffsets are the forward 4-neighbour offsets (east, south); walking only
// forward produces each interior wall exactly once.
var gridOffsets = [2][2]int{{1, 0}, {0, 1}}

// NewGrid builds a width×height maze of square rooms with every interior wall
// standing. Room (x, y) has ID y*width + x, so rooms are in row-major order.
// The outer border is not modelled as walls and can never be removed.
//
// Returns ErrEmptyGrid if width or height is < 1, ErrBadCellSize if the
// configured cell size is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...GridOption) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.CellSize > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrBadCellSize, cfg.CellSize)
	}

	s := cfg.CellSize
	rooms := make([]Room, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rooms = append(rooms, Room{
				ID:     gridIndex(width, x, y),
				Center: Point{X: (float64(x) + 0.5) * s, Y: (float64(y) + 0.5) * s},
			})
		}
	}

	walls := make([]Wall, 0, (width-1)*height+width*(height-1))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, d := range gridOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx >= width || ny >= height {
					continue
				}
				walls = append(walls, NewWall(
					rooms[gridIndex(width, x, y)],
					rooms[gridIndex(width, nx, ny)],
					dividingLine(nx, ny, d, s),
				))
			}
		}
	}

	m := NewMaze(rooms, walls)
	m.width, m.height = width, height

	return m, nil
}

// gridIndex maps (x, y) to a row-major index.
func gridIndex(width, x, y int) int {
	return y*width + x
}

// dividingLine returns the shared edge between a room and its neighbour at
// (nx, ny) reached by offset d.
func dividingLine(nx, ny int, d [2]int, s float64) Line {
	x0, y0 := float64(nx)*s, float64(ny)*s
	if d[0] == 1 { // east neighbour: vertical segment on its left side
		return Line{Start: Point{X: x0, Y: y0}, End: Point{X: x0, Y: y0 + s}}
	}

	return Line{Start: Point{X: x0, Y: y0}, End: Point{X: x0 + s, Y: y0}}
}
