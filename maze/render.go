// SPDX-License-Identifier: MIT

package maze

import (
	"bufio"
	"io"
)

// Render writes a grid maze as ASCII art: '+' corners, "--" and '|' for
// standing walls, and "**" for rooms on path. Every room is two characters
// wide.
//
//	+--+--+
//	|**   |
//	+  +--+
//	|**   |
//	+--+--+
//
// Returns ErrNotGrid for mazes not built by NewGrid, or the writer's error.
func Render(w io.Writer, m *Maze, path []Room) error {
	width, height := m.Dims()
	if width == 0 || height == 0 {
		return ErrNotGrid
	}

	standing := make(map[[2]int]struct{}, len(m.walls))
	for _, wl := range m.walls {
		a, b := wl.room1.ID, wl.room2.ID
		if b < a {
			a, b = b, a
		}
		standing[[2]int{a, b}] = struct{}{}
	}
	wallBetween := func(a, b int) bool {
		_, ok := standing[[2]int{a, b}]
		return ok
	}
	onPath := make(map[int]struct{}, len(path))
	for _, r := range path {
		onPath[r.ID] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		// Wall line above row y.
		for x := 0; x < width; x++ {
			bw.WriteByte('+')
			if y == 0 || wallBetween(gridIndex(width, x, y-1), gridIndex(width, x, y)) {
				bw.WriteString("--")
			} else {
				bw.WriteString("  ")
			}
		}
		bw.WriteString("+\n")

		// Room line for row y.
		for x := 0; x < width; x++ {
			if x == 0 || wallBetween(gridIndex(width, x-1, y), gridIndex(width, x, y)) {
				bw.WriteByte('|')
			} else {
				bw.WriteByte(' ')
			}
			if _, ok := onPath[gridIndex(width, x, y)]; ok {
				bw.WriteString("**")
			} else {
				bw.WriteString("  ")
			}
		}
		bw.WriteString("|\n")
	}
	for x := 0; x < width; x++ {
		bw.WriteString("+--")
	}
	bw.WriteString("+\n")

	return bw.Flush()
}
