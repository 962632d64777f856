// SPDX-License-Identifier: MIT

// Command mazecarve builds a rectangular grid maze, carves it with Kruskal's
// algorithm and prints it as ASCII art, optionally with the route from the
// top-left room to the bottom-right one.
//
// Usage:
//
//	mazecarve -W 20 -H 10 --seed 42 --solve
//	mazecarve -c maze.yaml -v
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
