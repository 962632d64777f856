// SPDX-License-Identifier: MIT

// Package mazegraph is a small in-memory toolkit for undirected weighted
// graphs and the mazes built on them.
//
// Under the hood, everything is organized under four subpackages:
//
//	disjoint/ — union-find with full path compression and union by rank
//	pqueue/   — typed binary min-heap priority queue
//	graph/    — immutable generic Graph: Kruskal MST and Dijkstra shortest path
//	maze/     — rooms & walls, grid mazes, Kruskal carving, solving, ASCII rendering
//
// and one command:
//
//	cmd/mazecarve — carve and print a random grid maze
//
// Quick ASCII example (a carved 2×2 maze, route down the left column):
//
//	+--+--+
//	|**   |
//	+  +--+
//	|**   |
//	+--+--+
//
//	go get github.com/katalvlaran/mazegraph
package mazegraph
