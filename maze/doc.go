// SPDX-License-Identifier: MIT

// Package maze models mazes as rooms separated by walls and carves them with
// Kruskal's algorithm from package graph.
//
// Model
//
//   - Room    a cell with an ID and a center point; rooms are graph vertices.
//   - Wall    separates two adjacent rooms along a dividing line. A Wall is a
//     graph.Edge[Room] whose weight is its distance (by default the distance
//     between the two room centers).
//   - Maze    rooms, the walls still standing, and the passages (walls already
//     removed). A Maze is never mutated; RemoveWalls returns a new one.
//
// Carving
//
//	KruskalCarver gives every wall an independent random non-negative integer
//	weight, builds a graph over the rooms and returns the minimum spanning tree
//	as the walls to remove. The weights live on copies, so the input maze and
//	its walls are never touched. Removing exactly those walls leaves a perfect
//	maze: every room is reachable from every other by exactly one route.
//
// Determinism:
//
//	A KruskalCarver draws from its own *rand.Rand. With WithSeed (or the
//	default seed) the same maze always yields the same walls. There is no
//	time-based seeding inside this package.
//
// Solving & rendering
//
//	Solve routes between two rooms through the passages with graph.ShortestPath.
//	Render draws grid mazes built by NewGrid as ASCII art.
package maze
