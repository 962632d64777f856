// SPDX-License-Identifier: MIT

// Package disjoint provides a Disjoint-Set (union-find) structure over any
// comparable item type, with full path compression and union by rank.
//
// What & Why
//
//   - A DisjointSet partitions a growing universe of items into disjoint groups.
//     Each group is identified by a representative: the integer slot id of the
//     group's root.
//   - It is the engine behind Kruskal's MST in package graph: an edge is kept
//     only when its endpoints still live in different groups.
//
// Representation
//
//	Every item inserted with MakeSet receives the next slot id (0, 1, 2, ...).
//	A slot is either a root carrying its rank, or a child carrying its parent
//	slot id. There is no sign trick: the two cases are tagged explicitly.
//
// Operations
//
//   - MakeSet(item)    O(1) amortized; ErrDuplicateItem if item is tracked.
//   - FindSet(item)    ≈O(α(n)) amortized; ErrUnknownItem if never inserted.
//   - Union(a, b)      ≈O(α(n)) amortized; ErrUnknownItem, ErrAlreadyUnioned.
//
// FindSet rewrites every node visited on the way to the root so that it points
// at the root directly (full compression, not halving). Union attaches the
// lower-rank root under the higher-rank one; on a tie the second root goes
// under the first and the first root's rank grows by one.
//
// Concurrency:
//
//	A DisjointSet is NOT goroutine-safe; FindSet mutates links. Use one
//	instance per goroutine (package graph allocates one per query).
package disjoint
